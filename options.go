package discant

import (
	"log/slog"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/discantdb/discant/meta"
	"github.com/discantdb/discant/utils"
	"github.com/discantdb/discant/wal"
)

type Options struct {
	Logger utils.Logger

	// AuditLog receives every mutation before it commits. Defaults to an
	// in-memory log; production stores pass a walpebble.Log.
	AuditLog wal.Log

	// Locales is the locale registry; positions are the meta.LocalID
	// values localized fields are keyed by. Index 0 is the
	// original-language slot.
	Locales []string

	// MetricsRegisterer, when set, gets the store and index metric
	// vectors registered on it. Leave nil to manage registration
	// yourself (or to run without metrics).
	MetricsRegisterer prometheus.Registerer
}

func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = utils.NewDefaultLogger(slog.LevelInfo)
	}
	if o.AuditLog == nil {
		o.AuditLog = wal.NewMemory()
	}
	if len(o.Locales) == 0 {
		o.Locales = slices.Clone(meta.DefaultLocales)
	}
}
