// Package discant is the source-of-truth store of a music metadata catalog:
// artists, releases with their tracks, events and tags, all in memory,
// guarded by hash-chained version tokens and written ahead to an audit log.
//
// Records never disappear and ids are dense, so an id is also a stable
// insertion index. Every mutation is either an optimistically concurrent
// single-field diff (rejected with ErrStaleVersion when the caller's token
// is behind) or a managed-collection operation that validates its target
// and leaves the token alone. Nothing commits unless its audit entry is
// accepted first; Replay rebuilds an equal store from such a log.
package discant

import (
	"errors"
	"fmt"
	"maps"

	jsoniter "github.com/json-iterator/go"

	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/indexes"
	"github.com/discantdb/discant/meta"
	"github.com/discantdb/discant/table"
	"github.com/discantdb/discant/utils"
	"github.com/discantdb/discant/wal"
)

type Store struct {
	log     utils.Logger
	audit   wal.Log
	locales []string

	artists  *table.Table[meta.ArtistMetaData]
	releases *table.Table[meta.Release]
	events   *table.Table[meta.Event]
	tags     *table.Table[meta.Tag]

	names  *indexes.NameIndex
	graphs *indexes.Graphs
}

func New(opts Options) *Store {
	opts.SetDefaults()
	s := &Store{
		log:      opts.Logger,
		audit:    opts.AuditLog,
		locales:  opts.Locales,
		artists:  table.New[meta.ArtistMetaData]("artist"),
		releases: table.New[meta.Release]("release"),
		events:   table.New[meta.Event]("event"),
		tags:     table.New[meta.Tag]("tag"),
		names:    indexes.NewNameIndex(),
		graphs:   indexes.NewGraphs(),
	}
	if opts.MetricsRegisterer != nil {
		RegisterMetrics(opts.MetricsRegisterer)
	}
	return s
}

// Locales returns the locale registry the store was built with.
func (s *Store) Locales() []string {
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

func (s *Store) validLocal(local meta.LocalID) error {
	if local < 0 || int(local) >= len(s.locales) {
		return errors.Join(discant_errors.ErrInvalidLocal,
			fmt.Errorf("locale %d, registry has %d", local, len(s.locales)))
	}
	return nil
}

func (s *Store) validTag(tag meta.TagID) error {
	if tag < 0 || int64(tag) >= s.tags.Len() {
		return errors.Join(discant_errors.ErrInvalidTag,
			fmt.Errorf("tag %d does not exist", tag))
	}
	return nil
}

// record serializes the payload and writes the audit entry. Mutations call
// it from inside their critical section, before the record changes; a
// failure aborts the mutation.
func (s *Store) record(actor meta.UserID, op string, payload any) error {
	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return errors.Join(discant_errors.ErrAuditLog, err)
	}
	return s.recordRaw(actor, op, body)
}

func (s *Store) recordRaw(actor meta.UserID, op string, body []byte) error {
	seq, err := s.audit.Record(actor, op, body)
	if err != nil {
		s.log.Error("audit write rejected", "op", op, "err", err)
		return errors.Join(discant_errors.ErrAuditLog, err)
	}
	s.log.Debug("audited", "op", op, "seq", seq, "actor", actor)
	return nil
}

// Reads hand out shallow copies, so managed mutations never grow a slice or
// map in place; they build the replacement and swap it in.

func cloneAppend[T any](xs []T, v T) []T {
	next := make([]T, 0, len(xs)+1)
	next = append(next, xs...)
	return append(next, v)
}

func cloneSet[K comparable, V any](m map[K]V, k K, v V) map[K]V {
	next := make(map[K]V, len(m)+1)
	maps.Copy(next, m)
	next[k] = v
	return next
}
