package discant

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/indexes"
)

var OpCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "discant",
	Subsystem: "store",
	Name:      "operations",
}, []string{"op", "result"})

// RegisterMetrics registers the store and index metric vectors. The vectors
// are package-level, so a second store sharing the registerer is fine.
func RegisterMetrics(reg prometheus.Registerer) {
	for _, c := range []prometheus.Collector{OpCount, indexes.LookupCount, indexes.UpdateCount} {
		if err := reg.Register(c); err != nil {
			are := prometheus.AlreadyRegisteredError{}
			if !errors.As(err, &are) {
				panic(err)
			}
		}
	}
}

func observe(op string, err error) {
	OpCount.WithLabelValues(op, opResult(err)).Inc()
}

func opResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, discant_errors.ErrStaleVersion):
		return "stale"
	case errors.Is(err, discant_errors.ErrAuditLog):
		return "audit_error"
	case errors.Is(err, discant_errors.ErrLockPoisoned):
		return "poisoned"
	case errors.Is(err, discant_errors.ErrInvalidID),
		errors.Is(err, discant_errors.ErrInvalidLocal),
		errors.Is(err, discant_errors.ErrInvalidTag),
		errors.Is(err, discant_errors.ErrInvalidTrackRef),
		errors.Is(err, discant_errors.ErrInvalidRelation),
		errors.Is(err, discant_errors.ErrTrackExists):
		return "invalid"
	default:
		return "error"
	}
}
