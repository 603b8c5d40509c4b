// Package indexes holds the derived lookup structures the store keeps
// eagerly up to date: a hashed name index for artists and the
// membership, discography and derivation graphs. Everything lives in
// memory and is rebuilt by replaying the audit log.
package indexes

import (
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/puzpuzpuz/xsync/v3"
)

var LookupCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "discant",
	Subsystem: "index",
	Name:      "name_lookups",
}, []string{"result"})

var UpdateCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "discant",
	Subsystem: "index",
	Name:      "updates",
}, []string{"index"})

// Edges are kept in slice-valued maps. Writers replace slices instead
// of mutating them, so a loaded slice is immutable and safe to hand out.

func putEdge[K, V comparable](m *xsync.MapOf[K, []V], k K, v V) {
	m.Compute(k, func(vs []V, _ bool) ([]V, bool) {
		if slices.Contains(vs, v) {
			return vs, false
		}
		next := make([]V, 0, len(vs)+1)
		next = append(next, vs...)
		next = append(next, v)
		return next, false
	})
}

func dropEdge[K, V comparable](m *xsync.MapOf[K, []V], k K, v V) {
	m.Compute(k, func(vs []V, loaded bool) ([]V, bool) {
		if !loaded {
			return nil, true
		}
		next := make([]V, 0, len(vs))
		for _, have := range vs {
			if have != v {
				next = append(next, have)
			}
		}
		return next, len(next) == 0
	})
}

func loadEdges[K comparable, V any](m *xsync.MapOf[K, []V], k K) []V {
	vs, ok := m.Load(k)
	if !ok || len(vs) == 0 {
		return nil
	}
	return slices.Clone(vs)
}
