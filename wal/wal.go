// Package wal defines the audit log the catalog store writes ahead of every
// mutation, and provides the in-memory implementation. The durable,
// pebble-backed log lives in the walpebble subpackage.
package wal

import (
	"time"

	"github.com/google/uuid"

	"github.com/discantdb/discant/meta"
)

// Entry is one recorded operation. Seq is the log position (dense, starting
// at 0); ID is a time-ordered UUID for correlation with outer systems,
// issued while the log is serialized so ID order agrees with Seq order; the
// payload is whatever the store serialized for the operation and is opaque
// to the log.
type Entry struct {
	Seq     uint64      `json:"seq"`
	ID      uuid.UUID   `json:"id"`
	At      time.Time   `json:"at"`
	Actor   meta.UserID `json:"actor"`
	Op      string      `json:"op"`
	Payload []byte      `json:"payload"`
}

// Log accepts audit entries. Record returns only once the entry is durably
// accepted, and completion order is log order: when one Record call returns
// before another begins, it holds the smaller sequence number. The store
// commits a mutation only after Record succeeds.
type Log interface {
	Record(actor meta.UserID, op string, payload []byte) (seq uint64, err error)
}

// Reader hands back everything a log holds, in sequence order.
type Reader interface {
	Scan(fn func(Entry) error) error
}

// Nop discards every entry. Replay runs the store on a Nop so re-applied
// operations are not logged a second time.
type Nop struct{}

func (Nop) Record(meta.UserID, string, []byte) (uint64, error) {
	return 0, nil
}
