package wal

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/discantdb/discant/meta"
)

// Memory is the reference log: a mutex around a slice. It keeps everything
// and is what a store uses unless configured with a durable log.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Record(actor meta.UserID, op string, payload []byte) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// issued under the lock, so id order matches seq order
	id, err := uuid.NewV7()
	if err != nil {
		return 0, err
	}
	seq := uint64(len(m.entries))
	m.entries = append(m.entries, Entry{
		Seq:   seq,
		ID:    id,
		At:    time.Now().UTC(),
		Actor: actor,
		Op:    op,
		// callers are free to reuse their payload buffers
		Payload: append([]byte(nil), payload...),
	})
	return seq, nil
}

// Entries returns a snapshot of the log.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...)
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) Scan(fn func(Entry) error) error {
	for _, e := range m.Entries() {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}
