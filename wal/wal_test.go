package wal

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discantdb/discant/meta"
)

func TestMemoryRecordsInCompletionOrder(t *testing.T) {
	log := NewMemory()

	ops := []string{"artist_add", "artist_update", "release_add"}
	for i, op := range ops {
		seq, err := log.Record(meta.UserID(7), op, []byte{byte(i)})
		require.NoError(t, err)
		assert.Equal(t, uint64(i), seq, "sequential records get increasing seqs")
	}

	entries := log.Entries()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, uint64(i), e.Seq)
		assert.Equal(t, ops[i], e.Op)
		assert.Equal(t, meta.UserID(7), e.Actor)
		assert.False(t, e.At.IsZero())
		assert.NotEqual(t, e.ID.String(), "00000000-0000-0000-0000-000000000000")
	}
}

func TestMemoryCopiesPayloads(t *testing.T) {
	log := NewMemory()
	payload := []byte("mutable")
	_, err := log.Record(1, "artist_add", payload)
	require.NoError(t, err)

	payload[0] = 'X'
	assert.Equal(t, []byte("mutable"), log.Entries()[0].Payload)
}

func TestMemoryConcurrentRecords(t *testing.T) {
	log := NewMemory()
	const n = 64

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := log.Record(2, "artist_update", nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries := log.Entries()
	require.Len(t, entries, n)
	for i, e := range entries {
		assert.Equal(t, uint64(i), e.Seq, "seqs stay dense under concurrency")
		if i > 0 {
			prev := entries[i-1].ID
			assert.Equal(t, -1, bytes.Compare(prev[:], e.ID[:]),
				"entry ids must sort in log order")
		}
	}
}

func TestMemoryScan(t *testing.T) {
	log := NewMemory()
	for i := 0; i < 4; i++ {
		_, err := log.Record(1, "event_add", nil)
		require.NoError(t, err)
	}

	var seen []uint64
	err := log.Scan(func(e Entry) error {
		seen = append(seen, e.Seq)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 2, 3}, seen)

	boom := errors.New("stop")
	count := 0
	err = log.Scan(func(e Entry) error {
		count++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, count, "scan stops on the first error")
}

func TestNop(t *testing.T) {
	seq, err := Nop{}.Record(1, "artist_add", []byte("x"))
	assert.NoError(t, err)
	assert.Zero(t, seq)
}
