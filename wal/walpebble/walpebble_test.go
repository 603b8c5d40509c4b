package walpebble

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/meta"
	"github.com/discantdb/discant/wal"
)

func testLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(t.TempDir(), Options{NoSync: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestRecordScanRoundtrip(t *testing.T) {
	l := testLog(t)

	seq, err := l.Record(7, "artist_add", []byte(`{"name":"Aiko"}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), seq)

	seq, err = l.Record(8, "artist_update", []byte(`{"field":"name"}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)

	seq, err = l.Record(7, "release_add", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)

	var got []wal.Entry
	require.NoError(t, l.Scan(func(e wal.Entry) error {
		got = append(got, e)
		return nil
	}))
	require.Len(t, got, 3)

	assert.Equal(t, uint64(0), got[0].Seq)
	assert.Equal(t, meta.UserID(7), got[0].Actor)
	assert.Equal(t, "artist_add", got[0].Op)
	assert.Equal(t, []byte(`{"name":"Aiko"}`), got[0].Payload)
	assert.NotEqual(t, uuid.Nil, got[0].ID)
	assert.False(t, got[0].At.IsZero())

	assert.Equal(t, uint64(1), got[1].Seq)
	assert.Equal(t, meta.UserID(8), got[1].Actor)
	assert.Equal(t, "artist_update", got[1].Op)

	assert.Equal(t, uint64(2), got[2].Seq)
	assert.Equal(t, "release_add", got[2].Op)
	assert.Empty(t, got[2].Payload)

	assert.Equal(t, uint64(3), l.Len())
}

func TestReopenResumesSeq(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir, Options{NoSync: true})
	require.NoError(t, err)

	_, err = l.Record(1, "artist_add", []byte("a"))
	require.NoError(t, err)
	_, err = l.Record(1, "artist_update", []byte("b"))
	require.NoError(t, err)
	require.NoError(t, l.Close())

	l, err = Open(dir, Options{NoSync: true})
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, uint64(2), l.Len())
	seq, err := l.Record(2, "event_add", []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)

	var ops []string
	require.NoError(t, l.Scan(func(e wal.Entry) error {
		ops = append(ops, e.Op)
		return nil
	}))
	assert.Equal(t, []string{"artist_add", "artist_update", "event_add"}, ops)
}

func TestClosed(t *testing.T) {
	l, err := Open(t.TempDir(), Options{NoSync: true})
	require.NoError(t, err)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	_, err = l.Record(1, "artist_add", nil)
	assert.ErrorIs(t, err, discant_errors.ErrClosed)
	err = l.Scan(func(wal.Entry) error { return nil })
	assert.ErrorIs(t, err, discant_errors.ErrClosed)
}

func TestScanStopsOnError(t *testing.T) {
	l := testLog(t)
	for i := 0; i < 4; i++ {
		_, err := l.Record(1, "artist_add", nil)
		require.NoError(t, err)
	}

	boom := assert.AnError
	calls := 0
	err := l.Scan(func(wal.Entry) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestConcurrentRecordsGetDenseSeqs(t *testing.T) {
	l := testLog(t)

	const writers, each = 16, 8
	var wg sync.WaitGroup
	seqs := make([][]uint64, writers)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				seq, err := l.Record(meta.UserID(w), "artist_update", nil)
				assert.NoError(t, err)
				seqs[w] = append(seqs[w], seq)
			}
		}(w)
	}
	wg.Wait()

	used := map[uint64]bool{}
	for _, ws := range seqs {
		for _, s := range ws {
			assert.False(t, used[s], "seq %d issued twice", s)
			assert.Less(t, s, uint64(writers*each))
			used[s] = true
		}
	}
	assert.Len(t, used, writers*each)
	assert.Equal(t, uint64(writers*each), l.Len())

	// Entry uuids are issued under the log lock, so they sort like seqs.
	var prev wal.Entry
	require.NoError(t, l.Scan(func(e wal.Entry) error {
		if e.Seq > 0 {
			assert.Equal(t, -1, bytes.Compare(prev.ID[:], e.ID[:]),
				"entry ids must sort in log order")
		}
		prev = e
		return nil
	}))
}

func TestCollector(t *testing.T) {
	l := testLog(t)
	_, err := l.Record(1, "artist_add", []byte("x"))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(l.Collector()))
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["discant_audit_entries"])
}
