// Package walpebble persists the audit log in a pebble key-value store.
//
// Every entry becomes one key-value pair: the key is the entry sequence
// number (big endian, so iteration order is log order), the value is a
// concatenation of TLV records. Writes are synced before Record returns,
// which is what lets the store treat a returned sequence number as a
// durable receipt.
package walpebble

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"

	"github.com/discantdb/discant/discant_errors"
	"github.com/discantdb/discant/meta"
	"github.com/discantdb/discant/protocol"
	"github.com/discantdb/discant/utils"
	"github.com/discantdb/discant/wal"
)

// Value layout, one TLV record per field:
//
//	'A' actor id, zig-zag zipped
//	'U' entry uuid, 16 raw bytes
//	'T' wall clock, UnixNano zig-zag zipped
//	'O' operation name, plain bytes
//	'P' operation payload, plain bytes
const (
	litActor   = 'A'
	litUUID    = 'U'
	litTime    = 'T'
	litOp      = 'O'
	litPayload = 'P'
)

var WriteOptions = pebble.WriteOptions{Sync: true}

type Options struct {
	Logger utils.Logger
	// NoSync trades the per-entry fsync away. Only for throwaway
	// databases in tests; a real audit log must keep the default.
	NoSync bool
}

func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = utils.NewDefaultLogger(slog.LevelInfo)
	}
}

// Log is a durable wal.Log backed by a pebble database. It also
// implements wal.Reader, so a store can be replayed from it.
type Log struct {
	log utils.Logger
	dir string
	wo  *pebble.WriteOptions

	lock   sync.RWMutex
	db     *pebble.DB
	next   uint64
	closed bool
}

var _ wal.Log = (*Log)(nil)
var _ wal.Reader = (*Log)(nil)

// Open opens (or creates) the log database at dir and positions the
// sequence counter after the last recorded entry.
func Open(dir string, opts Options) (*Log, error) {
	opts.SetDefaults()
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	l := &Log{
		log: opts.Logger,
		dir: dir,
		wo:  &WriteOptions,
		db:  db,
	}
	if opts.NoSync {
		l.wo = pebble.NoSync
	}
	if err = l.recoverSeq(); err != nil {
		_ = db.Close()
		return nil, err
	}
	l.log.Info("audit log open", "dir", dir, "next", l.next)
	return l, nil
}

func (l *Log) recoverSeq() error {
	it, err := l.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{'E'},
		UpperBound: []byte{'F'},
	})
	if err != nil {
		return err
	}
	defer it.Close()
	if it.Last() {
		seq, err := parseEntryKey(it.Key())
		if err != nil {
			return err
		}
		l.next = seq + 1
	}
	return it.Error()
}

// Dir returns the database directory.
func (l *Log) Dir() string {
	return l.dir
}

// Len returns the number of recorded entries.
func (l *Log) Len() uint64 {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.next
}

// Record appends one entry and syncs it to disk. Entries get dense
// sequence numbers in the order the writes complete.
func (l *Log) Record(actor meta.UserID, op string, payload []byte) (uint64, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.closed {
		return 0, discant_errors.ErrClosed
	}
	// issued under the lock, so id order matches seq order
	id, err := uuid.NewV7()
	if err != nil {
		return 0, err
	}
	at := time.Now().UTC()
	value := protocol.Concat(
		protocol.Record(litActor, protocol.ZipInt64(int64(actor))),
		protocol.Record(litUUID, id[:]),
		protocol.Record(litTime, protocol.ZipInt64(at.UnixNano())),
		protocol.Record(litOp, []byte(op)),
		protocol.Record(litPayload, payload),
	)
	seq := l.next
	if err = l.db.Set(entryKey(seq), value, l.wo); err != nil {
		l.log.Error("audit write failed", "seq", seq, "op", op, "err", err)
		return 0, err
	}
	l.next = seq + 1
	return seq, nil
}

// Scan replays every entry in sequence order. fn must not call Record
// on the same log.
func (l *Log) Scan(fn func(wal.Entry) error) error {
	l.lock.RLock()
	defer l.lock.RUnlock()
	if l.closed {
		return discant_errors.ErrClosed
	}
	it, err := l.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{'E'},
		UpperBound: []byte{'F'},
	})
	if err != nil {
		return err
	}
	defer it.Close()
	for valid := it.First(); valid; valid = it.Next() {
		entry, err := parseEntry(it.Key(), it.Value())
		if err != nil {
			return err
		}
		if err = fn(entry); err != nil {
			return err
		}
	}
	return it.Error()
}

// Close flushes and closes the database. Further calls fail with
// ErrClosed; closing twice is fine.
func (l *Log) Close() error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	l.log.Info("audit log closed", "dir", l.dir, "next", l.next)
	return l.db.Close()
}

func entryKey(seq uint64) []byte {
	var key [9]byte
	key[0] = 'E'
	binary.BigEndian.PutUint64(key[1:], seq)
	return key[:]
}

func parseEntryKey(key []byte) (uint64, error) {
	if len(key) != 9 || key[0] != 'E' {
		return 0, errors.Join(discant_errors.ErrBadEntry, fmt.Errorf("key %x", key))
	}
	return binary.BigEndian.Uint64(key[1:]), nil
}

func parseEntry(key, value []byte) (e wal.Entry, err error) {
	e.Seq, err = parseEntryKey(key)
	if err != nil {
		return
	}
	var seen [5]bool
	rest := value
	for len(rest) > 0 {
		var lit byte
		var body []byte
		lit, body, rest, err = protocol.TakeAnyWary(rest)
		if err != nil {
			return e, errors.Join(discant_errors.ErrBadEntry, err)
		}
		switch lit {
		case litActor:
			e.Actor = meta.UserID(protocol.UnzipInt64(body))
			seen[0] = true
		case litUUID:
			if len(body) != 16 {
				return e, errors.Join(discant_errors.ErrBadEntry,
					fmt.Errorf("uuid record of %d bytes", len(body)))
			}
			copy(e.ID[:], body)
			seen[1] = true
		case litTime:
			e.At = time.Unix(0, protocol.UnzipInt64(body)).UTC()
			seen[2] = true
		case litOp:
			e.Op = string(body)
			seen[3] = true
		case litPayload:
			e.Payload = append([]byte(nil), body...)
			seen[4] = true
		default:
			return e, errors.Join(discant_errors.ErrBadEntry,
				fmt.Errorf("unexpected record '%c'", lit))
		}
	}
	for _, ok := range seen {
		if !ok {
			return e, errors.Join(discant_errors.ErrBadEntry,
				fmt.Errorf("entry %d is missing records", e.Seq))
		}
	}
	return e, nil
}
