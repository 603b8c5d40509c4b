// Package table implements the append-only, optimistically versioned record
// table the catalog keeps its entities in.
//
// Ids are dense int64s: the id of a record is its insertion index, records
// are never deleted or reordered. Every row carries a version token, a
// running digest of the diffs accepted so far (chash.Zero when fresh).
//
// Locking is two-level. The table mutex is held shared by reads and
// updates and exclusively by appends; each row has its own mutex on top.
// Updates on different ids therefore run in parallel, and a stale update is
// rejected by token comparison without waiting for a competing writer's
// turn. If a critical section panics, the lock it held is poisoned: the
// panic propagates, and every later acquisition fails with ErrLockPoisoned
// instead of silently reading possibly half-written state.
package table

import (
	"errors"
	"fmt"
	"sync"

	"github.com/discantdb/discant/chash"
	"github.com/discantdb/discant/discant_errors"
)

// Diff is a single-field mutation of a record of type R. Apply is total: it
// overwrites its field with the carried value and validates nothing.
type Diff[R any] interface {
	Apply(*R)
	FieldName() string
	Digest() chash.Hash128
}

type row[R any] struct {
	mu       sync.RWMutex
	poisoned bool
	rec      R
	tok      chash.Hash128
}

// seal releases the row's exclusive lock, poisoning it first if the
// critical section panicked. Must be deferred.
func (r *row[R]) seal() {
	if p := recover(); p != nil {
		r.poisoned = true
		r.mu.Unlock()
		panic(p)
	}
	r.mu.Unlock()
}

// Table holds the rows of one record kind.
type Table[R any] struct {
	kind     string
	mu       sync.RWMutex
	poisoned bool
	rows     []*row[R]
}

func New[R any](kind string) *Table[R] {
	return &Table[R]{kind: kind}
}

func (t *Table[R]) Kind() string { return t.kind }

// Len reports the number of rows. Because the table is append-only, the
// result is a floor that stays valid forever; bounds checks against other
// tables are built on this.
func (t *Table[R]) Len() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int64(len(t.rows))
}

func (t *Table[R]) seal() {
	if p := recover(); p != nil {
		t.poisoned = true
		t.mu.Unlock()
		panic(p)
	}
	t.mu.Unlock()
}

func (t *Table[R]) errInvalidID(id int64, n int) error {
	return errors.Join(discant_errors.ErrInvalidID,
		fmt.Errorf("%s id %d, table has %d records", t.kind, id, n))
}

func (t *Table[R]) errPoisoned(what string) error {
	return errors.Join(discant_errors.ErrLockPoisoned,
		fmt.Errorf("%s %s", t.kind, what))
}

// Add appends rec with a fresh zero token. The commit hook runs under the
// exclusive table lock before the row becomes visible; if it fails (the
// audit write, typically) nothing is appended.
func (t *Table[R]) Add(rec R, commit func(id int64) error) (id int64, err error) {
	t.mu.Lock()
	if t.poisoned {
		t.mu.Unlock()
		return 0, t.errPoisoned("table")
	}
	defer t.seal()

	id = int64(len(t.rows))
	if commit != nil {
		if err = commit(id); err != nil {
			return 0, err
		}
	}
	t.rows = append(t.rows, &row[R]{rec: rec})
	return id, nil
}

// Get returns a copy of the record and its current version token.
func (t *Table[R]) Get(id int64) (rec R, tok chash.Hash128, err error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.poisoned {
		return rec, tok, t.errPoisoned("table")
	}
	if id < 0 || id >= int64(len(t.rows)) {
		return rec, tok, t.errInvalidID(id, len(t.rows))
	}
	r := t.rows[id]
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.poisoned {
		return rec, tok, t.errPoisoned(fmt.Sprintf("row %d", id))
	}
	return r.rec, r.tok, nil
}

// Update applies one diff under optimistic concurrency control: the update
// goes through only if presented matches the row's current token, and the
// new token chains the diff's digest onto the old one. The commit hook runs
// before the diff is applied, still under the row lock; a hook error (a
// rejected audit write) aborts the whole update. A token mismatch returns
// ErrStaleVersion without calling the hook.
func (t *Table[R]) Update(id int64, presented chash.Hash128, d Diff[R], commit func(rec *R, newTok chash.Hash128) error) (chash.Hash128, error) {
	return t.UpdateFunc(id, presented, d.Digest(), func(rec *R, newTok chash.Hash128) error {
		if commit != nil {
			if err := commit(rec, newTok); err != nil {
				return err
			}
		}
		d.Apply(rec)
		return nil
	})
}

// UpdateFunc is Update with the mutation folded into the hook; the store
// uses it when the change targets a song nested inside a release. The hook
// must leave the record untouched when it returns an error.
func (t *Table[R]) UpdateFunc(id int64, presented, dig chash.Hash128, commit func(rec *R, newTok chash.Hash128) error) (chash.Hash128, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.poisoned {
		return chash.Zero, t.errPoisoned("table")
	}
	if id < 0 || id >= int64(len(t.rows)) {
		return chash.Zero, t.errInvalidID(id, len(t.rows))
	}
	r := t.rows[id]
	r.mu.Lock()
	if r.poisoned {
		r.mu.Unlock()
		return chash.Zero, t.errPoisoned(fmt.Sprintf("row %d", id))
	}
	defer r.seal()

	if r.tok != presented {
		return chash.Zero, errors.Join(discant_errors.ErrStaleVersion,
			fmt.Errorf("%s id %d: presented %s, current %s", t.kind, id, presented, r.tok))
	}
	newTok := chash.Chain(r.tok, dig)
	if err := commit(&r.rec, newTok); err != nil {
		return chash.Zero, err
	}
	r.tok = newTok
	return newTok, nil
}

// Mutate runs fn exclusively on a row without touching its version token;
// the managed-collection operations go through here. fn owns the
// audit-before-mutate discipline: it must not change the record before the
// audit write has succeeded, and it must replace inner slices and maps
// rather than grow them in place, so copies handed out by Get stay frozen.
func (t *Table[R]) Mutate(id int64, fn func(rec *R) error) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.poisoned {
		return t.errPoisoned("table")
	}
	if id < 0 || id >= int64(len(t.rows)) {
		return t.errInvalidID(id, len(t.rows))
	}
	r := t.rows[id]
	r.mu.Lock()
	if r.poisoned {
		r.mu.Unlock()
		return t.errPoisoned(fmt.Sprintf("row %d", id))
	}
	defer r.seal()

	return fn(&r.rec)
}
