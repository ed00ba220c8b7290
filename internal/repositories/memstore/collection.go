package memstore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"github.com/google/uuid"
)

// Record is implemented by pointer record types kept in a Collection.
type Record[T any] interface {
	RecordID() string
	SetRecordID(id string)
	Clone() T
}

// Index is a secondary structure maintained alongside the primary index.
// Check must not mutate anything; Insert must not fail once Check passed.
type Index[T any] interface {
	Check(rec T) error
	Insert(rec T)
}

// Collection is a thread-safe, insertion-ordered set of records with a
// primary id index and pluggable secondary indexes.
type Collection[T Record[T]] struct {
	mu      sync.RWMutex
	seq     []T
	byID    map[string]T
	indexes []Index[T]
	newID   func() string
}

// New returns an empty collection maintaining the given secondary indexes.
func New[T Record[T]](indexes ...Index[T]) *Collection[T] {
	return &Collection[T]{
		byID:    make(map[string]T),
		indexes: indexes,
		newID:   uuid.NewString,
	}
}

// Register stores a copy of rec and returns another copy of what was stored.
// A record without id gets a generated one. Duplicate ids fail with
// common.ErrDuplicateKey; any secondary index may reject the record as well.
// On failure nothing is written.
func (c *Collection[T]) Register(rec T) (T, error) {
	stored := rec.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()

	id := strings.TrimSpace(stored.RecordID())
	if id == "" {
		id = c.newID()
	}
	stored.SetRecordID(id)

	if _, ok := c.byID[id]; ok {
		var zero T
		return zero, fmt.Errorf("%w: id %q", common.ErrDuplicateKey, id)
	}
	for _, idx := range c.indexes {
		if err := idx.Check(stored); err != nil {
			var zero T
			return zero, err
		}
	}

	c.seq = append(c.seq, stored)
	c.byID[id] = stored
	for _, idx := range c.indexes {
		idx.Insert(stored)
	}
	return stored.Clone(), nil
}

// Get returns a copy of the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return rec.Clone(), true
}

// All returns copies of every record in registration order.
func (c *Collection[T]) All() []T {
	return c.Filter(nil)
}

// Filter returns copies of the records matching keep, in registration order.
// A nil keep matches everything.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.seq))
	for _, rec := range c.seq {
		if keep == nil || keep(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// Count returns how many records match keep.
func (c *Collection[T]) Count(keep func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, rec := range c.seq {
		if keep(rec) {
			n++
		}
	}
	return n
}

// View runs fn under the read lock. Records reached from inside fn are the
// stored ones and must be cloned before they escape.
func (c *Collection[T]) View(fn func()) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn()
}

// Update applies fn to the stored record under the write lock. fn may change
// any field that no index is keyed on, and must not leave partial changes
// behind when it returns an error. Unknown ids fail with common.ErrNotFound.
func (c *Collection[T]) Update(id string, fn func(T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	rec, ok := c.byID[id]
	if !ok {
		return zero, fmt.Errorf("%w: id %q", common.ErrNotFound, id)
	}
	if err := fn(rec); err != nil {
		return zero, err
	}
	return rec.Clone(), nil
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.seq)
}
