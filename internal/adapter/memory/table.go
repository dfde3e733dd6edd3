package memory

import (
	"fmt"
	"sync"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// Table is an insertion-ordered collection of rows keyed by id.
// Rows go in and come out as clones, so callers never share memory with the
// store. All tables of a DB share the DB's lock.
type Table[T any] struct {
	mu    *sync.RWMutex
	clone func(T) T
	order []string
	rows  map[string]T
}

type tableState[T any] struct {
	order []string
	rows  map[string]T
}

func newTable[T any](mu *sync.RWMutex, clone func(T) T) *Table[T] {
	return &Table[T]{
		mu:    mu,
		clone: clone,
		rows:  make(map[string]T),
	}
}

// Insert appends a row. Returns domain.ErrAlreadyExists if id is taken.
func (t *Table[T]) Insert(id string, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; ok {
		return fmt.Errorf("id %s: %w", id, domain.ErrAlreadyExists)
	}
	t.rows[id] = t.clone(row)
	t.order = append(t.order, id)
	return nil
}

// Get returns a copy of the row with the given id.
func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(row), true
}

// Update applies fn to a copy of the row and, if fn succeeds, replaces the
// stored row with it. found is false when id does not exist.
func (t *Table[T]) Update(id string, fn func(row *T) error) (updated T, found bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return updated, false, nil
	}
	next := t.clone(row)
	if err := fn(&next); err != nil {
		return updated, true, err
	}
	t.rows[id] = next
	return t.clone(next), true, nil
}

// Select returns copies of the rows accepted by match, in insertion order.
// A nil match accepts every row. The result is never nil.
func (t *Table[T]) Select(match func(row *T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if match != nil && !match(&row) {
			continue
		}
		out = append(out, t.clone(row))
	}
	return out
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// snapshot must be called with the DB lock held.
func (t *Table[T]) snapshot() tableState[T] {
	rows := make(map[string]T, len(t.rows))
	for id, row := range t.rows {
		rows[id] = t.clone(row)
	}
	order := make([]string, len(t.order))
	copy(order, t.order)
	return tableState[T]{order: order, rows: rows}
}

// restore must be called with the DB lock held.
func (t *Table[T]) restore(s tableState[T]) {
	t.order = s.order
	t.rows = s.rows
}
