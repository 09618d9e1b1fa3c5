package lists

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// ArrayList is a thin mutable wrapper around a Go slice, implementing
// [List][T]. The zero value is an empty, ready-to-use list.
//
// Unlike a bare slice, an ArrayList has a stable identity: views created
// by [AsReadOnly] keep observing it across grow and shrink operations.
type ArrayList[T comparable] struct {
	items []T
}

var _ List[int] = (*ArrayList[int])(nil)

// New creates an ArrayList from a variadic list of elements (copied).
func New[T comparable](items ...T) *ArrayList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &ArrayList[T]{items: dst}
}

// From creates an ArrayList from a slice (the slice is copied).
func From[T comparable](items []T) *ArrayList[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &ArrayList[T]{items: dst}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (l *ArrayList[T]) Len() int { return len(l.items) }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *ArrayList[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// Contains reports whether the list contains value.
func (l *ArrayList[T]) Contains(value T) bool {
	return slices.Contains(l.items, value)
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (l *ArrayList[T]) IndexOf(value T) int {
	return slices.Index(l.items, value)
}

// All returns a copy of the elements as a plain Go slice.
func (l *ArrayList[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Values returns an iterator over the elements in list order.
//
// The iterator reads the list when iteration starts, not when Values is
// called. Mutating the list while an iteration is in progress follows Go's
// usual range-over-slice behavior: the iteration keeps walking the
// elements it started with.
func (l *ArrayList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *ArrayList[T]) String() string {
	b, err := json.Marshal(l.items)
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutations
// ─────────────────────────────────────────────────────────────────────────────

// Set replaces the element at index with value.
// Returns [ErrIndexOutOfRange] when index is out of range.
func (l *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items[index] = value
	return nil
}

// Add appends values to the end of the list. It never fails.
func (l *ArrayList[T]) Add(values ...T) error {
	l.items = append(l.items, values...)
	return nil
}

// Insert inserts value at index, shifting later elements right.
// Index may equal Len(), in which case Insert behaves like [ArrayList.Add].
// Returns [ErrIndexOutOfRange] when index is out of range.
func (l *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = slices.Insert(l.items, index, value)
	return nil
}

// RemoveAt removes the element at index, shifting later elements left.
// Returns [ErrIndexOutOfRange] when index is out of range.
func (l *ArrayList[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = slices.Delete(l.items, index, index+1)
	return nil
}

// Remove removes the first occurrence of value and reports whether an
// occurrence was found. It never returns an error.
func (l *ArrayList[T]) Remove(value T) (bool, error) {
	i := slices.Index(l.items, value)
	if i < 0 {
		return false, nil
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true, nil
}

// Clear removes all elements. It never fails.
func (l *ArrayList[T]) Clear() error {
	l.items = l.items[:0]
	return nil
}
