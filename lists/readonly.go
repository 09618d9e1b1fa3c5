package lists

import (
	"encoding/json"
	"fmt"
	"iter"
)

// ReadOnly is a non-mutating view over a backing [List][T].
//
// The view holds only a reference to the backing list. Every read
// delegates to the backing list at call time, so the view always reflects
// the list's current contents; it caches and copies nothing. Mutating
// methods return [ErrReadOnly] and never touch the backing list.
//
// Create a view with [AsReadOnly].
type ReadOnly[T comparable] struct {
	list List[T]
}

var _ List[int] = (*ReadOnly[int])(nil)

// AsReadOnly returns a read-only view of list.
//
// The view stays live: mutations made to list after the call are visible
// through the view. Panics with [ArgumentError] if list is nil.
func AsReadOnly[T comparable](list List[T]) *ReadOnly[T] {
	if list == nil {
		panic(&ArgumentError{Param: "list"})
	}
	return &ReadOnly[T]{list: list}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads (delegated)
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the backing list's current number of elements.
func (r *ReadOnly[T]) Len() int { return r.list.Len() }

// Get returns the element currently at index in the backing list, together
// with a presence flag.
func (r *ReadOnly[T]) Get(index int) (T, bool) { return r.list.Get(index) }

// Contains reports whether the backing list currently contains value.
func (r *ReadOnly[T]) Contains(value T) bool { return r.list.Contains(value) }

// IndexOf returns the current index of the first occurrence of value in
// the backing list, or -1.
func (r *ReadOnly[T]) IndexOf(value T) int { return r.list.IndexOf(value) }

// All returns a copy of the backing list's current elements.
func (r *ReadOnly[T]) All() []T { return r.list.All() }

// Values returns an iterator over the backing list's elements, in the
// order they have when iteration starts. Mutation during iteration
// inherits the backing list's own behavior; the view adds no protection.
func (r *ReadOnly[T]) Values() iter.Seq[T] { return r.list.Values() }

// String returns a JSON representation of the backing list's current
// contents. It implements [fmt.Stringer].
func (r *ReadOnly[T]) String() string {
	b, err := json.Marshal(r.list.All())
	if err != nil {
		return fmt.Sprintf("%v", r.list.All())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutations (rejected)
// ─────────────────────────────────────────────────────────────────────────────

// Set returns [ErrReadOnly].
func (r *ReadOnly[T]) Set(int, T) error { return ErrReadOnly }

// Add returns [ErrReadOnly].
func (r *ReadOnly[T]) Add(...T) error { return ErrReadOnly }

// Insert returns [ErrReadOnly].
func (r *ReadOnly[T]) Insert(int, T) error { return ErrReadOnly }

// RemoveAt returns [ErrReadOnly].
func (r *ReadOnly[T]) RemoveAt(int) error { return ErrReadOnly }

// Remove returns false and [ErrReadOnly].
func (r *ReadOnly[T]) Remove(T) (bool, error) { return false, ErrReadOnly }

// Clear returns [ErrReadOnly].
func (r *ReadOnly[T]) Clear() error { return ErrReadOnly }
