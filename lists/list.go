package lists

import "iter"

// List is the interface for an ordered, indexable sequence of T.
//
// It is satisfied by [ArrayList][T] and by [ReadOnly][T]. Accept List in
// your own functions so that callers can pass either a mutable list or a
// read-only view of one.
//
// Mutating methods return an error rather than panicking so that a
// read-only implementation can reject them uniformly with [ErrReadOnly]
// through the same signatures.
type List[T comparable] interface {
	// Len returns the number of elements.
	Len() int

	// Get returns the element at index together with a presence flag.
	// Returns the zero value and false when index is out of range.
	Get(index int) (T, bool)

	// Contains reports whether the list contains value.
	Contains(value T) bool

	// IndexOf returns the index of the first occurrence of value, or -1.
	IndexOf(value T) int

	// All returns a copy of the elements as a plain Go slice.
	All() []T

	// Values returns an iterator over the elements in list order.
	Values() iter.Seq[T]

	// Set replaces the element at index with value.
	Set(index int, value T) error

	// Add appends values to the end of the list.
	Add(values ...T) error

	// Insert inserts value at index, shifting later elements right.
	// Index may equal Len(), in which case Insert behaves like Add.
	Insert(index int, value T) error

	// RemoveAt removes the element at index, shifting later elements left.
	RemoveAt(index int) error

	// Remove removes the first occurrence of value and reports whether an
	// occurrence was found.
	Remove(value T) (bool, error)

	// Clear removes all elements.
	Clear() error
}
