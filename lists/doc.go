// Package lists provides a thin, generic mutable list wrapper and a live
// read-only view over it, inspired by .NET's List<T>, ReadOnlyCollection<T>
// and List<T>.AsReadOnly.
//
// # List and ArrayList
//
// [List][T] is the interface for an ordered, indexable sequence.
// [ArrayList][T] is its canonical implementation, a thin wrapper around a
// Go slice:
//
//	l := lists.New(4, 8, 15, 16, 23, 42)
//	l.Add(99)
//	v, ok := l.Get(2) // → 15, true
//
// # Read-only views
//
// [AsReadOnly] wraps any [List][T] in a [ReadOnly][T] view. The view holds
// a reference to the backing list, never a copy: every read, including
// Len, Get and enumeration, reflects the backing list's state at the
// moment of the call. It is a live projection, not a snapshot:
//
//	l := lists.New(1, 2, 3)
//	v := lists.AsReadOnly(l)
//	l.Add(4)
//	v.Len() // → 4
//
// Every mutating method on the view ([ReadOnly.Add], [ReadOnly.Clear],
// [ReadOnly.Insert], [ReadOnly.Remove], [ReadOnly.RemoveAt],
// [ReadOnly.Set]) returns [ErrReadOnly] and leaves the backing list
// untouched. The view satisfies [List][T], so it substitutes for the
// mutable list anywhere a List is accepted while rejecting writes at
// runtime.
//
// # Concurrency
//
// The package does no locking. A view adds no synchronization and no
// protection against mutation during enumeration; whatever concurrent-use
// and modification-during-iteration behavior the backing list has, the
// view inherits unchanged.
package lists
