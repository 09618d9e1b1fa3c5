package compare

import "cmp"

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a comparer whose order is the opposite of comparer's.
// The result compares by swapping the arguments, so Reverse(c).Compare(x, y)
// equals c.Compare(y, x) exactly; results are never negated.
//
// Reversing a chain reverses the composite ordering as a whole; the chain
// keeps its constituents and Reverse wraps it. Panics with [ArgumentError]
// if comparer is nil.
func Reverse[T any](comparer Comparer[T]) Comparer[T] {
	if comparer == nil {
		panic(&ArgumentError{Param: "comparer"})
	}
	return newReverse(comparer)
}

// Chain returns a comparer that evaluates comparers in order and returns
// the first non-zero result, or zero when every constituent reports equal.
//
// Operands that are themselves chains are spliced in, so the result is
// always a single flat chain: no constituent of a chain is ever another
// chain, and the number of Compare calls in the worst case equals the
// total number of leaf comparers however the chain was assembled.
//
// The constituent list is fixed at construction; later calls never observe
// a different sequence. Panics with [ArgumentError] if no comparer is given
// or any comparer is nil.
func Chain[T any](comparers ...Comparer[T]) Comparer[T] {
	if len(comparers) == 0 {
		panic(&ArgumentError{Param: "comparers"})
	}
	n := 0
	for _, c := range comparers {
		if c == nil {
			panic(&ArgumentError{Param: "comparers"})
		}
		if links := chainElements(c); links != nil {
			n += len(links)
		} else {
			n++
		}
	}
	flat := make([]Comparer[T], 0, n)
	for _, c := range comparers {
		if links := chainElements(c); links != nil {
			flat = append(flat, links...)
		} else {
			flat = append(flat, c)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &comparer[T]{kind: kindChain, chain: flat}
}

// ChainWith returns a comparer that evaluates comparer first and consults
// next only when comparer reports equal:
//
//	byAgeThenName := compare.ChainWith(byAge, byName)
//
// Like [Chain], the result is always one flat chain. Panics with
// [ArgumentError] if comparer or next is nil.
func ChainWith[T any](comparer, next Comparer[T]) Comparer[T] {
	if comparer == nil {
		panic(&ArgumentError{Param: "comparer"})
	}
	if next == nil {
		panic(&ArgumentError{Param: "next"})
	}
	return Chain(comparer, next)
}

// ThenBy returns a comparer that refines comparer by the natural order of
// the key extracted by keySelector, consulted only when comparer reports
// equal:
//
//	byAgeThenName := compare.ThenBy(byAge, func(p Person) string { return p.Name })
//
// Panics with [ArgumentError] if comparer or keySelector is nil.
func ThenBy[T any, K cmp.Ordered](comparer Comparer[T], keySelector func(T) K) Comparer[T] {
	if comparer == nil {
		panic(&ArgumentError{Param: "comparer"})
	}
	return Chain(comparer, By(keySelector))
}

// ThenByFunc is [ThenBy] with an explicit key comparer.
// Panics with [ArgumentError] if comparer, keySelector or keyComparer is nil.
func ThenByFunc[T, K any](comparer Comparer[T], keySelector func(T) K, keyComparer Comparer[K]) Comparer[T] {
	if comparer == nil {
		panic(&ArgumentError{Param: "comparer"})
	}
	return Chain(comparer, ByFunc(keySelector, keyComparer))
}

// ThenByDescending is [ThenBy] with the key order reversed.
// Panics with [ArgumentError] if comparer or keySelector is nil.
func ThenByDescending[T any, K cmp.Ordered](comparer Comparer[T], keySelector func(T) K) Comparer[T] {
	if comparer == nil {
		panic(&ArgumentError{Param: "comparer"})
	}
	return Chain(comparer, ByDescending(keySelector))
}

// ThenByDescendingFunc is [ThenByFunc] with the key order reversed.
// Panics with [ArgumentError] if comparer, keySelector or keyComparer is nil.
func ThenByDescendingFunc[T, K any](comparer Comparer[T], keySelector func(T) K, keyComparer Comparer[K]) Comparer[T] {
	if comparer == nil {
		panic(&ArgumentError{Param: "comparer"})
	}
	return Chain(comparer, ByDescendingFunc(keySelector, keyComparer))
}

// newReverse exists because Reverse's parameter name shadows the comparer type.
func newReverse[T any](inner Comparer[T]) Comparer[T] {
	return &comparer[T]{kind: kindReverse, inner: inner}
}
