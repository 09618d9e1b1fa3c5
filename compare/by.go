package compare

import "cmp"

// ─────────────────────────────────────────────────────────────────────────────
// Key-based constructors
// ─────────────────────────────────────────────────────────────────────────────

// By returns a comparer ordering elements by the key extracted by
// keySelector, using the key type's natural order:
//
//	byAge := compare.By(func(p Person) int { return p.Age })
//
// For keys that are not [cmp.Ordered], or to override the key order, use
// [ByFunc]. Panics with [ArgumentError] if keySelector is nil.
func By[T any, K cmp.Ordered](keySelector func(T) K) Comparer[T] {
	if keySelector == nil {
		panic(&ArgumentError{Param: "keySelector"})
	}
	return &comparer[T]{kind: kindBase, compare: func(a, b T) int {
		return cmp.Compare(keySelector(a), keySelector(b))
	}}
}

// ByFunc returns a comparer ordering elements by the key extracted by
// keySelector, using keyComparer to order the keys:
//
//	byName := compare.ByFunc(
//	    func(p Person) string { return p.Name },
//	    caseInsensitive,
//	)
//
// Panics with [ArgumentError] if keySelector or keyComparer is nil.
func ByFunc[T, K any](keySelector func(T) K, keyComparer Comparer[K]) Comparer[T] {
	if keySelector == nil {
		panic(&ArgumentError{Param: "keySelector"})
	}
	if keyComparer == nil {
		panic(&ArgumentError{Param: "keyComparer"})
	}
	return &comparer[T]{kind: kindBase, compare: func(a, b T) int {
		return keyComparer.Compare(keySelector(a), keySelector(b))
	}}
}

// ByDescending is [By] with the resulting order reversed.
// Panics with [ArgumentError] if keySelector is nil.
func ByDescending[T any, K cmp.Ordered](keySelector func(T) K) Comparer[T] {
	return Reverse(By(keySelector))
}

// ByDescendingFunc is [ByFunc] with the resulting order reversed.
// Panics with [ArgumentError] if keySelector or keyComparer is nil.
func ByDescendingFunc[T, K any](keySelector func(T) K, keyComparer Comparer[K]) Comparer[T] {
	return Reverse(ByFunc(keySelector, keyComparer))
}
