package compare

// ─────────────────────────────────────────────────────────────────────────────
// Selection helpers
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the smaller of x and y under comparer, preferring x when the
// two are equal:
//
//	younger := compare.Min(byAge, alice, bob)
//
// Panics with [ArgumentError] if comparer is nil.
func Min[T any](comparer Comparer[T], x, y T) T {
	if comparer == nil {
		panic(&ArgumentError{Param: "comparer"})
	}
	if comparer.Compare(x, y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y under comparer, preferring x when the
// two are equal:
//
//	older := compare.Max(byAge, alice, bob)
//
// Panics with [ArgumentError] if comparer is nil.
func Max[T any](comparer Comparer[T], x, y T) T {
	if comparer == nil {
		panic(&ArgumentError{Param: "comparer"})
	}
	if comparer.Compare(x, y) >= 0 {
		return x
	}
	return y
}
