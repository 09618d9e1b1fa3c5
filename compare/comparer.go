package compare

import "cmp"

// Comparer is the capability to order two values of type T.
//
// Compare returns a negative value when a is ordered before b, zero when
// they are equal under this ordering, and a positive value when a is
// ordered after b. The magnitude of the result carries no meaning.
//
// Implement Comparer on your own types, or build one with the package's
// constructors ([Natural], [Func], [By], ...) and combinators ([Reverse],
// [ChainWith], [ThenBy], ...). User-supplied implementations compose with
// the combinators exactly like package-built ones.
type Comparer[T any] interface {
	Compare(a, b T) int
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal representation
// ─────────────────────────────────────────────────────────────────────────────

// A comparer value is one of three variants, discriminated by kind:
//
//	kindBase:    compare holds the ordering function
//	kindReverse: inner holds the comparer whose order is flipped
//	kindChain:   chain holds the ordered constituents, first non-zero wins
//
// Combinators branch on the tag (see chainElements), which keeps the
// flattening rule explicit: a chain never contains another chain.
type kind uint8

const (
	kindBase kind = iota
	kindReverse
	kindChain
)

type comparer[T any] struct {
	kind    kind
	compare func(a, b T) int // kindBase
	inner   Comparer[T]      // kindReverse
	chain   []Comparer[T]    // kindChain; immutable after construction
}

// Compare implements [Comparer].
func (c *comparer[T]) Compare(a, b T) int {
	switch c.kind {
	case kindReverse:
		// Swapping the arguments, rather than negating the result, stays
		// correct for comparers that signal with extreme values such as
		// math.MinInt (whose negation overflows).
		return c.inner.Compare(b, a)
	case kindChain:
		for _, link := range c.chain {
			if r := link.Compare(a, b); r != 0 {
				return r
			}
		}
		return 0
	default:
		return c.compare(a, b)
	}
}

// chainElements returns the constituents of c when c is a chain built by
// this package, and nil otherwise. Foreign Comparer implementations are
// opaque and therefore never treated as chains.
func chainElements[T any](c Comparer[T]) []Comparer[T] {
	if cc, ok := c.(*comparer[T]); ok && cc.kind == kindChain {
		return cc.chain
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Base constructors
// ─────────────────────────────────────────────────────────────────────────────

// Natural returns a comparer using the natural order of T, as defined by
// [cmp.Compare]. It is the ordering the key-based constructors fall back to
// when no key comparer is supplied, exposed so it can be named explicitly:
//
//	compare.Min(compare.Natural[int](), 3, 5) // → 3
func Natural[T cmp.Ordered]() Comparer[T] {
	return &comparer[T]{kind: kindBase, compare: cmp.Compare[T]}
}

// Func adapts a plain comparison function into a [Comparer], in the manner
// of http.HandlerFunc:
//
//	byLen := compare.Func(func(a, b string) int { return len(a) - len(b) })
//
// Panics with [ArgumentError] if fn is nil.
func Func[T any](fn func(a, b T) int) Comparer[T] {
	if fn == nil {
		panic(&ArgumentError{Param: "fn"})
	}
	return &comparer[T]{kind: kindBase, compare: fn}
}
