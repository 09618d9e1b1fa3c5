// Package compare provides a generic Comparer interface and composable
// combinators for building ordering functions, inspired by .NET's
// Comparer<T> and its ComparerExtensions.
//
// # Comparers
//
// The central type is [Comparer][T], a capability with a single method:
//
//	Compare(a, b T) int // <0 when a before b, 0 when equal, >0 when a after b
//
// Comparers are built from key selectors and composed into richer orderings
// without writing a comparison type by hand:
//
//	byAge := compare.By(func(p Person) int { return p.Age })
//	byAgeThenName := compare.ThenBy(byAge, func(p Person) string { return p.Name })
//	oldest := compare.Max(byAge, alice, bob)
//
// A comparer's Compare method value plugs directly into the standard
// library's sort helpers:
//
//	slices.SortFunc(people, byAgeThenName.Compare)
//
// # Key-based operations
//
// Go generics do not allow methods to introduce new type parameters, so
// key-based operations (By, ThenBy, ...) are package-level functions rather
// than methods on Comparer. Each comes in two forms: one constrained to
// [cmp.Ordered] keys using the key type's natural order, and a Func variant
// taking an explicit key comparer:
//
//	compare.By(func(p Person) int { return p.Age })
//	compare.ByFunc(func(p Person) string { return p.Name }, caseInsensitive)
//
// # Chaining
//
// [ChainWith] and [Chain] evaluate their operands in order and return the
// first non-zero result. Chaining two chains always yields one flat chain,
// never a chain wrapping another chain, so the cost per Compare call stays
// proportional to the number of constituent comparers regardless of how the
// composite was assembled.
//
// # Errors
//
// Every combinator validates its required arguments eagerly and panics with
// an [ArgumentError] naming the offending parameter when one is nil. A nil
// comparer or key selector is a programming error at the call site, not a
// runtime condition, so it is reported the way the standard library reports
// misuse (compare regexp.MustCompile). All operations are otherwise pure:
// they never mutate their inputs and never fail at Compare time.
package compare
