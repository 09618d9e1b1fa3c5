package compare_test

import (
	"testing"

	"github.com/hasbyte1/go-dotnet-utils/compare"
)

// benchPeople builds n people with colliding ages so that chained
// comparers fall through to their later constituents.
func benchPeople(n int) []person {
	out := make([]person, n)
	for i := range out {
		out[i] = person{Name: string(rune('a' + i%26)), Age: i % 10}
	}
	return out
}

func BenchmarkByCompare(b *testing.B) {
	c := byAge()
	people := benchPeople(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Compare(people[0], people[1])
	}
}

func BenchmarkChainCompare(b *testing.B) {
	c := compare.ThenBy(byAge(), func(p person) string { return p.Name })
	x := person{Name: "Alice", Age: 30}
	y := person{Name: "Bob", Age: 30}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Compare(x, y)
	}
}

func BenchmarkDeepChainCompare(b *testing.B) {
	// Assembled pairwise; flattening keeps the per-call cost identical to a
	// chain built in one step.
	c := byAge()
	for range 8 {
		c = compare.ChainWith(c, byName())
	}
	x := person{Name: "Alice", Age: 30}
	y := person{Name: "Alice", Age: 30}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Compare(x, y)
	}
}

func BenchmarkReverseCompare(b *testing.B) {
	c := compare.Reverse(byAge())
	x := person{Age: 20}
	y := person{Age: 80}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Compare(x, y)
	}
}
