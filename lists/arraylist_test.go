package lists_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-dotnet-utils/lists"
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	l := lists.New(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, l.All())
	assert.Equal(t, 3, l.Len())
}

func TestFromCopies(t *testing.T) {
	s := []string{"a", "b", "c"}
	l := lists.From(s)
	s[0] = "z" // mutate the source slice; the list must not see it
	v, ok := l.Get(0)
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestZeroValue(t *testing.T) {
	var l lists.ArrayList[int]
	assert.Zero(t, l.Len())
	require.NoError(t, l.Add(1))
	assert.Equal(t, []int{1}, l.All())
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	l := lists.New(10, 20, 30)

	v, ok := l.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = l.Get(-1)
	assert.False(t, ok)
	_, ok = l.Get(3)
	assert.False(t, ok)
}

func TestContainsAndIndexOf(t *testing.T) {
	l := lists.New("a", "b", "b")
	assert.True(t, l.Contains("b"))
	assert.False(t, l.Contains("z"))
	assert.Equal(t, 1, l.IndexOf("b"))
	assert.Equal(t, -1, l.IndexOf("z"))
}

func TestAllCopies(t *testing.T) {
	l := lists.New(1, 2, 3)
	out := l.All()
	out[0] = 99 // mutate the returned slice; the list must not see it
	v, _ := l.Get(0)
	assert.Equal(t, 1, v)
}

func TestValues(t *testing.T) {
	l := lists.New(4, 8, 15)
	assert.Equal(t, []int{4, 8, 15}, slices.Collect(l.Values()))
}

func TestValuesEarlyStop(t *testing.T) {
	l := lists.New(1, 2, 3, 4)
	var got []int
	for v := range l.Values() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1,2,3]", lists.New(1, 2, 3).String())
	assert.Equal(t, "[]", lists.New[int]().String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutations
// ─────────────────────────────────────────────────────────────────────────────

func TestSet(t *testing.T) {
	l := lists.New(1, 2, 3)
	require.NoError(t, l.Set(1, 20))
	assert.Equal(t, []int{1, 20, 3}, l.All())

	assert.ErrorIs(t, l.Set(-1, 0), lists.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Set(3, 0), lists.ErrIndexOutOfRange)
}

func TestAdd(t *testing.T) {
	l := lists.New(1)
	require.NoError(t, l.Add(2, 3))
	assert.Equal(t, []int{1, 2, 3}, l.All())
}

func TestInsert(t *testing.T) {
	l := lists.New("a", "c")
	require.NoError(t, l.Insert(1, "b"))
	assert.Equal(t, []string{"a", "b", "c"}, l.All())

	// index == Len() appends
	require.NoError(t, l.Insert(3, "d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.All())

	assert.ErrorIs(t, l.Insert(-1, "x"), lists.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Insert(5, "x"), lists.ErrIndexOutOfRange)
}

func TestRemoveAt(t *testing.T) {
	l := lists.New(1, 2, 3)
	require.NoError(t, l.RemoveAt(1))
	assert.Equal(t, []int{1, 3}, l.All())

	assert.ErrorIs(t, l.RemoveAt(-1), lists.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.RemoveAt(2), lists.ErrIndexOutOfRange)
}

func TestRemove(t *testing.T) {
	l := lists.New(1, 2, 2, 3)

	removed, err := l.Remove(2)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []int{1, 2, 3}, l.All(), "only the first occurrence goes")

	removed, err = l.Remove(99)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, []int{1, 2, 3}, l.All())
}

func TestClear(t *testing.T) {
	l := lists.New(1, 2, 3)
	require.NoError(t, l.Clear())
	assert.Zero(t, l.Len())
	assert.Equal(t, []int{}, l.All())
}
