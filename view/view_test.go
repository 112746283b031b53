package view

import (
	"slices"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/ranges/iterator"
	"go.lepak.sg/ranges/testutils"
)

// fwd is a forward only position over bytes, with no known size.
type fwd struct {
	s string
	i int
}

func (f fwd) Next() fwd        { f.i++; return f }
func (f fwd) Current() byte    { return f.s[f.i] }
func (f fwd) Equal(o fwd) bool { return f.i == o.i }

func fwdString(s string) iterator.Subrange[fwd, fwd] {
	return iterator.NewSubrange(fwd{s: s}, fwd{s: s, i: len(s)})
}

func bytes(s string) iterator.Subrange[iterator.Index[byte], iterator.Index[byte]] {
	return iterator.Slice([]byte(s))
}

func pieces[T any, J iterator.Forward[J, T], S iterator.Sentinel[J]](s Split[T, J, S]) [][]T {
	out := [][]T{}
	for seg := range s.All() {
		xs := slices.Collect(seg.All())
		if xs == nil {
			xs = []T{}
		}
		out = append(out, xs)
	}
	return out
}

func strs[J iterator.Forward[J, byte], S iterator.Sentinel[J]](s Split[byte, J, S]) []string {
	out := []string{}
	for _, p := range pieces(s) {
		out = append(out, string(p))
	}
	return out
}

func TestSplitOn(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want [][]int
	}{
		{"leading run", []int{1, 1, 1, 2, 3, 4, 4}, [][]int{{}, {}, {}, {2, 3, 4, 4}}},
		{"empty", nil, [][]int{}},
		{"only delimiter", []int{1}, [][]int{{}}},
		{"middle", []int{2, 1, 3}, [][]int{{2}, {3}}},
		{"trailing", []int{2, 1}, [][]int{{2}}},
		{"leading", []int{1, 2}, [][]int{{}, {2}}},
		{"adjacent", []int{2, 1, 1, 3}, [][]int{{2}, {}, {3}}},
		{"no delimiter", []int{5, 6}, [][]int{{5, 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pieces(SplitOn(iterator.Slice(tt.in), 1))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitBy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		pat  string
		want []string
	}{
		{"comma", "a,,b", ",", []string{"a", "", "b"}},
		{"two bytes", "xabyabz", "ab", []string{"x", "y", "z"}},
		{"overlapping start", "aab", "ab", []string{"a"}},
		{"pattern too long", "a", "abc", []string{"a"}},
		{"partial at end", "xa", "ab", []string{"xa"}},
		{"empty pattern", "abc", "", []string{"a", "b", "c"}},
		{"whole", "ab", "ab", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strs(SplitBy[byte](bytes(tt.in), bytes(tt.pat)))
			assert.Equal(t, tt.want, got)

			// no size known, the pattern is compared element by element
			got = strs(SplitBy[byte](fwdString(tt.in), fwdString(tt.pat)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitFunc(t *testing.T) {
	camel := func(cur fwd, _ fwd) (bool, int) {
		return unicode.IsUpper(rune(cur.Current())), 0
	}
	spaces := func(cur fwd, last fwd) (bool, int) {
		n := 0
		for ; !last.Equal(cur) && cur.Current() == ' '; cur = cur.Next() {
			n++
		}
		return n > 0, n
	}
	tests := []struct {
		name string
		in   string
		fun  Boundary[fwd, fwd]
		want []string
	}{
		{"empty delimiter", "helloWorldFoo", camel, []string{"hello", "World", "Foo"}},
		{"empty delimiter first", "FooBar", camel, []string{"Foo", "Bar"}},
		{"single upper", "X", camel, []string{"X"}},
		{"runs", "a  b c", spaces, []string{"a", "b", "c"}},
		{"leading run", "  a", spaces, []string{"", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strs(SplitFunc[byte](fwdString(tt.in), tt.fun))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitCursor(t *testing.T) {
	s := SplitOn(iterator.Slice([]int{7, 0, 8, 0, 9}), 0)

	a, b := s.Begin(), s.Begin()
	assert.True(t, a.Equal(b))
	assert.False(t, a.Done())

	b = b.Next()
	assert.False(t, a.Equal(b))
	assert.Equal(t, 2, b.Base().Pos())
	assert.Equal(t, []int{8}, slices.Collect(b.Current().All()))
	assert.Equal(t, []int{7}, slices.Collect(a.Current().All()), "cursors are values")

	b = b.Next().Next()
	assert.True(t, b.Done())
	assert.True(t, s.End().Equal(b))

	it := s.Iterator()
	n := 0
	for it.Next() {
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, 5, iterator.Distance(s.Base().Begin(), s.Base().End()))

	assert.Panics(t, func() { SplitFunc[int](iterator.Slice([]int{}), nil) })
}

func TestSegment(t *testing.T) {
	s := SplitOn(iterator.Slice([]int{4, 5, 0}), 0)
	seg := s.Begin().Current()

	assert.Equal(t, iterator.CategoryRandomAccess, seg.Category())
	assert.False(t, seg.Infinite())
	assert.False(t, seg.Empty())
	assert.Equal(t, 5, seg.Begin().Next().Current())
	assert.Equal(t, 4, seg.Begin().Next().Prev().Current())
}

func TestTakeWhile(t *testing.T) {
	tw := TakeWhile[int](iterator.Ints(1), func(n int) bool { return n < 4 })
	testutils.Drain(t, []int{1, 2, 3}, tw.All())
	testutils.DrainIterator(t, []int{1, 2, 3}, tw.Iterator())
	assert.False(t, tw.Infinite())

	xs := TakeWhile[string](iterator.Slice([]string{"a", "b"}), func(string) bool { return true })
	assert.Equal(t, []string{"a", "b"}, slices.Collect(xs.All()))

	none := TakeWhile[int](iterator.Slice([]int{5, 1}), func(n int) bool { return n < 4 })
	assert.True(t, none.Empty())

	assert.Panics(t, func() { TakeWhile[int](iterator.Ints(0), nil) })
}

func TestIndirect(t *testing.T) {
	words := iterator.Slice([]string{"x", "y", "z"})
	positions := []iterator.Index[string]{words.Begin().Next().Next(), words.Begin()}

	v := Indirect[string, iterator.Index[string]](iterator.Slice(positions))
	assert.Equal(t, []string{"z", "x"}, slices.Collect(v.All()))

	n, ok := v.Size()
	require.True(t, ok)
	assert.Equal(t, 2, n)
}
