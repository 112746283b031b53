package list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/ranges/adaptor"
	"go.lepak.sg/ranges/iterator"
	"go.lepak.sg/ranges/to"
	"go.lepak.sg/ranges/view"
)

func elems[T any](l *List[T]) []T {
	return slices.Collect(iterator.Elements[T](l))
}

func backwards[T any](l *List[T]) []T {
	var out []T
	for p := l.End(); !p.Equal(l.Begin()); {
		p = p.Prev()
		out = append(out, p.Current())
	}
	return out
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		do   func(l *List[int])
		want []int
	}{
		{
			name: "empty",
			do:   func(*List[int]) {},
			want: nil,
		},
		{
			name: "push back",
			do: func(l *List[int]) {
				l.PushBack(1)
				l.PushBack(2)
			},
			want: []int{1, 2},
		},
		{
			name: "push front",
			do: func(l *List[int]) {
				l.PushFront(1)
				l.PushFront(2)
				l.PushBack(3)
			},
			want: []int{2, 1, 3},
		},
		{
			name: "remove middle",
			do: func(l *List[int]) {
				l.PushBack(1)
				l.PushBack(2)
				l.PushBack(3)
				next := l.Remove(l.Begin().Next())
				assert.Equal(t, 3, next.Current())
			},
			want: []int{1, 3},
		},
		{
			name: "remove ends",
			do: func(l *List[int]) {
				l.PushBack(1)
				l.PushBack(2)
				l.PushBack(3)
				l.Remove(l.Begin())
				end := l.Remove(l.End().Prev())
				assert.True(t, end.Equal(l.End()))
			},
			want: []int{2},
		},
		{
			name: "remove only",
			do: func(l *List[int]) {
				l.PushBack(1)
				l.Remove(l.Begin())
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			tt.do(l)
			assert.Equal(t, tt.want, elems(l))
			assert.Equal(t, len(tt.want), l.Len())

			rev := slices.Clone(tt.want)
			slices.Reverse(rev)
			assert.Equal(t, rev, backwards(l))
		})
	}
}

func TestListPanics(t *testing.T) {
	l := New(1)
	other := New(1)

	assert.PanicsWithValue(t, "cannot remove the end", func() { l.Remove(l.End()) })
	assert.PanicsWithValue(t, "position is not in this list", func() { l.Remove(other.Begin()) })
	assert.PanicsWithValue(t, "read at the end of the list", func() { l.End().Current() })
	assert.PanicsWithValue(t, "next at the end of the list", func() { l.End().Next() })
	assert.PanicsWithValue(t, "prev at the start of the list", func() { l.Begin().Prev() })

	empty := New[int]()
	assert.PanicsWithValue(t, "prev in an empty list", func() { empty.End().Prev() })
}

func TestListAsRange(t *testing.T) {
	l := New("a", "b", "c")
	assert.Equal(t, iterator.CategoryBidirectional, iterator.CategoryOf(l.Begin()))
	assert.Equal(t, 3, iterator.Distance(l.Begin(), l.End()))

	v, err := adaptor.Adapt[string, Pos[string], Pos[string]](l, adaptor.Base{})
	assert.NoError(t, err)
	assert.Equal(t, iterator.CategoryBidirectional, v.Category())
	cv := adaptor.ReadOnly(v)
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(cv.All()))
	assert.Equal(t, []string{"a", "b", "c"}, elems(l), "traversal leaves the list alone")
	// CBegin wraps the list's own position type, which can still write
	cv.CBegin().Base().Set("A")
	assert.Equal(t, "A", l.Begin().Current())
	l.Begin().Set("a")
	_, ok := v.Size()
	assert.False(t, ok)

	l.Begin().Next().Set("B")
	assert.Equal(t, []string{"a", "B", "c"}, elems(l))

	dst := New[string]()
	assert.NoError(t, to.Into[string](dst, l))
	assert.Equal(t, []string{"a", "B", "c"}, elems(dst))
}

func TestListSplit(t *testing.T) {
	l := New(1, 0, 2, 3, 0)
	segs, err := to.Segments(view.SplitOn(l, 0))
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {2, 3}}, segs)
}
