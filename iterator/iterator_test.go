package iterator

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type forwardOnly struct {
	i int
}

func (f forwardOnly) Next() forwardOnly        { return forwardOnly{f.i + 1} }
func (f forwardOnly) Current() int             { return f.i }
func (f forwardOnly) Equal(o forwardOnly) bool { return f.i == o.i }

type stepOnly int

func (s stepOnly) Next() stepOnly { return s + 1 }

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryRandomAccess, CategoryOf(Index[int]{}))
	assert.Equal(t, CategoryRandomAccess, CategoryOf(Count[uint8]{}))
	assert.Equal(t, CategoryForward, CategoryOf(forwardOnly{}))
	assert.Equal(t, CategoryInput, CategoryOf(stepOnly(0)))
	assert.Equal(t, CategoryInput, CategoryOf(Pull[int]{}))
	assert.Equal(t, CategoryForward, CategoryOf(Iota[forwardOnly]{}))
	assert.Equal(t, CategoryRandomAccess, CategoryOf(Iota[Index[int]]{}))
	assert.Equal(t, "bidirectional", CategoryBidirectional.String())
	assert.Equal(t, "unknown", Category(42).String())
}

func TestSlice(t *testing.T) {
	xs := []int{1, 2, 3}
	r := Slice(xs)

	assert.Equal(t, xs, slices.Collect(Elements[int](r)))
	assert.Equal(t, 3, Distance(r.Begin(), r.End()))

	n, ok := SizedDistance(r.Begin(), r.End())
	require.True(t, ok)
	assert.Equal(t, 3, n)

	it := Advance(r.Begin(), 2)
	assert.Equal(t, 3, it.Current())
	assert.Equal(t, 2, it.Pos())
	assert.Equal(t, 1, Advance(it, -2).Current())

	it.Set(30)
	assert.Equal(t, []int{1, 2, 30}, xs)

	empty := Slice([]string(nil))
	assert.True(t, empty.End().Equal(empty.Begin()))
	assert.Empty(t, slices.Collect(Elements[string](empty)))
}

func TestAdvanceBounded(t *testing.T) {
	r := Slice([]int{1, 2, 3})
	tests := []struct {
		name    string
		n       int
		wantPos int
		left    int
	}{
		{"zero", 0, 0, 0},
		{"inside", 2, 2, 0},
		{"to end", 3, 3, 0},
		{"past end", 5, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, left := AdvanceBounded(r.Begin(), tt.n, r.End())
			assert.Equal(t, tt.wantPos, it.Pos())
			assert.Equal(t, tt.left, left)
		})
	}
}

func TestAdvanceForward(t *testing.T) {
	it := Advance(forwardOnly{}, 4)
	assert.Equal(t, 4, it.Current())

	assert.PanicsWithValue(t, "negative advance of a forward position", func() {
		Advance(it, -1)
	})

	_, ok := SizedDistance(forwardOnly{}, forwardOnly{3})
	assert.False(t, ok)
	assert.Equal(t, 3, Distance(forwardOnly{}, forwardOnly{3}))
}

func TestInts(t *testing.T) {
	r := Ints(5)
	assert.True(t, IsInfinite(r.End()))
	assert.PanicsWithValue(t, "distance to an unreachable end", func() {
		Distance(r.Begin(), r.End())
	})

	var got []int
	for v := range Elements[int](r) {
		if v > 8 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 6, 7, 8}, got)

	iv := Interval[int8](-2, 2)
	assert.Equal(t, []int8{-2, -1, 0, 1}, slices.Collect(Elements[int8](iv)))
	assert.Equal(t, 4, Distance(iv.Begin(), iv.End()))
	assert.Panics(t, func() { Interval(3, 1) })
}

func TestIotaFrom(t *testing.T) {
	xs := Slice([]string{"a", "b", "c"})
	r := IotaFrom(xs.Begin())

	it := r.Begin()
	assert.Equal(t, 0, it.Current().Pos())
	it = it.Next().Next()
	assert.Equal(t, "c", it.Current().Current())
	assert.Equal(t, "b", it.Prev().Current().Current())
	assert.Equal(t, 2, r.Begin().DistanceTo(it))
	assert.True(t, r.Begin().Advance(2).Equal(it))
	assert.False(t, r.End().Equal(it))
	assert.True(t, IsInfinite(r.End()))

	fr := IotaFrom(forwardOnly{})
	assert.PanicsWithValue(t, "iota position is not bidirectional", func() {
		fr.Begin().Prev()
	})
	assert.PanicsWithValue(t, "iota position has no distance", func() {
		fr.Begin().DistanceTo(fr.Begin())
	})
	assert.PanicsWithValue(t, "iota position is not comparable", func() {
		IotaFrom(stepOnly(0)).Begin().Equal(Iota[stepOnly]{})
	})
}

func TestFromSeq(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := FromSeq(slices.Values([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(Elements[int](r)))
	assert.True(t, r.End().Equal(r.Begin()))
	assert.True(t, IsSinglePass(r.Begin()))

	// exhausted ranges stop on their own, Stop is still safe
	r.Stop()
}

func TestFromSeqShared(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := FromSeq(slices.Values([]string{"a", "b", "c"}))
	defer r.Stop()

	a := r.Begin()
	b := a
	assert.Equal(t, "a", a.Current())
	a = a.Next()
	assert.Equal(t, "b", b.Current(), "single pass positions share state")
	assert.False(t, r.End().Equal(a))
}

func TestFromSeqStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	var seq iter.Seq[int] = func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	r := FromSeq(seq)
	it := r.Begin()
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, it.Current())
		it = it.Next()
	}
	r.Stop()
	assert.True(t, r.End().Equal(it))
}

func TestSubrange(t *testing.T) {
	r := NewSubrange(Count[int]{n: 1}, Count[int]{n: 4})
	assert.Equal(t, r.Begin(), r.CBegin())
	assert.Equal(t, r.End(), r.CEnd())

	all := All[Count[int], Count[int]](r)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(Elements[int](all)))
}
