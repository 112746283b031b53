package iterator

import (
	"golang.org/x/exp/constraints"
)

// Iota is a position whose elements are the positions of another range:
// reading it yields the wrapped position itself. It has the category of the
// position it wraps.
type Iota[I Stepper[I]] struct {
	at I
}

// IotaFrom is the unbounded range of positions at, at.Next(), ...
func IotaFrom[I Stepper[I]](at I) Subrange[Iota[I], Unreachable[Iota[I]]] {
	return NewSubrange(Iota[I]{at: at}, Unreachable[Iota[I]]{})
}

func (p Iota[I]) Current() I {
	return p.at
}

func (p Iota[I]) Next() Iota[I] {
	return Iota[I]{at: p.at.Next()}
}

func (p Iota[I]) Prev() Iota[I] {
	pv, ok := any(p.at).(Prever[I])
	if !ok {
		panic("iota position is not bidirectional")
	}
	return Iota[I]{at: pv.Prev()}
}

func (p Iota[I]) Advance(n int) Iota[I] {
	return Iota[I]{at: Advance(p.at, n)}
}

func (p Iota[I]) DistanceTo(o Iota[I]) int {
	d, ok := any(p.at).(Distancer[I])
	if !ok {
		panic("iota position has no distance")
	}
	return d.DistanceTo(o.at)
}

func (p Iota[I]) Equal(o Iota[I]) bool {
	eq, ok := any(p.at).(Equaler[I])
	if !ok {
		panic("iota position is not comparable")
	}
	return eq.Equal(o.at)
}

func (p Iota[I]) Category() Category {
	return CategoryOf(p.at)
}

func (p Iota[I]) SinglePass() bool {
	return IsSinglePass(p.at)
}

// Unreachable is the end of a range that never ends.
type Unreachable[I any] struct{}

func (Unreachable[I]) Equal(I) bool {
	return false
}

func (Unreachable[I]) Infinite() bool {
	return true
}

// Count is a random access position over the integers.
type Count[N constraints.Integer] struct {
	n N
}

var _ RandomAccess[Count[int], int] = Count[int]{}

// Ints is the unbounded range from, from+1, ...
func Ints[N constraints.Integer](from N) Subrange[Count[N], Unreachable[Count[N]]] {
	return NewSubrange(Count[N]{n: from}, Unreachable[Count[N]]{})
}

// Interval is the half open range [from, to).
func Interval[N constraints.Integer](from, to N) Subrange[Count[N], Count[N]] {
	if to < from {
		panic("interval ends before it starts")
	}
	return NewSubrange(Count[N]{n: from}, Count[N]{n: to})
}

func (c Count[N]) Current() N {
	return c.n
}

func (c Count[N]) Next() Count[N] {
	return Count[N]{n: c.n + 1}
}

func (c Count[N]) Prev() Count[N] {
	return Count[N]{n: c.n - 1}
}

func (c Count[N]) Advance(n int) Count[N] {
	return Count[N]{n: c.n + N(n)}
}

func (c Count[N]) DistanceTo(o Count[N]) int {
	return int(o.n) - int(c.n)
}

func (c Count[N]) Equal(o Count[N]) bool {
	return c.n == o.n
}
