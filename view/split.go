package view

import (
	"go.lepak.sg/ranges/facade"
	"go.lepak.sg/ranges/iterator"
)

// Boundary reports whether a delimiter starts at cur and how many elements it
// spans. A delimiter may be empty.
type Boundary[J, S any] func(cur J, last S) (bool, int)

// Segment is one piece of a split range: the positions from the start of the
// piece up to the next delimiter, read through.
type Segment[T any, J iterator.Forward[J, T]] struct {
	IndirectView[T, J, TakeWhileCursor[J, iterator.Iota[J]], TakeWhileSentinel[J, iterator.Iota[J], iterator.Unreachable[iterator.Iota[J]]]]
}

// SplitCursor is a position in a split range. zero records that the
// delimiter ending the previous piece was empty, so that the next step moves
// past it instead of matching it again.
type SplitCursor[T any, J iterator.Forward[J, T], S iterator.Sentinel[J]] struct {
	zero bool
	cur  J
	last S
	fun  Boundary[J, S]
}

func newSplitCursor[T any, J iterator.Forward[J, T], S iterator.Sentinel[J]](first J, last S, fun Boundary[J, S]) SplitCursor[T, J, S] {
	c := SplitCursor[T, J, S]{cur: first, last: last, fun: fun}
	if !last.Equal(first) {
		match, n := fun(first, last)
		c.zero = match && n == 0
	}
	return c
}

// Current is the piece starting at c.
func (c SplitCursor[T, J, S]) Current() Segment[T, J] {
	first, zero, last, fun := c.cur, c.zero, c.last, c.fun
	pred := func(pos J) bool {
		if zero && pos.Equal(first) {
			return true
		}
		if last.Equal(pos) {
			return false
		}
		match, _ := fun(pos, last)
		return !match
	}
	tw := TakeWhile[J, iterator.Iota[J], iterator.Unreachable[iterator.Iota[J]]](iterator.IotaFrom(first), pred)
	return Segment[T, J]{
		IndirectView: Indirect[T, J, TakeWhileCursor[J, iterator.Iota[J]], TakeWhileSentinel[J, iterator.Iota[J], iterator.Unreachable[iterator.Iota[J]]]](tw),
	}
}

// Next moves to the piece after the next delimiter. It must not be called on
// a cursor that is done.
func (c SplitCursor[T, J, S]) Next() SplitCursor[T, J, S] {
	if debug && c.last.Equal(c.cur) {
		panic("next on an exhausted split cursor")
	}
	if c.zero {
		c.cur, _ = iterator.AdvanceBounded(c.cur, 1, c.last)
		c.zero = false
	}
	for !c.last.Equal(c.cur) {
		if match, n := c.fun(c.cur, c.last); match {
			c.zero = n == 0
			c.cur = iterator.Advance(c.cur, n)
			return c
		}
		c.cur = c.cur.Next()
	}
	return c
}

func (c SplitCursor[T, J, S]) Done() bool {
	return c.last.Equal(c.cur)
}

func (c SplitCursor[T, J, S]) Equal(o SplitCursor[T, J, S]) bool {
	return c.cur.Equal(o.cur)
}

// Base is the position in the split range where the piece starts.
func (c SplitCursor[T, J, S]) Base() J {
	return c.cur
}

// Split is a range split into pieces at every delimiter. A delimiter at the
// very end does not start another, empty, piece.
type Split[T any, J iterator.Forward[J, T], S iterator.Sentinel[J]] struct {
	facade.Range[Segment[T, J], SplitCursor[T, J, S]]
	rng iterator.Subrange[J, S]
}

// SplitFunc splits rng wherever fun finds a delimiter.
func SplitFunc[T any, J iterator.Forward[J, T], S iterator.Sentinel[J]](rng iterator.Range[J, S], fun Boundary[J, S]) Split[T, J, S] {
	if fun == nil {
		panic("nil boundary")
	}
	sub := iterator.All[J, S](rng)
	return Split[T, J, S]{
		Range: facade.New[Segment[T, J]](func() SplitCursor[T, J, S] {
			return newSplitCursor[T](sub.Begin(), sub.End(), fun)
		}),
		rng: sub,
	}
}

// SplitOn splits rng at every element equal to val.
func SplitOn[T comparable, J iterator.Forward[J, T], S iterator.Sentinel[J]](rng iterator.Range[J, S], val T) Split[T, J, S] {
	return SplitFunc[T, J, S](rng, func(cur J, _ S) (bool, int) {
		return cur.Current() == val, 1
	})
}

// SplitBy splits rng at every occurrence of the sequence pat. An empty pat
// splits rng into its elements.
func SplitBy[T comparable, J iterator.Forward[J, T], S iterator.Sentinel[J], P iterator.Forward[P, T], Q iterator.Sentinel[P]](rng iterator.Range[J, S], pat iterator.Range[P, Q]) Split[T, J, S] {
	pfirst, plast := pat.Begin(), pat.End()
	plen := iterator.Distance(pfirst, plast)
	return SplitFunc[T, J, S](rng, func(cur J, last S) (bool, int) {
		if rem, ok := iterator.SizedDistance(cur, last); ok && rem < plen {
			return false, 0
		}
		for p := pfirst; !plast.Equal(p); p = p.Next() {
			if last.Equal(cur) || cur.Current() != p.Current() {
				return false, 0
			}
			cur = cur.Next()
		}
		return true, plen
	})
}

func (s Split[T, J, S]) Base() iterator.Subrange[J, S] {
	return s.rng
}
