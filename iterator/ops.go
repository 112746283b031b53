package iterator

import (
	"iter"
)

// Advance moves it by n. Random access positions jump, everything else
// steps; a negative n needs a bidirectional position.
func Advance[I Stepper[I]](it I, n int) I {
	cat := CategoryOf(it)
	if cat == CategoryRandomAccess {
		if a, ok := any(it).(Advancer[I]); ok {
			return a.Advance(n)
		}
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	if n == 0 {
		return it
	}
	p, ok := any(it).(Prever[I])
	if !ok || cat < CategoryBidirectional {
		panic("negative advance of a forward position")
	}
	for ; n < 0; n++ {
		it = p.Prev()
		p = any(it).(Prever[I])
	}
	return it
}

// AdvanceBounded steps it at most n times, stopping early at last. It
// returns the new position and the number of steps not taken.
func AdvanceBounded[I Stepper[I], S Sentinel[I]](it I, n int, last S) (I, int) {
	for ; n > 0 && !last.Equal(it); n-- {
		it = it.Next()
	}
	return it, n
}

// SizedDistance is the distance from first to last when it is known without
// walking the range.
func SizedDistance[I Stepper[I], S Sentinel[I]](first I, last S) (int, bool) {
	l, ok := any(last).(I)
	if !ok || CategoryOf(first) != CategoryRandomAccess {
		return 0, false
	}
	d, ok := any(first).(Distancer[I])
	if !ok {
		return 0, false
	}
	return d.DistanceTo(l), true
}

// Distance counts the steps from first to last.
func Distance[I Stepper[I], S Sentinel[I]](first I, last S) int {
	if IsInfinite(last) {
		panic("distance to an unreachable end")
	}
	if n, ok := SizedDistance(first, last); ok {
		return n
	}
	n := 0
	for ; !last.Equal(first); first = first.Next() {
		n++
	}
	return n
}

// Seq yields the elements from first up to last.
func Seq[T any, I Cursor[I, T], S Sentinel[I]](first I, last S) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; !last.Equal(it); it = it.Next() {
			if !yield(it.Current()) {
				return
			}
		}
	}
}

// Elements yields the elements of rng.
func Elements[T any, I Cursor[I, T], S Sentinel[I]](rng Range[I, S]) iter.Seq[T] {
	return Seq[T](rng.Begin(), rng.End())
}
