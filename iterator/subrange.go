package iterator

// Subrange is a position and a sentinel taken together. It is the range every
// other range decays into.
type Subrange[I, S any] struct {
	first I
	last  S
}

var _ ConstRange[int, int] = Subrange[int, int]{}

func NewSubrange[I, S any](first I, last S) Subrange[I, S] {
	return Subrange[I, S]{first: first, last: last}
}

// All is the subrange spanning rng.
func All[I, S any](rng Range[I, S]) Subrange[I, S] {
	return NewSubrange(rng.Begin(), rng.End())
}

func (r Subrange[I, S]) Begin() I {
	return r.first
}

func (r Subrange[I, S]) End() S {
	return r.last
}

func (r Subrange[I, S]) CBegin() I {
	return r.first
}

func (r Subrange[I, S]) CEnd() S {
	return r.last
}

func (r Subrange[I, S]) Lazy() {}
