package facade

import (
	"iter"

	"go.lepak.sg/ranges/iterator"
)

type Doner interface {
	Done() bool
}

// Cursor is a position that knows when it has run out, so its range needs no
// separate end.
type Cursor[C, R any] interface {
	iterator.Cursor[C, R]
	Doner
}

// Done is the end of every range of self-terminating cursors.
type Done[C Doner] struct{}

func (Done[C]) Equal(c C) bool {
	return c.Done()
}

// Range is the range of cursors produced by begin.
type Range[R any, C Cursor[C, R]] struct {
	begin func() C
}

func New[R any, C Cursor[C, R]](begin func() C) Range[R, C] {
	if begin == nil {
		panic("nil begin")
	}
	return Range[R, C]{begin: begin}
}

func (r Range[R, C]) Begin() C {
	return r.begin()
}

func (r Range[R, C]) End() Done[C] {
	return Done[C]{}
}

func (r Range[R, C]) CBegin() C {
	return r.begin()
}

func (r Range[R, C]) CEnd() Done[C] {
	return Done[C]{}
}

func (r Range[R, C]) All() iter.Seq[R] {
	return iterator.Seq[R](r.Begin(), r.End())
}

func (r Range[R, C]) Iterator() Iterator[R] {
	return Walk[R](r.Begin(), r.End())
}

func (r Range[R, C]) Lazy() {}
