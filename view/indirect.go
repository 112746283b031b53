package view

import (
	"go.lepak.sg/ranges/adaptor"
	"go.lepak.sg/ranges/iterator"
	"go.lepak.sg/ranges/must"
)

type indirect[T any, E iterator.Reader[T], I iterator.Cursor[I, E]] struct{}

func (indirect[T, E, I]) Current(pos I) T {
	return pos.Current().Current()
}

// IndirectView reads through the elements of a range of positions.
type IndirectView[T any, E iterator.Reader[T], I iterator.Cursor[I, E], S iterator.Sentinel[I]] struct {
	*adaptor.View[T, I, S, iterator.Subrange[I, S], indirect[T, E, I], indirect[T, E, I]]
}

func Indirect[T any, E iterator.Reader[T], I iterator.Cursor[I, E], S iterator.Sentinel[I]](rng iterator.Range[I, S]) IndirectView[T, E, I, S] {
	v := must.Get(adaptor.Adapt[T, I, S](iterator.All[I, S](rng), indirect[T, E, I]{}))
	return IndirectView[T, E, I, S]{View: v}
}
