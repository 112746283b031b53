package view

import (
	"go.lepak.sg/ranges/adaptor"
	"go.lepak.sg/ranges/iterator"
	"go.lepak.sg/ranges/must"
)

type takeWhileEnd[R any, I iterator.Cursor[I, R], S iterator.Sentinel[I]] struct {
	pred func(R) bool
}

func (e takeWhileEnd[R, I, S]) Empty(pos I, end S) bool {
	return end.Equal(pos) || !e.pred(pos.Current())
}

// TakeWhileCursor and TakeWhileSentinel are the ends of a TakeWhileView.
type TakeWhileCursor[R any, I iterator.Cursor[I, R]] = adaptor.Cursor[R, I, adaptor.Base]

type TakeWhileSentinel[R any, I iterator.Cursor[I, R], S iterator.Sentinel[I]] = adaptor.Sentinel[R, I, adaptor.Base, S, takeWhileEnd[R, I, S]]

// TakeWhileView is the longest prefix of a range whose elements satisfy a
// predicate.
type TakeWhileView[R any, I iterator.Cursor[I, R], S iterator.Sentinel[I]] struct {
	*adaptor.View[R, I, S, iterator.Subrange[I, S], adaptor.Base, takeWhileEnd[R, I, S]]
}

func TakeWhile[R any, I iterator.Cursor[I, R], S iterator.Sentinel[I]](rng iterator.Range[I, S], pred func(R) bool) TakeWhileView[R, I, S] {
	if pred == nil {
		panic("nil predicate")
	}
	v := must.Get(adaptor.New[R, I, S](iterator.All[I, S](rng), adaptor.Base{}, takeWhileEnd[R, I, S]{pred: pred}))
	return TakeWhileView[R, I, S]{View: v}
}
