package facade

import (
	"iter"

	"go.lepak.sg/ranges/iterator"
)

// Iterator describes some iterator over a range. Next must be called before
// the first Item.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Walker drives a position up to a sentinel as an Iterator.
type Walker[T any, I iterator.Cursor[I, T], S iterator.Sentinel[I]] struct {
	it      I
	last    S
	started bool
	done    bool
}

var _ Iterator[int] = (*Walker[int, iterator.Index[int], iterator.Index[int]])(nil)

func Walk[T any, I iterator.Cursor[I, T], S iterator.Sentinel[I]](first I, last S) *Walker[T, I, S] {
	return &Walker[T, I, S]{it: first, last: last}
}

func (w *Walker[T, I, S]) Next() bool {
	if w == nil || w.done {
		return false
	}
	if w.started {
		w.it = w.it.Next()
	}
	w.started = true
	if w.last.Equal(w.it) {
		w.done = true
		return false
	}
	return true
}

func (w *Walker[T, I, S]) Item() T {
	return w.it.Current()
}

// Items yields what it produces until it is exhausted.
func Items[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Item()) {
				return
			}
		}
	}
}
