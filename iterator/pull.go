package iterator

import (
	"iter"
)

type pullState[T any] struct {
	next    func() (T, bool)
	stop    func()
	cur     T
	fetched bool
	done    bool
}

func (st *pullState[T]) fill() {
	if st.fetched || st.done {
		return
	}
	v, ok := st.next()
	if !ok {
		st.finish()
		return
	}
	st.cur = v
	st.fetched = true
}

func (st *pullState[T]) finish() {
	st.done = true
	st.fetched = false
	var zero T
	st.cur = zero
	st.stop()
}

// PullRange is a single pass range over a push iterator. Every position
// shares the underlying iterator, so stepping one steps them all. It has no
// read-only traversal.
type PullRange[T any] struct {
	st *pullState[T]
}

var _ Range[Pull[int], PullEnd[int]] = (*PullRange[int])(nil)

// FromSeq pulls from seq on demand. The pull is stopped once seq is
// exhausted; call Stop to abandon it early.
func FromSeq[T any](seq iter.Seq[T]) *PullRange[T] {
	next, stop := iter.Pull(seq)
	return &PullRange[T]{st: &pullState[T]{next: next, stop: stop}}
}

func (r *PullRange[T]) Begin() Pull[T] {
	return Pull[T]{st: r.st}
}

func (r *PullRange[T]) End() PullEnd[T] {
	return PullEnd[T]{}
}

// Stop releases the underlying iterator. It is safe to call more than once.
func (r *PullRange[T]) Stop() {
	if !r.st.done {
		r.st.finish()
	}
}

type Pull[T any] struct {
	st *pullState[T]
}

var _ Cursor[Pull[int], int] = Pull[int]{}

func (p Pull[T]) Current() T {
	p.st.fill()
	return p.st.cur
}

func (p Pull[T]) Next() Pull[T] {
	p.st.fill()
	p.st.fetched = false
	return p
}

func (p Pull[T]) SinglePass() bool {
	return true
}

type PullEnd[T any] struct{}

func (PullEnd[T]) Equal(p Pull[T]) bool {
	p.st.fill()
	return p.st.done
}
