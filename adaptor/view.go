package adaptor

import (
	"fmt"
	"iter"
	"reflect"

	"go.lepak.sg/ranges/facade"
	"go.lepak.sg/ranges/iterator"
)

// View adapts the base range B. The begin policy A drives the cursors and the
// end policy E decides where they stop. The dispatch tables of both are
// resolved by New; Begin and End only pair them with fresh positions.
type View[R any, I iterator.Stepper[I], S, B, A, E any] struct {
	base  B
	bpol  A
	epol  E
	begin func(B) I
	end   func(B) S

	ops    *cursorOps[R, I, A]
	endOps *cursorOps[R, I, A]
	sent   *sentinelOps[R, I, A, S, E]
}

var _ iterator.Range[
	Cursor[int, iterator.Index[int], Base],
	Sentinel[int, iterator.Index[int], Base, iterator.Index[int], Base],
] = (*View[int, iterator.Index[int], iterator.Index[int], iterator.Subrange[iterator.Index[int], iterator.Index[int]], Base, Base])(nil)

func beginFunc[I, B, A any](base B, policy A) (func(B) I, error) {
	if b, ok := any(policy).(Beginner[B, I]); ok {
		return b.Begin, nil
	}
	if _, ok := any(base).(interface{ Begin() I }); ok {
		return func(b B) I { return any(b).(interface{ Begin() I }).Begin() }, nil
	}
	return nil, fmt.Errorf("%w: %v from %v", ErrNoBegin, reflect.TypeFor[I](), reflect.TypeFor[B]())
}

func endFunc[S, B, E any](base B, policy E) (func(B) S, error) {
	if e, ok := any(policy).(Ender[B, S]); ok {
		return e.End, nil
	}
	if _, ok := any(base).(interface{ End() S }); ok {
		return func(b B) S { return any(b).(interface{ End() S }).End() }, nil
	}
	return nil, fmt.Errorf("%w: %v from %v", ErrNoEnd, reflect.TypeFor[S](), reflect.TypeFor[B]())
}

// New adapts base with a begin and an end policy. R is the element type, I
// the base position and S the base end.
func New[R any, I iterator.Stepper[I], S, B, A, E any](base B, begin A, end E) (*View[R, I, S, B, A, E], error) {
	v := &View[R, I, S, B, A, E]{base: base, bpol: begin, epol: end}

	var err error
	if v.begin, err = beginFunc[I](base, begin); err != nil {
		return nil, err
	}
	if v.end, err = endFunc[S](base, end); err != nil {
		return nil, err
	}
	if v.ops, err = resolveCursor[R](begin, v.begin(base)); err != nil {
		return nil, err
	}
	if v.sent, v.endOps, err = resolveSentinel[R, I, A](end, v.end(base)); err != nil {
		return nil, err
	}
	return v, nil
}

// Adapt is New with the same policy at both ends.
func Adapt[R any, I iterator.Stepper[I], S, B, A any](base B, policy A) (*View[R, I, S, B, A, A], error) {
	return New[R, I, S](base, policy, policy)
}

func (v *View[R, I, S, B, A, E]) Base() B {
	return v.base
}

func (v *View[R, I, S, B, A, E]) Begin() Cursor[R, I, A] {
	return Cursor[R, I, A]{pos: v.begin(v.base), policy: v.bpol, ops: v.ops}
}

func (v *View[R, I, S, B, A, E]) End() Sentinel[R, I, A, S, E] {
	return Sentinel[R, I, A, S, E]{end: v.end(v.base), policy: v.epol, ops: v.sent}
}

// EndCursor returns the end as a cursor. It is only available when the begin
// and end have the same base position and policy types.
func (v *View[R, I, S, B, A, E]) EndCursor() (Cursor[R, I, A], bool) {
	if v.endOps == nil {
		return Cursor[R, I, A]{}, false
	}
	return Cursor[R, I, A]{pos: any(v.end(v.base)).(I), policy: any(v.epol).(A), ops: v.endOps}, true
}

func (v *View[R, I, S, B, A, E]) Range() iterator.Subrange[Cursor[R, I, A], Sentinel[R, I, A, S, E]] {
	return iterator.NewSubrange(v.Begin(), v.End())
}

func (v *View[R, I, S, B, A, E]) All() iter.Seq[R] {
	return iterator.Seq[R](v.Begin(), v.End())
}

// Iterator walks the view with Next and Item.
func (v *View[R, I, S, B, A, E]) Iterator() facade.Iterator[R] {
	return facade.Walk[R](v.Begin(), v.End())
}

func (v *View[R, I, S, B, A, E]) Empty() bool {
	return v.End().Equal(v.Begin())
}

// Size is the number of elements when it can be had without traversal.
func (v *View[R, I, S, B, A, E]) Size() (int, bool) {
	end, ok := v.EndCursor()
	if !ok {
		return 0, false
	}
	begin := v.Begin()
	if begin.Category() != iterator.CategoryRandomAccess {
		return 0, false
	}
	return begin.DistanceTo(end), true
}

func (v *View[R, I, S, B, A, E]) Category() iterator.Category {
	return v.Begin().Category()
}

func (v *View[R, I, S, B, A, E]) Infinite() bool {
	return v.End().Infinite()
}

func (v *View[R, I, S, B, A, E]) Lazy() {}

// ConstView is the read-only handle of a view whose base range can itself be
// traversed read-only. It is obtained with ReadOnly. Traversal through it
// leaves the base range untouched, but its cursors wrap the same base
// positions as Begin, so a writable base position stays writable.
type ConstView[R any, I iterator.Stepper[I], S any, B iterator.ConstRange[I, S], A, E any] struct {
	v      *View[R, I, S, B, A, E]
	cbegin func(B) I
	cend   func(B) S
}

// ReadOnly gives v a read-only traversal backed by the CBegin and CEnd of its
// base range. Views over ranges without them have no read-only handle.
func ReadOnly[R any, I iterator.Stepper[I], S any, B iterator.ConstRange[I, S], A, E any](v *View[R, I, S, B, A, E]) ConstView[R, I, S, B, A, E] {
	cv := ConstView[R, I, S, B, A, E]{
		v:      v,
		cbegin: func(b B) I { return b.CBegin() },
		cend:   func(b B) S { return b.CEnd() },
	}
	if _, ok := any(v.bpol).(Beginner[B, I]); ok {
		cv.cbegin = v.begin
	}
	if _, ok := any(v.epol).(Ender[B, S]); ok {
		cv.cend = v.end
	}
	return cv
}

func (c ConstView[R, I, S, B, A, E]) CBegin() Cursor[R, I, A] {
	return Cursor[R, I, A]{pos: c.cbegin(c.v.base), policy: c.v.bpol, ops: c.v.ops}
}

func (c ConstView[R, I, S, B, A, E]) CEnd() Sentinel[R, I, A, S, E] {
	return Sentinel[R, I, A, S, E]{end: c.cend(c.v.base), policy: c.v.epol, ops: c.v.sent}
}

func (c ConstView[R, I, S, B, A, E]) Begin() Cursor[R, I, A] {
	return c.CBegin()
}

func (c ConstView[R, I, S, B, A, E]) End() Sentinel[R, I, A, S, E] {
	return c.CEnd()
}

func (c ConstView[R, I, S, B, A, E]) All() iter.Seq[R] {
	return iterator.Seq[R](c.CBegin(), c.CEnd())
}

func (c ConstView[R, I, S, B, A, E]) Lazy() {}
