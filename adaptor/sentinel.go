package adaptor

import (
	"fmt"
	"reflect"

	"go.lepak.sg/ranges/iterator"
)

type sentinelOps[R any, I iterator.Stepper[I], A, S, E any] struct {
	empty func(e E, c Cursor[R, I, A], end S) bool
	// the base end decides, so an unreachable base end stays unreachable
	base   bool
	single bool
}

// resolveSentinel picks the end test for policy. When the end has the same
// base position and policy types as the begin cursor, the end is a cursor and
// is compared with cursor equality; the returned cursor ops are then non-nil.
func resolveSentinel[R any, I iterator.Stepper[I], A, S, E any](policy E, end S) (*sentinelOps[R, I, A, S, E], *cursorOps[R, I, A], error) {
	ops := &sentinelOps[R, I, A, S, E]{single: iterator.IsSinglePass(policy)}

	if reflect.TypeFor[S]() == reflect.TypeFor[I]() && reflect.TypeFor[E]() == reflect.TypeFor[A]() {
		pos, _ := any(end).(I)
		a, _ := any(policy).(A)
		endOps, err := resolveCursor[R](a, pos)
		if err != nil {
			return nil, nil, err
		}
		if endOps.equal != nil {
			ops.empty = func(e E, c Cursor[R, I, A], end S) bool {
				return c.Equal(Cursor[R, I, A]{pos: any(end).(I), policy: any(e).(A), ops: endOps})
			}
			return ops, endOps, nil
		}
	}

	p := any(policy)
	switch {
	case implements[PolicyEmptier[I, A, S]](p):
		ops.empty = func(e E, c Cursor[R, I, A], end S) bool {
			return any(e).(PolicyEmptier[I, A, S]).EmptyWith(c.pos, c.policy, end)
		}
	case implements[Emptier[I, S]](p):
		ops.empty = func(e E, c Cursor[R, I, A], end S) bool {
			return any(e).(Emptier[I, S]).Empty(c.pos, end)
		}
	case implements[iterator.Sentinel[I]](any(end)):
		ops.base = true
		ops.empty = func(_ E, c Cursor[R, I, A], end S) bool {
			return any(end).(iterator.Sentinel[I]).Equal(c.pos)
		}
	default:
		return nil, nil, fmt.Errorf("%w: %v for %v", ErrNoSentinel, reflect.TypeFor[S](), reflect.TypeFor[I]())
	}
	return ops, nil, nil
}

// Sentinel is the end of an adapted range: a base end paired with the end
// policy.
type Sentinel[R any, I iterator.Stepper[I], A, S, E any] struct {
	end    S
	policy E
	ops    *sentinelOps[R, I, A, S, E]
}

var _ iterator.Sentinel[Cursor[int, iterator.Index[int], Base]] = Sentinel[int, iterator.Index[int], Base, iterator.Index[int], Base]{}

// NewSentinel resolves the end test of policy for cursors with policy type A.
func NewSentinel[R any, I iterator.Stepper[I], A, S, E any](end S, policy E) (Sentinel[R, I, A, S, E], error) {
	ops, _, err := resolveSentinel[R, I, A](policy, end)
	if err != nil {
		return Sentinel[R, I, A, S, E]{}, err
	}
	return Sentinel[R, I, A, S, E]{end: end, policy: policy, ops: ops}, nil
}

// Equal reports whether c has reached the end.
func (s Sentinel[R, I, A, S, E]) Equal(c Cursor[R, I, A]) bool {
	return s.ops.empty(s.policy, c, s.end)
}

func (s Sentinel[R, I, A, S, E]) Base() S {
	return s.end
}

func (s Sentinel[R, I, A, S, E]) Policy() E {
	return s.policy
}

func (s Sentinel[R, I, A, S, E]) SinglePass() bool {
	return s.ops != nil && s.ops.single
}

func (s Sentinel[R, I, A, S, E]) Infinite() bool {
	return s.ops != nil && s.ops.base && iterator.IsInfinite(s.end)
}
