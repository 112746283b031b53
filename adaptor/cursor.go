package adaptor

import (
	"fmt"
	"reflect"

	"go.lepak.sg/ranges/common"
	"go.lepak.sg/ranges/iterator"
)

// cursorOps is the dispatch table of a cursor, shared by every cursor built
// from the same policy.
type cursorOps[R any, I iterator.Stepper[I], A any] struct {
	current  func(a A, pos I) R
	move     func(a A, pos I) R
	next     func(a A, pos I) I
	prev     func(a A, pos I) I
	advance  func(a A, pos I, n int) I
	equal    func(a A, x, y I, other A) bool
	distance func(a A, x, y I, other A) int

	// set when the policy itself supplies the operation, which then does not
	// depend on the category of the base position
	ownPrev     bool
	ownAdvance  bool
	ownDistance bool

	single    bool
	valueType reflect.Type
}

func resolveCursor[R any, I iterator.Stepper[I], A any](policy A, pos I) (*cursorOps[R, I, A], error) {
	ops := &cursorOps[R, I, A]{}
	p, base := any(policy), any(pos)
	rt := reflect.TypeFor[R]()

	_, ownCurrent := p.(Currenter[I, R])
	if ownCurrent {
		ops.current = func(a A, pos I) R {
			return any(a).(Currenter[I, R]).Current(pos)
		}
	} else {
		if _, ok := base.(iterator.Reader[R]); !ok {
			return nil, fmt.Errorf("%w: %v has no Current() %v", ErrNoCurrent, reflect.TypeFor[I](), rt)
		}
		ops.current = func(_ A, pos I) R {
			return any(pos).(iterator.Reader[R]).Current()
		}
	}

	_, ownMove := p.(IndirectMover[I, R])
	_, baseMove := base.(iterator.Mover[R])
	switch {
	case ownMove:
		ops.move = func(a A, pos I) R {
			return any(a).(IndirectMover[I, R]).IndirectMove(pos)
		}
	case !ownCurrent && baseMove:
		ops.move = func(_ A, pos I) R {
			return any(pos).(iterator.Mover[R]).IndirectMove()
		}
	default:
		// Current's result handed over as is
		ops.move = ops.current
	}

	if vt, ok := p.(ValueTyper); ok {
		ops.valueType = vt.ValueType()
	} else if vt, ok := base.(ValueTyper); ok && !ownCurrent {
		ops.valueType = vt.ValueType()
	} else {
		ops.valueType = rt
	}
	if _, ok := common.Reference(
		common.Ref{Type: rt, Qual: common.Rvalue},
		common.Ref{Type: ops.valueType, Qual: common.Lvalue},
	); !ok {
		return nil, fmt.Errorf("%w: element %v and value type %v", ErrNoCommonReference, rt, ops.valueType)
	}
	if _, ok := common.Reference(
		common.Ref{Type: rt, Qual: common.Rvalue},
		common.Ref{Type: ops.valueType, Qual: common.ConstLvalue},
	); !ok {
		return nil, fmt.Errorf("%w: moved element %v and value type %v", ErrNoCommonReference, rt, ops.valueType)
	}

	if _, ok := p.(Nexter[I]); ok {
		ops.next = func(a A, pos I) I { return any(a).(Nexter[I]).Next(pos) }
	} else {
		ops.next = func(_ A, pos I) I { return pos.Next() }
	}

	if _, ok := p.(Prever[I]); ok {
		ops.ownPrev = true
		ops.prev = func(a A, pos I) I { return any(a).(Prever[I]).Prev(pos) }
	} else if _, ok := base.(iterator.Prever[I]); ok {
		ops.prev = func(_ A, pos I) I { return any(pos).(iterator.Prever[I]).Prev() }
	}

	if _, ok := p.(Advancer[I]); ok {
		ops.ownAdvance = true
		ops.advance = func(a A, pos I, n int) I { return any(a).(Advancer[I]).Advance(pos, n) }
	} else if _, ok := base.(iterator.Advancer[I]); ok {
		ops.advance = func(_ A, pos I, n int) I { return any(pos).(iterator.Advancer[I]).Advance(n) }
	}

	switch {
	case implements[PolicyEqualer[I, A]](p):
		ops.equal = func(a A, x, y I, other A) bool {
			return any(a).(PolicyEqualer[I, A]).EqualWith(x, y, other)
		}
	case implements[Equaler[I]](p):
		ops.equal = func(a A, x, y I, _ A) bool {
			return any(a).(Equaler[I]).Equal(x, y)
		}
	case implements[iterator.Equaler[I]](base):
		ops.equal = func(_ A, x, y I, _ A) bool {
			return any(x).(iterator.Equaler[I]).Equal(y)
		}
	}

	switch {
	case implements[PolicyDistancer[I, A]](p):
		ops.ownDistance = true
		ops.distance = func(a A, x, y I, other A) int {
			return any(a).(PolicyDistancer[I, A]).DistanceWith(x, y, other)
		}
	case implements[Distancer[I]](p):
		ops.ownDistance = true
		ops.distance = func(a A, x, y I, _ A) int {
			return any(a).(Distancer[I]).DistanceTo(x, y)
		}
	case implements[iterator.Distancer[I]](base):
		ops.distance = func(_ A, x, y I, _ A) int {
			return any(x).(iterator.Distancer[I]).DistanceTo(y)
		}
	}

	ops.single = iterator.IsSinglePass(policy)
	return ops, nil
}

func implements[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

func unsupported(op string, pos any) error {
	return fmt.Errorf("%w: %s on %T", ErrUnsupported, op, pos)
}

// Cursor is a base position paired with a policy. It is a value: stepping
// returns a new cursor and leaves the receiver where it was.
type Cursor[R any, I iterator.Stepper[I], A any] struct {
	pos    I
	policy A
	ops    *cursorOps[R, I, A]
}

var _ iterator.RandomAccess[Cursor[int, iterator.Index[int], Base], int] = Cursor[int, iterator.Index[int], Base]{}

// NewCursor resolves which operations policy customizes and returns a cursor
// at pos. It fails when the element type R cannot be produced from pos or has
// no common reference with the value type.
func NewCursor[R any, I iterator.Stepper[I], A any](pos I, policy A) (Cursor[R, I, A], error) {
	ops, err := resolveCursor[R](policy, pos)
	if err != nil {
		return Cursor[R, I, A]{}, err
	}
	return Cursor[R, I, A]{pos: pos, policy: policy, ops: ops}, nil
}

func (c Cursor[R, I, A]) Current() R {
	return c.ops.current(c.policy, c.pos)
}

// IndirectMove returns the current element for transfer.
func (c Cursor[R, I, A]) IndirectMove() R {
	return c.ops.move(c.policy, c.pos)
}

func (c Cursor[R, I, A]) Next() Cursor[R, I, A] {
	c.pos = c.ops.next(c.policy, c.pos)
	return c
}

func (c Cursor[R, I, A]) Prev() Cursor[R, I, A] {
	if c.ops.prev == nil {
		panic(unsupported("Prev", c.pos))
	}
	c.pos = c.ops.prev(c.policy, c.pos)
	return c
}

func (c Cursor[R, I, A]) Advance(n int) Cursor[R, I, A] {
	if c.ops.advance == nil {
		panic(unsupported("Advance", c.pos))
	}
	c.pos = c.ops.advance(c.policy, c.pos, n)
	return c
}

func (c Cursor[R, I, A]) Equal(o Cursor[R, I, A]) bool {
	if c.ops.equal == nil {
		panic(unsupported("Equal", c.pos))
	}
	return c.ops.equal(c.policy, c.pos, o.pos, o.policy)
}

func (c Cursor[R, I, A]) DistanceTo(o Cursor[R, I, A]) int {
	if c.ops.distance == nil {
		panic(unsupported("DistanceTo", c.pos))
	}
	return c.ops.distance(c.policy, c.pos, o.pos, o.policy)
}

func (c Cursor[R, I, A]) Base() I {
	return c.pos
}

func (c Cursor[R, I, A]) Policy() A {
	return c.policy
}

func (c Cursor[R, I, A]) SinglePass() bool {
	return (c.ops != nil && c.ops.single) || iterator.IsSinglePass(c.pos)
}

// Category is the strongest traversal category the policy and base position
// support together.
func (c Cursor[R, I, A]) Category() iterator.Category {
	if c.ops == nil || c.ops.equal == nil || c.SinglePass() {
		return iterator.CategoryInput
	}
	base := iterator.CategoryOf(c.pos)
	if !c.ops.ownPrev && (c.ops.prev == nil || base < iterator.CategoryBidirectional) {
		return iterator.CategoryForward
	}
	adv := c.ops.ownAdvance || (c.ops.advance != nil && base == iterator.CategoryRandomAccess)
	dist := c.ops.ownDistance || (c.ops.distance != nil && base == iterator.CategoryRandomAccess)
	if adv && dist {
		return iterator.CategoryRandomAccess
	}
	return iterator.CategoryBidirectional
}

func (c Cursor[R, I, A]) ValueType() reflect.Type {
	if c.ops == nil {
		return reflect.TypeFor[R]()
	}
	return c.ops.valueType
}
