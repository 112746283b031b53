package iterator

import (
	"reflect"
)

// Positions are values: Next returns the successor and leaves the receiver
// alone, so copying a position copies the traversal.
type Stepper[I any] interface {
	Next() I
}

type Reader[T any] interface {
	Current() T
}

// Cursor is the least a position must do to be traversed and read.
type Cursor[I, T any] interface {
	Stepper[I]
	Reader[T]
}

type Equaler[I any] interface {
	Equal(I) bool
}

// Sentinel marks the end of a range. A position is its own sentinel when it
// is an Equaler of itself.
type Sentinel[I any] interface {
	Equal(I) bool
}

type Prever[I any] interface {
	Prev() I
}

type Advancer[I any] interface {
	Advance(n int) I
}

type Distancer[I any] interface {
	DistanceTo(I) int
}

// Mover extracts the current element for transfer rather than for reading.
type Mover[T any] interface {
	IndirectMove() T
}

type SinglePasser interface {
	SinglePass() bool
}

// Categorizer overrides CategoryOf for positions that know their category
// better than their method set does.
type Categorizer interface {
	Category() Category
}

// Unbounded is implemented by sentinels that may never be reached.
type Unbounded interface {
	Infinite() bool
}

// ValueTyper names the value type of a position when it differs from what
// Current returns.
type ValueTyper interface {
	ValueType() reflect.Type
}

type Forward[I, T any] interface {
	Cursor[I, T]
	Equaler[I]
}

type Bidirectional[I, T any] interface {
	Forward[I, T]
	Prever[I]
}

type RandomAccess[I, T any] interface {
	Bidirectional[I, T]
	Advancer[I]
	Distancer[I]
}

type Range[I, S any] interface {
	Begin() I
	End() S
}

// ConstRange can be traversed without the traversal modifying it. CBegin
// returns the same position type as Begin, so positions that can write
// elements still can.
type ConstRange[I, S any] interface {
	Range[I, S]
	CBegin() I
	CEnd() S
}

// Lazy is implemented by views, which compute their elements on demand and
// do not own them.
type Lazy interface {
	Lazy()
}

type Category uint8

const (
	CategoryInput Category = iota
	CategoryForward
	CategoryBidirectional
	CategoryRandomAccess
)

func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryForward:
		return "forward"
	case CategoryBidirectional:
		return "bidirectional"
	case CategoryRandomAccess:
		return "random access"
	}
	return "unknown"
}

// CategoryOf works out the traversal category of it from its methods.
func CategoryOf[I any](it I) Category {
	v := any(it)
	if c, ok := v.(Categorizer); ok {
		return c.Category()
	}
	if s, ok := v.(SinglePasser); ok && s.SinglePass() {
		return CategoryInput
	}
	if _, ok := v.(Equaler[I]); !ok {
		return CategoryInput
	}
	if _, ok := v.(Prever[I]); !ok {
		return CategoryForward
	}
	_, adv := v.(Advancer[I])
	_, dist := v.(Distancer[I])
	if adv && dist {
		return CategoryRandomAccess
	}
	return CategoryBidirectional
}

// IsSinglePass reports whether it can only be traversed once.
func IsSinglePass[I any](it I) bool {
	s, ok := any(it).(SinglePasser)
	return ok && s.SinglePass()
}

// IsInfinite reports whether the sentinel s is never reached.
func IsInfinite[S any](s S) bool {
	u, ok := any(s).(Unbounded)
	return ok && u.Infinite()
}
