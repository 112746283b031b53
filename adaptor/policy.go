package adaptor

import (
	"errors"

	"go.lepak.sg/ranges/iterator"
)

// The interfaces below are the customization points of a policy. A policy
// implements any subset of them and every operation it leaves out is
// delegated to the base position. Which ones a policy implements is decided
// once, when a cursor or view is built.

// Beginner computes the begin position from the base range.
type Beginner[B, I any] interface {
	Begin(base B) I
}

// Ender computes the end from the base range.
type Ender[B, S any] interface {
	End(base B) S
}

type Currenter[I, R any] interface {
	Current(pos I) R
}

type Nexter[I any] interface {
	Next(pos I) I
}

type Prever[I any] interface {
	Prev(pos I) I
}

type Advancer[I any] interface {
	Advance(pos I, n int) I
}

// Equaler compares two base positions.
type Equaler[I any] interface {
	Equal(a, b I) bool
}

// PolicyEqualer compares two base positions with the other cursor's policy
// at hand. It is preferred over Equaler.
type PolicyEqualer[I, A any] interface {
	EqualWith(a, b I, other A) bool
}

type Distancer[I any] interface {
	DistanceTo(a, b I) int
}

type PolicyDistancer[I, A any] interface {
	DistanceWith(a, b I, other A) int
}

// Emptier is implemented by end policies that decide when a position has
// reached the end.
type Emptier[I, S any] interface {
	Empty(pos I, end S) bool
}

// PolicyEmptier is Emptier with the cursor's policy at hand. It is preferred
// over Emptier.
type PolicyEmptier[I, A, S any] interface {
	EmptyWith(pos I, cur A, end S) bool
}

type IndirectMover[I, R any] interface {
	IndirectMove(pos I) R
}

// ValueTyper overrides the value type inferred from Current.
type ValueTyper = iterator.ValueTyper

// Base is the identity policy. It implements no customization point, so a
// cursor with this policy behaves exactly like its base position.
type Base struct{}

// Composition errors. They are returned when a cursor, sentinel or view is
// built, never while one is in use.
var (
	ErrNoCommonReference = errors.New("no common reference")
	ErrNoCurrent         = errors.New("cannot read the current element")
	ErrNoSentinel        = errors.New("cannot test for the end")
	ErrNoBegin           = errors.New("cannot compute the begin position")
	ErrNoEnd             = errors.New("cannot compute the end")
)

// ErrUnsupported is the panic value of an operation the cursor cannot do,
// such as Prev over a forward base without a Prev policy.
var ErrUnsupported = errors.New("unsupported operation")
