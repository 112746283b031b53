// Package testutils holds assertion helpers shared by the range tests.
package testutils

import (
	"iter"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/ranges/facade"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects seq to yield want in order, then stop.
func Drain[T any](t TestT, want []T, seq iter.Seq[T]) {
	t.Logf("draining: expecting %v", want)
	i := 0
	for got := range seq {
		if i >= len(want) {
			t.Errorf("sequence should have stopped, but yielded: %v", got)
			return
		}
		assert.Equal(t, want[i], got)
		i++
	}
	if i < len(want) {
		t.Errorf("sequence stopped early, expecting i=%d %v", i, want[i])
	}
}

// DrainIterator is Drain for an Iterator. It also expects Next to keep
// returning false once the iterator is exhausted.
func DrainIterator[T any](t TestT, want []T, it facade.Iterator[T]) {
	t.Logf("draining: expecting %v", want)
	for i, datum := range want {
		if !it.Next() {
			t.Errorf("iterator stopped early, expecting i=%d %v", i, datum)
			return
		}
		assert.Equal(t, datum, it.Item())
	}
	if it.Next() {
		t.Errorf("iterator should have stopped, but produced: %v", it.Item())
		return
	}
	if it.Next() {
		t.Error("iterator resumed after being exhausted")
	}
}
