// Package list provides a doubly linked list whose positions are
// bidirectional range positions.
package list

import (
	"go.lepak.sg/ranges/iterator"
)

// List is a doubly linked list. The zero value is an empty list.
// List is not safe for concurrent use.
type List[T any] struct {
	head, tail *node[T]
	n          int
}

type node[T any] struct {
	v T

	prev, next *node[T]
}

var _ iterator.ConstRange[Pos[int], Pos[int]] = (*List[int])(nil)

// New returns a list holding vs in order.
func New[T any](vs ...T) *List[T] {
	l := &List[T]{}
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) remove(e *node[T]) {
	if e == nil {
		panic("nil node")
	}

	if l.head == nil || l.tail == nil {
		panic("nil head or tail")
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		if l.head != e {
			panic("node has no previous node but it is not the head")
		}
		l.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		if l.tail != e {
			panic("node has no next node but it is not the tail")
		}
		l.tail = e.prev
	}

	e.prev, e.next = nil, nil
	l.n--
}

func (l *List[T]) PushBack(v T) {
	e := &node[T]{v: v}
	l.n++

	if l.head == nil && l.tail == nil {
		l.head, l.tail = e, e
		return
	}

	e.prev = l.tail
	l.tail.next = e
	l.tail = e
}

func (l *List[T]) PushFront(v T) {
	e := &node[T]{v: v}
	l.n++

	if l.head == nil && l.tail == nil {
		l.head, l.tail = e, e
		return
	}

	e.next = l.head
	l.head.prev = e
	l.head = e
}

// Remove unlinks the element at p and returns the position after it.
func (l *List[T]) Remove(p Pos[T]) Pos[T] {
	if p.l != l {
		panic("position is not in this list")
	}
	if p.n == nil {
		panic("cannot remove the end")
	}
	next := p.Next()
	l.remove(p.n)
	return next
}

func (l *List[T]) Len() int {
	return l.n
}

func (l *List[T]) Begin() Pos[T] {
	return Pos[T]{l: l, n: l.head}
}

func (l *List[T]) End() Pos[T] {
	return Pos[T]{l: l}
}

func (l *List[T]) CBegin() Pos[T] {
	return l.Begin()
}

func (l *List[T]) CEnd() Pos[T] {
	return l.End()
}

// Pos is a position in a List. The end position holds no node; stepping
// back from it reaches the tail.
type Pos[T any] struct {
	l *List[T]
	n *node[T]
}

var _ iterator.Bidirectional[Pos[int], int] = Pos[int]{}

func (p Pos[T]) Current() T {
	if p.n == nil {
		panic("read at the end of the list")
	}
	return p.n.v
}

// Set overwrites the element at p.
func (p Pos[T]) Set(v T) {
	if p.n == nil {
		panic("write at the end of the list")
	}
	p.n.v = v
}

func (p Pos[T]) Next() Pos[T] {
	if p.n == nil {
		panic("next at the end of the list")
	}
	return Pos[T]{l: p.l, n: p.n.next}
}

func (p Pos[T]) Prev() Pos[T] {
	if p.n == nil {
		if p.l.tail == nil {
			panic("prev in an empty list")
		}
		return Pos[T]{l: p.l, n: p.l.tail}
	}
	if p.n.prev == nil {
		panic("prev at the start of the list")
	}
	return Pos[T]{l: p.l, n: p.n.prev}
}

func (p Pos[T]) Equal(o Pos[T]) bool {
	return p.n == o.n
}
