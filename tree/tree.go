package tree

import (
	"go.lepak.sg/ranges/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree without duplicates. It is not
// self-balancing and does not support removal.
//
// The zero Tree may be used immediately. Ranging over it yields the keys in
// ascending order.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
	n    int
}

var _ iterator.ConstRange[Pos[int], Pos[int]] = (*Tree[int])(nil)

// Of returns a tree holding ks.
func Of[T constraints.Ordered](ks ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, k := range ks {
		t.Insert(k)
	}
	return t
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return t.find(k) != nil
}

func (t *Tree[T]) find(k T) *Node[T] {
	n := t.root

	for n != nil {
		switch Compare(k, n.Key) {
		case Less:
			n = n.Left
		case Greater:
			n = n.Right
		case Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	if t.root == nil {
		t.root = NodeOf(k)
		t.n++
		return true
	}

	n, p := t.root, (*Node[T])(nil)
	var cmp Order

	for n != nil {
		cmp = Compare(k, n.Key)
		switch cmp {
		case Less:
			n, p = n.Left, n
		case Greater:
			n, p = n.Right, n
		case Equal:
			return false
		default:
			panic("unreachable")
		}
	}

	newnode := NodeOf(k)
	newnode.Parent = p

	switch cmp {
	case Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = newnode
	case Greater:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = newnode
	default:
		panic("unreachable")
	}

	t.n++
	return true
}

// Find returns the position of k, or the end if k is not in the tree.
func (t *Tree[T]) Find(k T) Pos[T] {
	return Pos[T]{t: t, n: t.find(k)}
}

func (t *Tree[T]) Len() int {
	return t.n
}

func (t *Tree[T]) Begin() Pos[T] {
	if t.root == nil {
		return t.End()
	}
	return Pos[T]{t: t, n: t.root.min()}
}

func (t *Tree[T]) End() Pos[T] {
	return Pos[T]{t: t}
}

func (t *Tree[T]) CBegin() Pos[T] {
	return t.Begin()
}

func (t *Tree[T]) CEnd() Pos[T] {
	return t.End()
}

// PushBack inserts k, so that a tree can be filled from a range. Keys
// already present are dropped.
func (t *Tree[T]) PushBack(k T) {
	t.Insert(k)
}

// Pos is an in-order position in a Tree. Keys cannot be written through it,
// as that could break the ordering.
type Pos[T constraints.Ordered] struct {
	t *Tree[T]
	n *Node[T]
}

var _ iterator.Bidirectional[Pos[int], int] = Pos[int]{}

func (p Pos[T]) Current() T {
	if p.n == nil {
		panic("read at the end of the tree")
	}
	return p.n.Key
}

func (p Pos[T]) Next() Pos[T] {
	if p.n == nil {
		panic("next at the end of the tree")
	}
	return Pos[T]{t: p.t, n: p.n.successor()}
}

func (p Pos[T]) Prev() Pos[T] {
	if p.n == nil {
		if p.t.root == nil {
			panic("prev in an empty tree")
		}
		return Pos[T]{t: p.t, n: p.t.root.max()}
	}
	prev := p.n.predecessor()
	if prev == nil {
		panic("prev at the start of the tree")
	}
	return Pos[T]{t: p.t, n: prev}
}

func (p Pos[T]) Equal(o Pos[T]) bool {
	return p.n == o.n
}
