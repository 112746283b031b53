// Package tree provides an unbalanced binary search tree whose in-order
// positions are bidirectional range positions.
package tree

import (
	"golang.org/x/exp/constraints"
)

type Node[T any] struct {
	Key                 T
	Left, Right, Parent *Node[T]
}

func NodeOf[T any](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// min is the leftmost node under n.
func (n *Node[T]) min() *Node[T] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

func (n *Node[T]) max() *Node[T] {
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// successor is the next node in order, nil after the last.
func (n *Node[T]) successor() *Node[T] {
	if n.Right != nil {
		return n.Right.min()
	}
	child := n
	for p := n.Parent; p != nil; child, p = p, p.Parent {
		if p.Left == child {
			return p
		}
	}
	return nil
}

// predecessor mirrors successor.
func (n *Node[T]) predecessor() *Node[T] {
	if n.Left != nil {
		return n.Left.max()
	}
	child := n
	for p := n.Parent; p != nil; child, p = p, p.Parent {
		if p.Right == child {
			return p
		}
	}
	return nil
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
