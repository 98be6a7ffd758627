// Package bvh implements a bounding volume hierarchy: a binary tree
// of axis-aligned boxes used to accelerate intersection, nearest
// element, and radius queries over a set of input boxes.
//
// The tree is immutable once built. Queries are read-only and may run
// concurrently with each other, but the caller must not rebuild while
// a query is in flight.
package bvh

import "golang.org/x/exp/constraints"

// None is the sentinel index marking an absent node or element.
const None = -1

// Node is a node in a BVH. A node either bounds a single input
// element (leaf) or the union of exactly two child subtrees.
type Node[T constraints.Float, V Vec[T]] struct {
	// BBox covers the node's entire subtree. For a leaf it is the
	// element's own box; for an internal node it is exactly the union
	// of the children's boxes.
	BBox Box[T, V]

	// Left and Right are child indices into Tree.Nodes, or None.
	Left  int
	Right int

	// Elem is the input index of the bounded element, or None for an
	// internal node.
	Elem int
}

// IsLeaf reports whether the node bounds a single input element.
func (n *Node[T, V]) IsLeaf() bool {
	return n.Left == None && n.Right == None
}

// Tree is an in-memory BVH. Nodes are held in a flat arena and refer
// to each other by index. Its zero value is an empty tree; populate
// it with Build.
type Tree[T constraints.Float, V Vec[T]] struct {
	Nodes []Node[T, V]
	Root  int
}

// New builds a BVH over the given boxes. The position of each box in
// the slice becomes the element index reported by queries.
func New[T constraints.Float, V Vec[T]](boxes []Box[T, V]) *Tree[T, V] {
	t := &Tree[T, V]{Root: None}
	t.Build(boxes)
	return t
}

// Len returns the number of input elements indexed by the tree.
func (t *Tree[T, V]) Len() int {
	// A tree over N elements has exactly 2N-1 nodes.
	return (len(t.Nodes) + 1) / 2
}

// Bounds returns the box covering every indexed element, or the zero
// box for an empty tree.
func (t *Tree[T, V]) Bounds() Box[T, V] {
	if len(t.Nodes) == 0 || t.Root == None {
		return Box[T, V]{}
	}
	return t.Nodes[t.Root].BBox
}
