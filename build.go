package bvh

import "golang.org/x/exp/constraints"

// builder holds the per-build scratch state: the input boxes, their
// centroids, and the working permutation of element indices.
type builder[T constraints.Float, V Vec[T]] struct {
	boxes   []Box[T, V]
	centers []V
	order   []int
}

// Build replaces the contents of the tree with a BVH over the given
// boxes. Any previous nodes are discarded. Build succeeds for any
// finite input; an empty input yields an empty tree.
//
// The split axis at each level is the longest axis of the bounding
// box of the element centroids, and ranges are always split at the
// count midpoint, so the tree depth is ceil(log2 N) regardless of how
// the boxes are distributed in space.
func (t *Tree[T, V]) Build(boxes []Box[T, V]) {
	t.Nodes = t.Nodes[:0]
	t.Root = None
	if len(boxes) == 0 {
		return
	}
	if cap(t.Nodes) < 2*len(boxes)-1 {
		t.Nodes = make([]Node[T, V], 0, 2*len(boxes)-1)
	}
	b := builder[T, V]{
		boxes:   boxes,
		centers: make([]V, len(boxes)),
		order:   make([]int, len(boxes)),
	}
	for i := range boxes {
		b.centers[i] = boxes[i].Center()
		b.order[i] = i
	}
	t.Root = t.build(&b, 0, len(boxes))
}

// build partitions the element range [start, end) of b.order and
// appends the resulting subtree to the arena, returning its root
// index.
func (t *Tree[T, V]) build(b *builder[T, V], start, end int) int {
	switch end - start {
	case 0:
		return None
	case 1:
		elem := b.order[start]
		t.Nodes = append(t.Nodes, Node[T, V]{
			BBox:  b.boxes[elem],
			Left:  None,
			Right: None,
			Elem:  elem,
		})
		return len(t.Nodes) - 1
	}

	// Pick the split axis from the spread of the centroids, not of
	// the boxes themselves.
	cbox := PointBox[T, V](b.centers[b.order[start]])
	for i := start + 1; i < end; i++ {
		cbox = cbox.Extend(b.centers[b.order[i]])
	}
	axis := cbox.LongestAxis()

	sortByCenter[T, V](b.order[start:end], b.centers, axis)

	mid := (start + end) / 2
	left := t.build(b, start, mid)
	right := t.build(b, mid, end)
	t.Nodes = append(t.Nodes, Node[T, V]{
		BBox:  t.Nodes[left].BBox.Union(t.Nodes[right].BBox),
		Left:  left,
		Right: right,
		Elem:  None,
	})
	return len(t.Nodes) - 1
}
