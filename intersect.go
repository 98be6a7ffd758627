package bvh

// Intersect calls visit with the element index of every input box
// that intersects query, in unspecified order. Returning false from
// visit terminates the traversal early. Each matching element is
// visited exactly once.
func (t *Tree[T, V]) Intersect(query Box[T, V], visit func(elem int) bool) {
	if len(t.Nodes) == 0 || t.Root == None {
		return
	}
	// Depth is logarithmic, so a small stack buffer suffices.
	stack := make([]int, 0, 64)
	stack = append(stack, t.Root)
	for len(stack) > 0 {
		n := &t.Nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		if !n.BBox.Intersects(query) {
			continue
		}
		if n.IsLeaf() {
			if !visit(n.Elem) {
				return
			}
			continue
		}
		stack = append(stack, n.Left, n.Right)
	}
}

// IntersectAll returns the element indices of every input box that
// intersects query.
func (t *Tree[T, V]) IntersectAll(query Box[T, V]) []int {
	var elems []int
	t.Intersect(query, func(elem int) bool {
		elems = append(elems, elem)
		return true
	})
	return elems
}

// AnyIntersection returns the element index of some input box that
// intersects query, or None if there is no such box.
func (t *Tree[T, V]) AnyIntersection(query Box[T, V]) int {
	found := None
	t.Intersect(query, func(elem int) bool {
		found = elem
		return false
	})
	return found
}
