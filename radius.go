package bvh

// EachWithinRadius calls visit with the element index of every input
// box whose squared exterior distance to p is at most sqRadius. Each
// such element is visited exactly once, in unspecified order. There
// is no early exit; the traversal always runs to completion.
//
// The test is against the element's box, not its true shape: callers
// needing exact shape distances should treat the visited set as
// candidates and filter with their own distance function.
func (t *Tree[T, V]) EachWithinRadius(p V, sqRadius T, visit func(elem int)) {
	if len(t.Nodes) == 0 || t.Root == None {
		return
	}
	stack := make([]int, 0, 64)
	stack = append(stack, t.Root)
	for len(stack) > 0 {
		n := &t.Nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		if n.BBox.SqExteriorDistance(p) > sqRadius {
			continue
		}
		if n.IsLeaf() {
			visit(n.Elem)
			continue
		}
		stack = append(stack, n.Left, n.Right)
	}
}

// WithinRadius returns the element indices of every input box whose
// squared exterior distance to p is at most sqRadius.
func (t *Tree[T, V]) WithinRadius(p V, sqRadius T) []int {
	var elems []int
	t.EachWithinRadius(p, sqRadius, func(elem int) {
		elems = append(elems, elem)
	})
	return elems
}
