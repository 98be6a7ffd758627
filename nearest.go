package bvh

import "math"

// Nearest returns the element index minimising sqDist over all
// indexed elements, or None for an empty tree.
//
// sqDist supplies the exact squared distance from the query point to
// the element's true shape. It must never be smaller than the squared
// exterior distance from the point to the element's box; subtree
// pruning relies on the box distance being a lower bound.
//
// The traversal is branch and bound: a child is pushed only if its
// box's squared exterior distance is below the best exact distance
// known at push time, and the nearer child is processed first so the
// bound tightens before the farther subtree is examined. A node
// already on the stack is not re-pruned when the bound later
// improves.
func (t *Tree[T, V]) Nearest(p V, sqDist func(elem int) T) int {
	if len(t.Nodes) == 0 || t.Root == None {
		return None
	}
	best := None
	bestD := T(math.Inf(1))

	stack := make([]int, 0, 64)
	stack = append(stack, t.Root)
	for len(stack) > 0 {
		n := &t.Nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]

		if n.IsLeaf() {
			if d := sqDist(n.Elem); d < bestD {
				bestD, best = d, n.Elem
			}
			continue
		}

		ld := t.Nodes[n.Left].BBox.SqExteriorDistance(p)
		rd := t.Nodes[n.Right].BBox.SqExteriorDistance(p)
		// Push the farther child first so the nearer one is popped
		// next.
		if ld <= rd {
			if rd < bestD {
				stack = append(stack, n.Right)
			}
			if ld < bestD {
				stack = append(stack, n.Left)
			}
		} else {
			if ld < bestD {
				stack = append(stack, n.Left)
			}
			if rd < bestD {
				stack = append(stack, n.Right)
			}
		}
	}
	return best
}
