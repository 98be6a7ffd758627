package bvh

import "golang.org/x/exp/constraints"

// Vec is a point in 2 or 3 dimensions: any fixed-size array of a
// floating point scalar.
type Vec[T constraints.Float] interface {
	~[2]T | ~[3]T
}

// Box is an axis-aligned bounding box.
type Box[T constraints.Float, V Vec[T]] struct {
	Min, Max V
}

// NewBox creates a box spanning the given corners. Min must be
// componentwise less than or equal to Max.
func NewBox[T constraints.Float, V Vec[T]](min, max V) Box[T, V] {
	return Box[T, V]{Min: min, Max: max}
}

// PointBox creates a degenerate box covering a single point.
func PointBox[T constraints.Float, V Vec[T]](p V) Box[T, V] {
	return Box[T, V]{Min: p, Max: p}
}

// Union gives the smallest box containing both b and o.
func (b Box[T, V]) Union(o Box[T, V]) Box[T, V] {
	u := b
	for i := 0; i < len(u.Min); i++ {
		if o.Min[i] < u.Min[i] {
			u.Min[i] = o.Min[i]
		}
		if o.Max[i] > u.Max[i] {
			u.Max[i] = o.Max[i]
		}
	}
	return u
}

// Extend gives the smallest box containing both b and the point p.
func (b Box[T, V]) Extend(p V) Box[T, V] {
	u := b
	for i := 0; i < len(u.Min); i++ {
		if p[i] < u.Min[i] {
			u.Min[i] = p[i]
		}
		if p[i] > u.Max[i] {
			u.Max[i] = p[i]
		}
	}
	return u
}

// Intersects reports whether b and o overlap. Boxes that merely touch
// along a face or corner count as overlapping.
func (b Box[T, V]) Intersects(o Box[T, V]) bool {
	for i := 0; i < len(b.Min); i++ {
		if b.Min[i] > o.Max[i] || o.Min[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Contains reports whether o lies entirely within b.
func (b Box[T, V]) Contains(o Box[T, V]) bool {
	for i := 0; i < len(b.Min); i++ {
		if o.Min[i] < b.Min[i] || o.Max[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether the point p lies on or inside b.
func (b Box[T, V]) ContainsPoint(p V) bool {
	for i := 0; i < len(b.Min); i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Center returns the centroid of the box.
func (b Box[T, V]) Center() V {
	c := b.Min
	for i := 0; i < len(c); i++ {
		c[i] = (b.Min[i] + b.Max[i]) / 2
	}
	return c
}

// Diagonal returns the componentwise extent Max-Min.
func (b Box[T, V]) Diagonal() V {
	d := b.Max
	for i := 0; i < len(d); i++ {
		d[i] = b.Max[i] - b.Min[i]
	}
	return d
}

// LongestAxis returns the coordinate axis along which the box has the
// greatest extent.
func (b Box[T, V]) LongestAxis() int {
	axis := 0
	best := b.Max[0] - b.Min[0]
	for i := 1; i < len(b.Min); i++ {
		if d := b.Max[i] - b.Min[i]; d > best {
			axis, best = i, d
		}
	}
	return axis
}

// SqExteriorDistance returns the squared distance from p to the
// nearest point on or in the box. Zero if p is inside.
func (b Box[T, V]) SqExteriorDistance(p V) T {
	var d2 T
	for i := 0; i < len(p); i++ {
		if d := b.Min[i] - p[i]; d > 0 {
			d2 += d * d
		} else if d := p[i] - b.Max[i]; d > 0 {
			d2 += d * d
		}
	}
	return d2
}

// Shorthands for the common float64 instantiations.
type (
	Vec2 = [2]float64
	Vec3 = [3]float64

	Box2 = Box[float64, Vec2]
	Box3 = Box[float64, Vec3]

	Tree2 = Tree[float64, Vec2]
	Tree3 = Tree[float64, Vec3]
)
