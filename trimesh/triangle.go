// Package trimesh indexes triangle soups with a BVH, providing exact
// nearest-triangle and candidate queries over mesh geometry.
package trimesh

import (
	"github.com/golang/geo/r3"

	"github.com/meshkit/bvh"
)

// Triangle is a triangle in 3-space.
type Triangle struct {
	A, B, C r3.Vector
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t Triangle) Bounds() bvh.Box3 {
	b := bvh.PointBox[float64, bvh.Vec3](vec(t.A))
	b = b.Extend(vec(t.B))
	return b.Extend(vec(t.C))
}

// Centroid returns the triangle's centroid.
func (t Triangle) Centroid() r3.Vector {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// ClosestPoint returns the point on or in the triangle closest to p,
// classified by barycentric region (vertex, edge, or face).
func (t Triangle) ClosestPoint(p r3.Vector) r3.Vector {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)

	ap := p.Sub(t.A)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return t.A
	}

	bp := p.Sub(t.B)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return t.B
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return t.A.Add(ab.Mul(v))
	}

	cp := p.Sub(t.C)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return t.C
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return t.A.Add(ac.Mul(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return t.B.Add(t.C.Sub(t.B).Mul(w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return t.A.Add(ab.Mul(v)).Add(ac.Mul(w))
}

// SqDistance returns the squared distance from p to the triangle.
// It is never less than the squared exterior distance from p to the
// triangle's bounding box, so it is a valid exact-distance function
// for bvh.Tree.Nearest.
func (t Triangle) SqDistance(p r3.Vector) float64 {
	d := p.Sub(t.ClosestPoint(p))
	return d.Dot(d)
}

func vec(v r3.Vector) bvh.Vec3 {
	return bvh.Vec3{v.X, v.Y, v.Z}
}
