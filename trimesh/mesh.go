package trimesh

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/meshkit/bvh"
)

// Mesh is a triangle soup together with a BVH over the triangles'
// bounding boxes. Triangle indices reported by queries are positions
// in the slice passed to NewMesh.
type Mesh struct {
	tris []Triangle
	tree bvh.Tree3
}

// NewMesh indexes the given triangles. The slice is retained; call
// Rebuild after mutating it.
func NewMesh(tris []Triangle) *Mesh {
	m := &Mesh{tris: tris}
	m.Rebuild()
	return m
}

// Rebuild recomputes the spatial index from the current triangles.
// No query may be in flight during a rebuild.
func (m *Mesh) Rebuild() {
	boxes := make([]bvh.Box3, len(m.tris))
	for i, t := range m.tris {
		boxes[i] = t.Bounds()
	}
	m.tree.Build(boxes)
}

// Len returns the number of indexed triangles.
func (m *Mesh) Len() int {
	return len(m.tris)
}

// Triangle returns the indexed triangle i.
func (m *Mesh) Triangle(i int) Triangle {
	return m.tris[i]
}

// NearestTriangle returns the index of the triangle closest to p and
// the squared distance to it. For an empty mesh it returns bvh.None
// and +Inf.
func (m *Mesh) NearestTriangle(p r3.Vector) (int, float64) {
	bestD := math.Inf(1)
	i := m.tree.Nearest(vec(p), func(elem int) float64 {
		d := m.tris[elem].SqDistance(p)
		if d < bestD {
			bestD = d
		}
		return d
	})
	return i, bestD
}

// TrianglesIntersecting returns the indices of all triangles whose
// bounding box intersects the query box.
func (m *Mesh) TrianglesIntersecting(query bvh.Box3) []int {
	return m.tree.IntersectAll(query)
}

// TrianglesWithinRadius returns the indices of all triangles whose
// bounding box lies within radius of p. The box test is conservative:
// every triangle truly within radius is included, and callers wanting
// exact results should filter with Triangle.SqDistance.
func (m *Mesh) TrianglesWithinRadius(p r3.Vector, radius float64) []int {
	return m.tree.WithinRadius(vec(p), radius*radius)
}
