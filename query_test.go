package bvh

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestCenterDistance(t *testing.T) {
	boxes := unitBoxesAt(Vec2{0, 0}, Vec2{10, 0}, Vec2{20, 0})
	tr := New(boxes)

	p := Vec2{11, 0}
	got := tr.Nearest(p, func(elem int) float64 {
		c := boxes[elem].Center()
		dx, dy := c[0]-p[0], c[1]-p[1]
		return dx*dx + dy*dy
	})
	require.Equal(t, 1, got)

	c := boxes[got].Center()
	dx, dy := c[0]-p[0], c[1]-p[1]
	assert.Equal(t, 1.0, dx*dx+dy*dy)
}

func TestNearestMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, population := range []int{1, 2, 3, 10, 100, 500} {
		t.Run(fmt.Sprintf("pop_%d", population), func(t *testing.T) {
			boxes := make([]Box2, population)
			for i := range boxes {
				boxes[i] = randomBox(rnd, 0.9, 0.1)
			}
			tr := New(boxes)

			for i := 0; i < 20; i++ {
				p := Vec2{rnd.Float64() * 2, rnd.Float64() * 2}
				centerDist := func(elem int) float64 {
					c := boxes[elem].Center()
					dx, dy := c[0]-p[0], c[1]-p[1]
					return dx*dx + dy*dy
				}

				got := tr.Nearest(p, centerDist)
				require.NotEqual(t, None, got)

				want := math.Inf(1)
				for j := range boxes {
					if d := centerDist(j); d < want {
						want = d
					}
				}
				assert.Equal(t, want, centerDist(got), "query point %v", p)
			}
		})
	}
}

// The exact-distance callback may be looser than the box bound (e.g.
// the distance to a shape inside the box); the result must still be
// the exact argmin.
func TestNearestLooseExactDistance(t *testing.T) {
	rnd := rand.New(rand.NewSource(8))
	boxes := make([]Box2, 200)
	pad := make([]float64, len(boxes))
	for i := range boxes {
		boxes[i] = randomBox(rnd, 0.9, 0.1)
		pad[i] = rnd.Float64() // extra slack above the box bound
	}
	tr := New(boxes)

	for i := 0; i < 20; i++ {
		p := Vec2{rnd.Float64() * 2, rnd.Float64() * 2}
		exact := func(elem int) float64 {
			return boxes[elem].SqExteriorDistance(p) + pad[elem]
		}

		got := tr.Nearest(p, exact)
		require.NotEqual(t, None, got)

		want := math.Inf(1)
		for j := range boxes {
			if d := exact(j); d < want {
				want = d
			}
		}
		assert.Equal(t, want, exact(got), "query point %v", p)
	}
}

func TestWithinRadius(t *testing.T) {
	boxes := unitBoxesAt(Vec2{0, 0}, Vec2{10, 0}, Vec2{20, 0})
	tr := New(boxes)
	got := tr.WithinRadius(Vec2{0, 0}, 150)
	assert.ElementsMatch(t, []int{0, 1}, got)
}

func TestWithinRadiusMatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	for _, population := range []int{1, 5, 50, 300} {
		t.Run(fmt.Sprintf("pop_%d", population), func(t *testing.T) {
			boxes := make([]Box2, population)
			for i := range boxes {
				boxes[i] = randomBox(rnd, 0.9, 0.1)
			}
			tr := New(boxes)

			for i := 0; i < 20; i++ {
				p := Vec2{rnd.Float64() * 2, rnd.Float64() * 2}
				sqRadius := rnd.Float64() * 0.5

				got := tr.WithinRadius(p, sqRadius)

				var want []int
				for j := range boxes {
					if boxes[j].SqExteriorDistance(p) <= sqRadius {
						want = append(want, j)
					}
				}
				assert.ElementsMatch(t, want, got, "point %v sqRadius %v", p, sqRadius)
			}
		})
	}
}

func TestWithinRadiusZero(t *testing.T) {
	boxes := unitBoxesAt(Vec2{0, 0}, Vec2{10, 0})
	tr := New(boxes)
	// a zero radius still matches boxes containing the point
	assert.ElementsMatch(t, []int{0}, tr.WithinRadius(Vec2{0, 0}, 0))
	assert.Empty(t, tr.WithinRadius(Vec2{5, 5}, 0))
}

func TestQueriesIndependentOfTreeShape(t *testing.T) {
	// Identical centroids force arbitrary tie-breaking during the
	// build; the visited sets must not depend on it.
	boxes := make([]Box2, 33)
	for i := range boxes {
		boxes[i] = Box2{Min: Vec2{0, 0}, Max: Vec2{1, 1}}
	}
	tr := New(boxes)

	all := tr.IntersectAll(Box2{Min: Vec2{0.5, 0.5}, Max: Vec2{0.6, 0.6}})
	want := make([]int, len(boxes))
	for i := range want {
		want[i] = i
	}
	assert.ElementsMatch(t, want, all)
	assert.ElementsMatch(t, want, tr.WithinRadius(Vec2{2, 2}, 2.0))
}
