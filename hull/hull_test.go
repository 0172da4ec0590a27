package hull

import (
	"testing"

	"github.com/arl/go-delaunay/geom"
	"github.com/stretchr/testify/assert"
)

func edgeSet(a *Arena, h Hull) map[Edge]bool {
	set := make(map[Edge]bool)
	h.TraverseEdges(a, func(e Edge) {
		set[Edge{a.ID(e.A), a.ID(e.B)}] = true
	})
	return set
}

func TestFrom2OrdersByX(t *testing.T) {
	a := NewArena(4)
	h := From2(a, geom.Point{X: 1, Y: 0}, 0, geom.Point{X: 0, Y: 0}, 1)
	assert.Equal(t, int64(1), a.ID(h.LeftMost))
	assert.Equal(t, int64(0), a.ID(h.RightMost))
}

func TestFrom3CCWOrder(t *testing.T) {
	a := NewArena(4)
	h := From3(a,
		geom.Point{X: 0, Y: 0}, 0,
		geom.Point{X: 2, Y: 0}, 1,
		geom.Point{X: 1, Y: 1}, 2,
	)
	assert.Equal(t, int64(0), a.ID(h.LeftMost))
	assert.Equal(t, int64(1), a.ID(h.RightMost))

	n := h.LeftMost
	for i := 0; i < 3; i++ {
		next := a.Next(n)
		nextNext := a.Next(next)
		assert.Equal(t, geom.CounterClockwise, geom.ComputeOrientation(a.Point(n), a.Point(next), a.Point(nextNext)))
		n = next
	}
}

func TestMergeTwoTriangles(t *testing.T) {
	a := NewArena(8)
	left := From3(a,
		geom.Point{X: 0, Y: 0}, 0,
		geom.Point{X: 1, Y: 0}, 1,
		geom.Point{X: 0, Y: 1}, 2,
	)
	right := From3(a,
		geom.Point{X: 3, Y: 0}, 3,
		geom.Point{X: 4, Y: 0}, 4,
		geom.Point{X: 3, Y: 1}, 5,
	)

	merged, bottom, top := Merge(a, &left, &right)

	assert.False(t, left.Valid(), "Merge must invalidate its left argument")
	assert.False(t, right.Valid(), "Merge must invalidate its right argument")
	assert.True(t, merged.Valid())

	assert.Equal(t, int64(1), a.ID(bottom.A), "bottom tangent's left endpoint must be the rightmost-bottom point of left")
	assert.Equal(t, int64(3), a.ID(bottom.B))
	assert.Equal(t, int64(2), a.ID(top.A))
	assert.Equal(t, int64(5), a.ID(top.B))

	edges := edgeSet(a, merged)
	// the merged ring must still traverse every original boundary node.
	ids := make(map[int64]bool)
	for e := range edges {
		ids[e.A], ids[e.B] = true, true
	}
	for _, id := range []int64{0, 1, 2, 3, 4, 5} {
		assert.True(t, ids[id], "merged hull must retain point %d", id)
	}
}
