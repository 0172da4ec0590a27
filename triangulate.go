package delaunay

import (
	"github.com/arl/go-delaunay/adjacency"
	"github.com/arl/go-delaunay/hull"
	"github.com/arl/go-delaunay/internal/dbg"
	"github.com/arl/go-delaunay/internal/trace"
)

// DivideAndConquer triangulates a point set with the Guibas & Stolfi
// divide-and-conquer algorithm: sort left to right, recursively triangulate
// and hull each half, then merge the two hulls along their common tangents
// and zip new edges up the seam under the in-circle Delaunay criterion.
//
// The zero value is ready to use. Trace, if set, receives progress messages
// for each merge and seam step; it is nil-safe and defaults to silent.
type DivideAndConquer struct {
	Trace *trace.Context
}

// Triangulate computes the Delaunay triangulation of points.
//
// Points are first sorted by x ascending (ties broken by y ascending); every
// returned Edge refers to point identifiers in that post-sort order, i.e.
// Edge{i, j} connects the point at position i in the sorted order to the
// point at position j. Input order and any caller-held identifiers are not
// preserved.
//
// Triangulate panics (via internal/dbg, only in debug builds) if points has
// fewer than two elements. Duplicate points are not detected; they, like
// other degenerate input (for instance four cocircular points meeting at a
// single seam edge), may trip one of the algorithm's invariant checks. Callers
// who cannot guarantee general-position input should perturb it before
// calling.
func (dc DivideAndConquer) Triangulate(points []Point) []Edge {
	dbg.True(len(points) >= 2, "Triangulate: need at least two points, got %d", len(points))

	tagged := sortLeftToRight(points)
	env := adjacency.New(len(tagged))
	arena := hull.NewArena(len(tagged))

	tr := dc.Trace
	tr.StartTimer("triangulate")
	d := newDriver(arena, env, tagged, tr)
	root := d.recurse(0, int64(len(tagged)))
	root.Destruct(arena)
	tr.StopTimer("triangulate")
	tr.Progressf("triangulate: %d points, %d edges", len(points), len(env.AllEdges()))

	adjEdges := env.AllEdges()
	edges := make([]Edge, len(adjEdges))
	for i, e := range adjEdges {
		edges[i] = Edge{A: e.A, B: e.B}
	}
	return edges
}

// Triangulate computes the Delaunay triangulation of points using the
// default, silent DivideAndConquer triangulator. See
// DivideAndConquer.Triangulate for the identifier and panic contract.
func Triangulate(points []Point) []Edge {
	return DivideAndConquer{}.Triangulate(points)
}
