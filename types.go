package delaunay

// Point is an input point in the plane. Triangulate does not take
// caller-supplied identifiers: it assigns them itself as the zero-based
// index of each point after sorting left to right (see the sorting
// contract on Triangulate), and every Edge it returns refers to that
// order.
type Point struct {
	X, Y float64
}

// Edge is an undirected pair of point identifiers with A < B, referring to
// the post-sort order a Triangulate call produced.
type Edge struct {
	A, B int64
}

// Triangulator computes the edges of a Delaunay triangulation of a set of
// points.
type Triangulator interface {
	Triangulate(points []Point) []Edge
}
