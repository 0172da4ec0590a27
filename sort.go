package delaunay

import (
	"sort"

	"github.com/arl/go-delaunay/geom"
)

// taggedPoint is a point together with the identifier Triangulate assigns
// it: its index in the (x, then y) ascending order.
type taggedPoint struct {
	id int64
	p  geom.Point
}

// sortLeftToRight orders pts by x ascending, ties broken by y ascending,
// and tags each with the resulting index. Stability is not required by the
// sorting contract.
func sortLeftToRight(pts []Point) []taggedPoint {
	tagged := make([]taggedPoint, len(pts))
	for i, p := range pts {
		tagged[i] = taggedPoint{p: geom.Point{X: p.X, Y: p.Y}}
	}
	sort.Slice(tagged, func(i, j int) bool {
		a, b := tagged[i].p, tagged[j].p
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	for i := range tagged {
		tagged[i].id = int64(i)
	}
	return tagged
}
