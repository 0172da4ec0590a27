// Package geom provides the floating-point geometric predicates shared by
// the convex-hull and divide-and-conquer triangulation subsystems:
// orientation, in-circle, and the angular comparator used by the seam
// zipper.
//
// The predicates are the classic non-robust, double-precision ones. They
// are correct for general-position input and tolerate the usual
// floating-point caveats of non-robust Delaunay triangulation; there is no
// exact or adaptive arithmetic here.
package geom

import "math"

// Point is a point in the plane.
type Point struct {
	X, Y float64
}

// Sub returns p - q as a free vector.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dot returns the dot product of p and q, treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Norm returns the Euclidean length of p, treated as a vector.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Orientation classifies the turn described by three ordered points.
type Orientation int

const (
	// Collinear means the three points lie on a line. Callers must treat
	// this as neither strictly clockwise nor counter-clockwise, so loops
	// driven by an orientation test terminate on it.
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// ComputeOrientation returns the orientation of the triangle (p, q, r),
// computed as the sign of the 2D cross product of (p-q) and (p-r).
func ComputeOrientation(p, q, r Point) Orientation {
	v1, v2 := p.Sub(q), p.Sub(r)
	d := v1.X*v2.Y - v1.Y*v2.X
	switch {
	case d < 0:
		return Clockwise
	case d > 0:
		return CounterClockwise
	default:
		return Collinear
	}
}

func square(x float64) float64 { return x * x }

// InCircle reports whether d lies strictly inside the circumcircle of the
// counter-clockwise-oriented triangle (a, b, c). It is computed as the sign
// of the 3x3 determinant of rows (ax-dx, ay-dy, (ax-dx)^2+(ay-dy)^2) and the
// analogous rows for b and c. It returns false on the cocircular boundary.
func InCircle(a, b, c, d Point) bool {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	det := (adx*(bdy*(square(cdx)+square(cdy))-(square(bdx)+square(bdy))*cdy) -
		ady*(bdx*(square(cdx)+square(cdy))-(square(bdx)+square(bdy))*cdx) +
		(square(adx)+square(ady))*(bdx*cdy-bdy*cdx))

	return det > 0
}

// InCircleOriented normalizes orientation before delegating to InCircle: if
// o is CounterClockwise it calls InCircle(a, b, c, d) directly, otherwise it
// swaps b and c so the triangle passed to InCircle is effectively
// counter-clockwise.
func InCircleOriented(a, b, c, d Point, o Orientation) bool {
	if o == CounterClockwise {
		return InCircle(a, b, c, d)
	}
	return InCircle(a, c, b, d)
}
