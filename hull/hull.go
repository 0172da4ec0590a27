package hull

import (
	"sort"

	"github.com/arl/go-delaunay/geom"
)

// Edge is a tangent or boundary edge between two hull nodes.
type Edge struct {
	A, B Ref
}

// Hull is a cyclic doubly-linked sequence of hull nodes, counter-clockwise
// oriented. LeftMost and RightMost are the nodes of minimum and maximum x
// (ties broken by minimum/maximum y respectively).
//
// A Hull moves through three states: valid (after construction or a
// successful Merge), invalidated (its LeftMost/RightMost set to Nil after
// being consumed by Merge), and released (after Destruct). Invalidated is
// terminal; Destruct is a no-op on an already-invalidated hull.
type Hull struct {
	LeftMost, RightMost Ref
}

// Valid reports whether h still owns a live ring.
func (h Hull) Valid() bool {
	return h.LeftMost != Nil && h.RightMost != Nil
}

func lessXY(p, q geom.Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// From2 builds a degenerate two-node ring from p1 and p2. LeftMost is
// always the point with the smaller x (ties: smaller y), regardless of
// argument order.
func From2(a *Arena, p1 geom.Point, id1 int64, p2 geom.Point, id2 int64) Hull {
	n1 := a.New(p1, id1)
	n2 := a.New(p2, id2)
	a.SetNext(n1, n2)
	a.SetNext(n2, n1)
	if lessXY(p2, p1) {
		return Hull{LeftMost: n2, RightMost: n1}
	}
	return Hull{LeftMost: n1, RightMost: n2}
}

func arrangeThree(a *Arena, n1, n2, n3 Ref) {
	if geom.ComputeOrientation(a.Point(n1), a.Point(n2), a.Point(n3)) == geom.CounterClockwise {
		a.SetNext(n1, n2)
		a.SetNext(n2, n3)
		a.SetNext(n3, n1)
	} else {
		a.SetNext(n1, n3)
		a.SetNext(n3, n2)
		a.SetNext(n2, n1)
	}
}

func leftAndRight(a *Arena, n1, n2, n3 Ref) (left, right Ref) {
	ns := [3]Ref{n1, n2, n3}
	sort.Slice(ns[:], func(i, j int) bool {
		return lessXY(a.Point(ns[i]), a.Point(ns[j]))
	})
	return ns[0], ns[2]
}

// From3 builds a three-node ring oriented counter-clockwise. Collinear
// triples are not expected here: the pre-sort driving the recursion groups
// three points together only at the leaves of an odd-sized split.
func From3(a *Arena, p1 geom.Point, id1 int64, p2 geom.Point, id2 int64, p3 geom.Point, id3 int64) Hull {
	n1 := a.New(p1, id1)
	n2 := a.New(p2, id2)
	n3 := a.New(p3, id3)
	arrangeThree(a, n1, n2, n3)
	left, right := leftAndRight(a, n1, n2, n3)
	return Hull{LeftMost: left, RightMost: right}
}

func traceBackWhile(a *Arena, n, ref Ref, o geom.Orientation) Ref {
	for geom.ComputeOrientation(a.Point(n), a.Point(ref), a.Point(a.Prev(n))) == o {
		n = a.Prev(n)
	}
	return n
}

func traceForwardWhile(a *Arena, n, ref Ref, o geom.Orientation) Ref {
	for geom.ComputeOrientation(a.Point(n), a.Point(ref), a.Point(a.Next(n))) == o {
		n = a.Next(n)
	}
	return n
}

// findBottomEdge walks left backward and right forward until neither walk
// makes further progress, converging onto the lower common tangent.
func findBottomEdge(a *Arena, left, right Ref) (Ref, Ref) {
	for {
		newLeft := traceBackWhile(a, left, right, geom.Clockwise)
		leftChanged := newLeft != left
		left = newLeft

		newRight := traceForwardWhile(a, right, left, geom.CounterClockwise)
		rightChanged := newRight != right
		right = newRight

		if !leftChanged && !rightChanged {
			return left, right
		}
	}
}

// findTopEdge is findBottomEdge on the mirrored problem: the top tangent of
// (left, right) is the bottom tangent of (right, left), with the result
// pair reversed.
func findTopEdge(a *Arena, left, right Ref) (Ref, Ref) {
	r, l := findBottomEdge(a, right, left)
	return l, r
}

// releaseLinkBetween frees every node strictly between back and front
// (exclusive), walking forward from back, and unlinks the two endpoints
// from that interior chain first so the walk cannot wrap into the
// surviving ring.
func releaseLinkBetween(a *Arena, back, front Ref) {
	if a.next[back] == front {
		return
	}
	frontPrev := a.prev[front]
	a.next[frontPrev] = Nil
	a.prev[front] = Nil
	pending := a.next[back]
	a.next[back] = Nil
	a.ReleaseForward(pending)
}

// Merge stitches two disjoint hulls along their common tangents. It
// requires every point of left to have strictly smaller x than every point
// of right (guaranteed by the driver's split on pre-sorted input).
//
// On return, left and right are invalidated (their LeftMost/RightMost set
// to Nil): their interior nodes between the tangents have been released,
// and the surviving boundary nodes now belong to the merged ring.
func Merge(a *Arena, left, right *Hull) (merged Hull, bottom, top Edge) {
	botLeft, botRight := findBottomEdge(a, left.RightMost, right.LeftMost)
	topLeft, topRight := findTopEdge(a, left.RightMost, right.LeftMost)

	releaseLinkBetween(a, botLeft, topLeft)
	releaseLinkBetween(a, topRight, botRight)

	a.SetNext(botLeft, botRight)
	a.SetNext(topRight, topLeft)

	merged = Hull{LeftMost: left.LeftMost, RightMost: right.RightMost}

	left.LeftMost, left.RightMost = Nil, Nil
	right.LeftMost, right.RightMost = Nil, Nil

	return merged, Edge{botLeft, botRight}, Edge{topLeft, topRight}
}

// TraverseEdges walks the ring starting at LeftMost along next, invoking f
// for every consecutive pair exactly once. It is a no-op on an invalidated
// hull.
func (h Hull) TraverseEdges(a *Arena, f func(Edge)) {
	if !h.Valid() {
		return
	}
	start := h.LeftMost
	next := a.Next(start)
	for {
		f(Edge{start, next})
		start = next
		next = a.Next(next)
		if start == h.LeftMost {
			break
		}
	}
}

// Destruct frees every node in a valid ring. It is a no-op on an already
// invalidated hull, and idempotent.
func (h *Hull) Destruct(a *Arena) {
	if h.Valid() {
		a.ReleaseForward(h.LeftMost)
	}
	h.LeftMost, h.RightMost = Nil, Nil
}
