package delaunay

import (
	"sort"

	"github.com/arl/go-delaunay/adjacency"
	"github.com/arl/go-delaunay/geom"
	"github.com/arl/go-delaunay/hull"
	"github.com/arl/go-delaunay/internal/dbg"
	"github.com/arl/go-delaunay/internal/trace"
)

// driver runs the recursive split and the seam zipper over a single
// pre-sorted point sequence, committing edges to a shared adjacency
// environment as it goes.
type driver struct {
	arena *hull.Arena
	env   *adjacency.Environment
	pts   []taggedPoint
	tr    *trace.Context
}

func newDriver(arena *hull.Arena, env *adjacency.Environment, pts []taggedPoint, tr *trace.Context) *driver {
	return &driver{arena: arena, env: env, pts: pts, tr: tr}
}

func (d *driver) pointByID(id int64) geom.Point {
	return d.pts[id].p
}

// recurse triangulates the pre-sorted points d.pts[i:j] and returns their
// convex hull. It is defined only for j-i >= 2.
func (d *driver) recurse(i, j int64) hull.Hull {
	dbg.True(j-i >= 2, "recurse: cannot triangulate fewer than two points (%d, %d)", i, j)
	switch j - i {
	case 2:
		return d.baseCase2(i)
	case 3:
		return d.baseCase3(i)
	default:
		m := (i + j) / 2
		left := d.recurse(i, m)
		right := d.recurse(m, j)
		return d.mergeRecurse(&left, &right)
	}
}

func (d *driver) baseCase2(i int64) hull.Hull {
	p1, p2 := d.pts[i], d.pts[i+1]
	ok := d.env.Add(p1.id, p2.id)
	dbg.True(ok, "baseCase2: edge (%d, %d) already present", p1.id, p2.id)
	return hull.From2(d.arena, p1.p, p1.id, p2.p, p2.id)
}

func (d *driver) baseCase3(i int64) hull.Hull {
	p1, p2, p3 := d.pts[i], d.pts[i+1], d.pts[i+2]
	ok1 := d.env.Add(p1.id, p2.id)
	ok2 := d.env.Add(p2.id, p3.id)
	ok3 := d.env.Add(p1.id, p3.id)
	dbg.True(ok1 && ok2 && ok3, "baseCase3: duplicate edge among (%d, %d, %d)", p1.id, p2.id, p3.id)
	return hull.From3(d.arena, p1.p, p1.id, p2.p, p2.id, p3.p, p3.id)
}

// mergeRecurse merges the two child hulls, commits their bottom tangent to
// the environment, and runs the seam zipper up from it.
func (d *driver) mergeRecurse(left, right *hull.Hull) hull.Hull {
	merged, bottom, top := hull.Merge(d.arena, left, right)

	leftID, rightID := d.arena.ID(bottom.A), d.arena.ID(bottom.B)
	topLeftID, topRightID := d.arena.ID(top.A), d.arena.ID(top.B)
	d.tr.Progressf("merge: bottom (%d,%d) top (%d,%d)", leftID, rightID, topLeftID, topRightID)

	ok := d.env.Add(leftID, rightID)
	dbg.True(ok, "merge: base edge (%d, %d) already present", leftID, rightID)

	d.zipper(leftID, rightID)
	return merged
}

// zipper walks the seam upward from the base edge (left, right), adding
// one new edge per step and stopping when neither endpoint has a surviving
// candidate. At every step (left, right) is already committed to the
// environment; edges it removes along the way were Delaunay-illegal in the
// merged triangulation.
func (d *driver) zipper(left, right int64) {
	for {
		lc, lcOK := d.candidate(left, right, geom.CounterClockwise)
		rc, rcOK := d.candidate(right, left, geom.Clockwise)

		nl, nr, ok := d.debateCandidates(left, right, lc, rc, lcOK, rcOK)
		if !ok {
			return
		}
		added := d.env.Add(nl, nr)
		dbg.True(added, "zipper: seam edge (%d, %d) already present", nl, nr)
		d.tr.Progressf("zipper: advanced to (%d, %d)", nl, nr)
		left, right = nl, nr
	}
}

// candidate computes the left or right candidate for the base edge,
// depending on which endpoint is passed as pa: the left candidate is
// candidate(left, right, CounterClockwise), the right candidate is
// candidate(right, left, Clockwise).
//
// It gathers every point adjacent to pa on the o side of (pa, pb), sorts
// them by angular proximity to (pb - pa) anchored at pa (descending
// cosine, so the smallest angle sorts first), then walks the sorted
// sequence rejecting (and removing) candidates whose circumcircle with
// the next candidate would contain it, per the in-circle test.
func (d *driver) candidate(pa, pb int64, o geom.Orientation) (id int64, ok bool) {
	paPt, pbPt := d.pointByID(pa), d.pointByID(pb)

	type cand struct {
		id int64
		pt geom.Point
	}
	var cs []cand
	for _, q := range d.env.Neighbors(pa) {
		if q == pb {
			continue
		}
		qPt := d.pointByID(q)
		if geom.ComputeOrientation(paPt, pbPt, qPt) == o {
			cs = append(cs, cand{q, qPt})
		}
	}
	if len(cs) == 0 {
		return 0, false
	}

	ref := pbPt.Sub(paPt)
	sort.Slice(cs, func(i, j int) bool {
		return geom.AngularCos(cs[i].pt, ref, paPt) > geom.AngularCos(cs[j].pt, ref, paPt)
	})

	for i := 0; i < len(cs)-1; i++ {
		cur, next := cs[i], cs[i+1]
		if geom.InCircleOriented(paPt, pbPt, cur.pt, next.pt, o) {
			removed := d.env.Remove(pa, cur.id)
			dbg.True(removed, "candidate: expected edge (%d, %d) to be removable", pa, cur.id)
			continue
		}
		return cur.id, true
	}
	last := cs[len(cs)-1]
	return last.id, true
}

// debateCandidates decides the next seam edge from the current base edge
// and its left/right candidates, returning ok=false to signal the zipper
// has reached the top tangent and should stop.
func (d *driver) debateCandidates(left, right, lc, rc int64, lcOK, rcOK bool) (nextLeft, nextRight int64, ok bool) {
	switch {
	case !lcOK && !rcOK:
		return 0, 0, false
	case !rcOK:
		return lc, right, true
	case !lcOK:
		return left, rc, true
	}

	leftPt, rightPt := d.pointByID(left), d.pointByID(right)
	lcPt, rcPt := d.pointByID(lc), d.pointByID(rc)

	if !geom.InCircle(leftPt, rightPt, lcPt, rcPt) {
		return lc, right, true
	}
	if !geom.InCircle(leftPt, rightPt, rcPt, lcPt) {
		return left, rc, true
	}
	dbg.True(false, "zipper: four cocircular points at base edge (%d, %d)", left, right)
	return 0, 0, false
}
