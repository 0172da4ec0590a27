// Package hull implements the cyclic doubly-linked convex-hull ring used by
// the divide-and-conquer triangulation driver: construction from two or
// three points, and the tangent-finding merge of two disjoint hulls.
//
// Nodes live in an Arena rather than behind individually-owned pointers.
// This is the teacher's own answer (see detour.NodePool) to the arena
// design note: hull nodes are many, short-lived and form a cyclic graph,
// so indexing into a slice sidesteps both manual free()-discipline and
// relying on the garbage collector to untangle cycles.
package hull

import (
	"github.com/arl/go-delaunay/geom"
	"github.com/aurelien-rainone/math32"
)

// Ref indexes a node inside an Arena. The zero value is a valid reference
// (index 0); Nil is the sentinel for "no node".
type Ref int32

// Nil is the null node reference.
const Nil Ref = -1

// Arena owns a pool of hull nodes keyed by index. Release (see
// ReleaseForward) frees slots back onto a free list for reuse instead of
// relying on GC to collect the cyclic prev/next graph.
type Arena struct {
	point []geom.Point
	id    []int64
	prev  []Ref
	next  []Ref
	free  []Ref
}

// NewArena returns an Arena pre-sized for roughly n nodes. Capacity is
// rounded up to the next power of two via math32.NextPow2, echoing
// detour.NodePool's hash-size power-of-two discipline.
func NewArena(n int) *Arena {
	c := int(math32.NextPow2(uint32(n)))
	if c < 4 {
		c = 4
	}
	return &Arena{
		point: make([]geom.Point, 0, c),
		id:    make([]int64, 0, c),
		prev:  make([]Ref, 0, c),
		next:  make([]Ref, 0, c),
	}
}

// New allocates a node for p (tagged with id) and returns its reference. Its
// prev/next links are Nil until set with SetNext.
func (a *Arena) New(p geom.Point, id int64) Ref {
	if n := len(a.free); n > 0 {
		r := a.free[n-1]
		a.free = a.free[:n-1]
		a.point[r], a.id[r] = p, id
		a.prev[r], a.next[r] = Nil, Nil
		return r
	}
	r := Ref(len(a.point))
	a.point = append(a.point, p)
	a.id = append(a.id, id)
	a.prev = append(a.prev, Nil)
	a.next = append(a.next, Nil)
	return r
}

// Point returns the coordinates of the point referenced by r.
func (a *Arena) Point(r Ref) geom.Point { return a.point[r] }

// ID returns the identifier of the point referenced by r.
func (a *Arena) ID(r Ref) int64 { return a.id[r] }

// Next returns r's successor going counter-clockwise.
func (a *Arena) Next(r Ref) Ref { return a.next[r] }

// Prev returns r's predecessor going counter-clockwise (i.e. its successor
// going clockwise).
func (a *Arena) Prev(r Ref) Ref { return a.prev[r] }

// SetNext links from -> to (from.next = to, to.prev = from), nulling the
// stale far-end pointers first: from's old successor's prev is orphaned,
// and to's old predecessor's next is orphaned. This mirrors
// ConvexHull::Node::SetNext from the source and is what lets Merge's
// release walk unlink nodes safely without dangling links into the
// surviving ring.
func (a *Arena) SetNext(from, to Ref) {
	if oldNext := a.next[from]; oldNext != Nil {
		a.prev[oldNext] = Nil
	}
	a.next[from] = to
	if oldPrev := a.prev[to]; oldPrev != Nil {
		a.next[oldPrev] = Nil
	}
	a.prev[to] = from
}

// ReleaseForward frees start and every node reachable by following next,
// stopping at a Nil link or upon looping back to start.
func (a *Arena) ReleaseForward(start Ref) {
	if start == Nil {
		return
	}
	cur := start
	for {
		n := a.next[cur]
		a.free = append(a.free, cur)
		if n == Nil || n == start {
			return
		}
		cur = n
	}
}
