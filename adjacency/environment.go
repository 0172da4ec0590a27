// Package adjacency implements the edge environment shared by the hull
// merge and the seam zipper: an adjacency store keyed by point identifier,
// with symmetric add/remove and an ascending, deduplicated edge listing.
package adjacency

import (
	"sort"

	"github.com/arl/go-delaunay/internal/dbg"
)

// Edge is an undirected pair of point identifiers, with A <= B.
type Edge struct {
	A, B int64
}

// Environment is an array indexed by point identifier, each slot holding
// the set of identifiers currently adjacent to it. Both directions of
// every edge are stored; Add and Remove keep the two slots in lockstep,
// and a mismatch between them is treated as a fatal invariant violation
// rather than a recoverable error (see internal/dbg).
type Environment struct {
	adj []map[int64]struct{}
}

// New returns an Environment sized for n point identifiers, 0..n-1.
func New(n int) *Environment {
	adj := make([]map[int64]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int64]struct{})
	}
	return &Environment{adj: adj}
}

// Add inserts q into p's adjacency and p into q's. It returns false if the
// edge already existed in both slots, true otherwise. The two slots must
// agree on whether the edge pre-existed; disagreement fails a dbg.True
// check, which panics only in binaries built with the 'debug' tag.
func (e *Environment) Add(p, q int64) bool {
	addedPQ := e.addOne(p, q)
	addedQP := e.addOne(q, p)
	dbg.True(addedPQ == addedQP, "adjacency.Add(%d, %d): asymmetric result", p, q)
	return addedPQ
}

// Remove is the symmetric counterpart of Add: it deletes q from p's
// adjacency and p from q's, returning false if the edge was already
// absent from both slots.
func (e *Environment) Remove(p, q int64) bool {
	removedPQ := e.removeOne(p, q)
	removedQP := e.removeOne(q, p)
	dbg.True(removedPQ == removedQP, "adjacency.Remove(%d, %d): asymmetric result", p, q)
	return removedPQ
}

func (e *Environment) addOne(i, j int64) bool {
	if _, ok := e.adj[i][j]; ok {
		return false
	}
	e.adj[i][j] = struct{}{}
	return true
}

func (e *Environment) removeOne(i, j int64) bool {
	if _, ok := e.adj[i][j]; !ok {
		return false
	}
	delete(e.adj[i], j)
	return true
}

// Neighbors returns the identifiers currently adjacent to p, in unspecified
// order.
func (e *Environment) Neighbors(p int64) []int64 {
	ns := make([]int64, 0, len(e.adj[p]))
	for q := range e.adj[p] {
		ns = append(ns, q)
	}
	return ns
}

// AllEdges returns each undirected edge exactly once, using the convention
// "emit only when the lower-id endpoint is the key", in ascending order of
// the lower identifier then of the higher.
func (e *Environment) AllEdges() []Edge {
	result := make([]Edge, 0, len(e.adj)/2+1)
	for i := range e.adj {
		ns := e.Neighbors(int64(i))
		sort.Slice(ns, func(a, b int) bool { return ns[a] < ns[b] })
		for _, j := range ns {
			if int64(i) < j {
				result = append(result, Edge{A: int64(i), B: j})
			}
		}
	}
	return result
}
