// Package delaunay computes a two-dimensional Delaunay triangulation with
// the divide-and-conquer algorithm of Guibas & Stolfi, simplified to a
// plain cyclic doubly-linked hull structure rather than a quad-edge one.
//
// The hard engineering lives in two tightly coupled subpackages: hull,
// the convex-hull ring with its tangent-finding merge, and adjacency, the
// edge store the merge and the seam zipper in driver.go share. Both rest
// on the orientation and in-circle predicates in geom.
//
// cmd/delaunay wraps this package in a command-line front end that reads
// or generates a point set, runs the triangulation, and writes the points
// and edges back out.
package delaunay
