// Package pointsio reads and writes the point and edge file formats the
// delaunay CLI accepts and produces: the custom text format described in
// the original triangulation command, and OBJ vertex lists as an
// alternate input source.
package pointsio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arl/go-delaunay"
	"github.com/aurelien-rainone/gobj"
)

// ReadText reads a point set in the text format: a first line holding the
// point count, followed by that many lines of two whitespace-separated
// floating-point numbers.
func ReadText(r io.Reader) ([]delaunay.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("pointsio: empty input")
	}
	var n int
	if _, err := fmt.Sscanf(sc.Text(), "%d", &n); err != nil {
		return nil, fmt.Errorf("pointsio: invalid point count %q: %w", sc.Text(), err)
	}

	pts := make([]delaunay.Point, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("pointsio: expected %d points, got %d", n, i)
		}
		var x, y float64
		if _, err := fmt.Sscanf(sc.Text(), "%f %f", &x, &y); err != nil {
			return nil, fmt.Errorf("pointsio: invalid point %q: %w", sc.Text(), err)
		}
		pts = append(pts, delaunay.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// ReadOBJ reads a point set from the vertex list ("v x y z") of an OBJ
// geometry file, discarding the z coordinate. Polygonal faces, if any,
// are ignored: the command only needs a point cloud.
func ReadOBJ(r io.Reader) ([]delaunay.Point, error) {
	obj, err := gobj.Decode(r)
	if err != nil {
		return nil, err
	}
	verts := obj.Verts()
	pts := make([]delaunay.Point, len(verts))
	for i, v := range verts {
		pts[i] = delaunay.Point{X: v.X(), Y: v.Y()}
	}
	return pts, nil
}

// WriteResult writes the combined points-then-edges text format: the same
// point block ReadText accepts, followed by one "a b" line per edge.
func WriteResult(w io.Writer, points []delaunay.Point, edges []delaunay.Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(points)); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%.3f %.3f\n", p.X, p.Y); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.A, e.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}
