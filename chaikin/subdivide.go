// Package chaikin implements Chaikin's corner-cutting subdivision and the
// precomputed generation list the demo plays back one step per tick.
package chaikin

import "github.com/lixenwraith/chaikin/vmath"

// Corner-cutting ratios along each edge
const (
	NearCut = 0.25
	FarCut  = 0.75
)

// Subdivide applies one pass of corner cutting to pts
// Every edge (p_i, p_i+1) is replaced by its NearCut and FarCut points. Closed
// input also cuts the wrap edge from the last point to the first; open input
// keeps the first and last points verbatim. Fewer than 2 points is a no-op.
// The result is always a new slice and pts is never written.
func Subdivide(pts []vmath.Point, closed bool) []vmath.Point {
	n := len(pts)
	if n < 2 {
		return vmath.ClonePoints(pts)
	}

	out := make([]vmath.Point, 0, 2*n)

	if closed {
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%n]
			out = append(out, a.Lerp(b, NearCut), a.Lerp(b, FarCut))
		}
		return out
	}

	out = append(out, pts[0])
	for i := 0; i < n-1; i++ {
		a, b := pts[i], pts[i+1]
		out = append(out, a.Lerp(b, NearCut), a.Lerp(b, FarCut))
	}
	out = append(out, pts[n-1])
	return out
}

// SubdivideN applies Subdivide n times; n <= 0 returns a copy
func SubdivideN(pts []vmath.Point, closed bool, n int) []vmath.Point {
	cur := vmath.ClonePoints(pts)
	for range n {
		cur = Subdivide(cur, closed)
	}
	return cur
}
