package vmath

import (
	"fmt"
	"math"
)

// Point is a 2D position in dot space
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y)
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Lerp interpolates from p towards o, evaluated as p*(1-t) + o*t per component
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X*(1-t) + o.X*t,
		Y: p.Y*(1-t) + o.Y*t,
	}
}

// Distance returns the euclidean distance between two points
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// DistanceSquared avoids the sqrt for comparisons
func (p Point) DistanceSquared(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Round snaps both components to the nearest integer
func (p Point) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// IsFinite reports whether neither component is NaN or Inf
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// ClonePoints returns a fresh copy of pts, never nil
func ClonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
