package vmath

import "math"

// Rect is an axis-aligned bounding box, Min inclusive and Max inclusive
type Rect struct {
	Min, Max Point
}

// Width of the box, zero for an empty or degenerate box
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height of the box, zero for an empty or degenerate box
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Perimeter returns the summed segment length of the polyline
// Closed polylines include the segment from the last point back to the first
func Perimeter(pts []Point, closed bool) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}

	var total float64
	for i := 0; i < n-1; i++ {
		total += pts[i].Distance(pts[i+1])
	}
	if closed {
		total += pts[n-1].Distance(pts[0])
	}
	return total
}

// SignedArea returns the shoelace area of the implicitly closed polygon
// Positive for counter-clockwise winding in a y-up frame, negative otherwise
func SignedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the absolute polygon area
func Area(pts []Point) float64 {
	return math.Abs(SignedArea(pts))
}

// Bounds returns the bounding box of pts; ok is false for an empty slice
func Bounds(pts []Point) (r Rect, ok bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}

	r = Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r, true
}

// Centroid computes the vertex average of pts
// Returns the zero point for an empty slice
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}

	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Point{X: sx / n, Y: sy / n}
}

// Nearest returns the index of the first point within radius of target, or -1
// Scan order is insertion order so earlier points win ties
func Nearest(pts []Point, target Point, radius float64) int {
	r2 := radius * radius
	for i, p := range pts {
		if p.DistanceSquared(target) <= r2 {
			return i
		}
	}
	return -1
}
