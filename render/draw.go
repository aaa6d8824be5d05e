package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaikin/vmath"
)

// CellToDot maps terminal cell (cx, cy) to the dot-space point at its centre
func CellToDot(cx, cy int) vmath.Point {
	return vmath.Pt(float64(cx*DotsX+DotsX/2), float64(cy*DotsY+DotsY/2))
}

// DotToCell maps a dot-space point to the terminal cell containing it
func DotToCell(p vmath.Point) (int, int) {
	return floorDiv(p.X, DotsX), floorDiv(p.Y, DotsY)
}

func floorDiv(v float64, d int) int {
	return int(math.Floor(v / float64(d)))
}

// Line rasterizes the segment a-b onto the dot layer
func (b *RenderBuffer) Line(a, c vmath.Point, style tcell.Style) {
	dw, dh := b.DotSize()
	if outside(a, c, float64(dw), float64(dh)) {
		return
	}
	vmath.Traverse(a, c, func(x, y int) bool {
		b.SetDot(x, y, style)
		return true
	})
}

// Polyline draws consecutive segments and, when closed, the segment back to the start
func (b *RenderBuffer) Polyline(pts []vmath.Point, closed bool, style tcell.Style) {
	switch len(pts) {
	case 0:
		return
	case 1:
		x, y := pts[0].Round()
		b.SetDot(x, y, style)
		return
	}

	for i := 0; i < len(pts)-1; i++ {
		b.Line(pts[i], pts[i+1], style)
	}
	if closed {
		b.Line(pts[len(pts)-1], pts[0], style)
	}
}

// outside reports whether both endpoints lie past the same edge of a w x h area
func outside(a, c vmath.Point, w, h float64) bool {
	return (a.X < 0 && c.X < 0) || (a.Y < 0 && c.Y < 0) ||
		(a.X >= w && c.X >= w) || (a.Y >= h && c.Y >= h)
}
