package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaikin/vmath"
)

func TestSetDotBrailleBits(t *testing.T) {
	buf := NewRenderBuffer(2, 1)

	buf.SetDot(0, 0, StyleCurve)
	if got := buf.Dots(0, 0); got != 0x01 {
		t.Errorf("Dot (0,0): got %#x, want 0x01", got)
	}

	buf.SetDot(1, 3, StyleCurve)
	if got := buf.Dots(0, 0); got != 0x81 {
		t.Errorf("Dots (0,0)+(1,3): got %#x, want 0x81", got)
	}

	// Second cell starts at dot x=2
	buf.SetDot(2, 1, StyleCurve)
	if got := buf.Dots(1, 0); got != 0x02 {
		t.Errorf("Dot (2,1) in cell 1: got %#x, want 0x02", got)
	}

	r, _ := buf.Compose(0, 0)
	if r != rune(0x2881) {
		t.Errorf("Compose: got %U, want U+2881", r)
	}
}

func TestSetDotOutOfBoundsIgnored(t *testing.T) {
	buf := NewRenderBuffer(2, 2)
	buf.SetDot(-1, 0, StyleCurve)
	buf.SetDot(0, -1, StyleCurve)
	buf.SetDot(4, 0, StyleCurve)
	buf.SetDot(0, 8, StyleCurve)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if buf.Dots(x, y) != 0 {
				t.Errorf("Cell (%d,%d) unexpectedly lit", x, y)
			}
		}
	}
}

func TestTextLayerHidesDots(t *testing.T) {
	buf := NewRenderBuffer(3, 1)
	buf.SetDot(0, 0, StyleCurve)
	buf.SetCell(0, 0, 'X', StyleHelp)

	r, style := buf.Compose(0, 0)
	if r != 'X' || style != StyleHelp {
		t.Errorf("Expected text to win over dots, got %q", r)
	}

	r, _ = buf.Compose(1, 0)
	if r != ' ' {
		t.Errorf("Expected blank cell, got %q", r)
	}
}

func TestTextClipping(t *testing.T) {
	buf := NewRenderBuffer(4, 1)
	next := buf.Text(2, 0, "abcdef", StyleHelp)

	if next != 8 {
		t.Errorf("Expected next column 8, got %d", next)
	}
	if buf.Cell(2, 0).Rune != 'a' || buf.Cell(3, 0).Rune != 'b' {
		t.Error("Visible part of text not written")
	}
	buf.Text(0, 5, "offscreen", StyleHelp)
}

func TestClearAndResize(t *testing.T) {
	buf := NewRenderBuffer(4, 2)
	buf.SetDot(1, 1, StyleCurve)
	buf.SetCell(3, 1, 'Z', StyleHelp)

	buf.Clear()
	if buf.Dots(0, 0) != 0 || buf.Cell(3, 1).Rune != 0 {
		t.Error("Clear left content behind")
	}

	buf.Resize(10, 5)
	w, h := buf.Size()
	if w != 10 || h != 5 {
		t.Errorf("Expected 10x5, got %dx%d", w, h)
	}
	dw, dh := buf.DotSize()
	if dw != 20 || dh != 20 {
		t.Errorf("Expected 20x20 dots, got %dx%d", dw, dh)
	}
}

func TestCellDotMapping(t *testing.T) {
	p := CellToDot(3, 2)
	if p != vmath.Pt(7, 10) {
		t.Errorf("CellToDot(3,2) = %v, want (7, 10)", p)
	}

	tests := []struct {
		p      vmath.Point
		cx, cy int
	}{
		{vmath.Pt(7, 10), 3, 2},
		{vmath.Pt(0, 0), 0, 0},
		{vmath.Pt(1.99, 3.99), 0, 0},
		{vmath.Pt(2, 4), 1, 1},
		{vmath.Pt(-0.5, -0.5), -1, -1},
	}
	for _, tt := range tests {
		cx, cy := DotToCell(tt.p)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("DotToCell(%v) = (%d,%d), want (%d,%d)", tt.p, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestPolylineClosedDrawsWrapSegment(t *testing.T) {
	// Triangle whose closing edge runs along the left column
	pts := []vmath.Point{vmath.Pt(0.5, 0.5), vmath.Pt(10.5, 0.5), vmath.Pt(0.5, 10.5)}

	open := NewRenderBuffer(8, 4)
	open.Polyline(pts, false, StyleCurve)
	closed := NewRenderBuffer(8, 4)
	closed.Polyline(pts, true, StyleCurve)

	// Dot (0, 6) lies on the closing edge only, in cell (0, 1) row 2 column 0
	if open.Dots(0, 1)&0x04 != 0 {
		t.Error("Open polyline drew the closing segment")
	}
	if closed.Dots(0, 1)&0x04 == 0 {
		t.Error("Closed polyline is missing the closing segment")
	}
}

func TestPolylineSkipsOffscreenSegments(t *testing.T) {
	buf := NewRenderBuffer(4, 4)
	buf.Polyline([]vmath.Point{vmath.Pt(-100, -100), vmath.Pt(-50, -1e9)}, false, StyleCurve)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if buf.Dots(x, y) != 0 {
				t.Fatalf("Offscreen segment lit cell (%d,%d)", x, y)
			}
		}
	}
}

func TestFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	buf := NewRenderBuffer(4, 2)
	buf.SetCell(1, 0, 'A', StyleHelp)
	buf.SetDot(0, 4, StyleCurve)
	buf.FlushToScreen(screen)
	screen.Show()

	if r, _, _, _ := screen.GetContent(1, 0); r != 'A' {
		t.Errorf("Expected 'A' at (1,0), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 1); r != rune(0x2801) {
		t.Errorf("Expected braille dot at (0,1), got %U", r)
	}
}
