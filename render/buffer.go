package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Braille sub-cell geometry: every terminal cell holds a 2x4 dot block
const (
	DotsX = 2
	DotsY = 4

	brailleBase = 0x2800
)

// brailleBits maps dot (dx, dy) within a cell to its Unicode braille bit
var brailleBits = [DotsY][DotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer is a compositor with two layers: braille dots underneath and
// text cells on top. A cell with a rune set hides its dots.
type RenderBuffer struct {
	cells     []Cell
	dots      []uint8
	dotStyles []tcell.Style
	width     int
	height    int
}

// NewRenderBuffer creates a buffer with the specified dimensions in cells
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.dots = make([]uint8, size)
		b.dotStyles = make([]tcell.Style, size)
	} else {
		b.cells = b.cells[:size]
		b.dots = b.dots[:size]
		b.dotStyles = b.dotStyles[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions in cells
func (b *RenderBuffer) Size() (int, int) { return b.width, b.height }

// DotSize returns the buffer dimensions in braille dots
func (b *RenderBuffer) DotSize() (int, int) { return b.width * DotsX, b.height * DotsY }

// Clear resets every cell and dot
func (b *RenderBuffer) Clear() {
	clear(b.cells)
	clear(b.dots)
	for i := range b.dotStyles {
		b.dotStyles[i] = StyleCanvas
	}
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetDot lights the braille dot at dot coordinates (x, y)
func (b *RenderBuffer) SetDot(x, y int, style tcell.Style) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/DotsX, y/DotsY
	if !b.inBounds(cx, cy) {
		return
	}
	idx := cy*b.width + cx
	b.dots[idx] |= brailleBits[y%DotsY][x%DotsX]
	b.dotStyles[idx] = style
}

// Dots returns the braille bitmask of cell (x, y)
func (b *RenderBuffer) Dots(x, y int) uint8 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.dots[y*b.width+x]
}

// SetCell places a rune on the text layer
func (b *RenderBuffer) SetCell(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Cell returns the text layer content of (x, y)
func (b *RenderBuffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Text writes s starting at (x, y), clipped to the buffer; returns the column after the text
func (b *RenderBuffer) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.SetCell(x, y, r, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// Compose returns the rune and style that cell (x, y) will show
func (b *RenderBuffer) Compose(x, y int) (rune, tcell.Style) {
	if !b.inBounds(x, y) {
		return ' ', StyleCanvas
	}
	idx := y*b.width + x
	if c := b.cells[idx]; c.Rune != 0 {
		return c.Rune, c.Style
	}
	if mask := b.dots[idx]; mask != 0 {
		return rune(brailleBase + int(mask)), b.dotStyles[idx]
	}
	return ' ', StyleCanvas
}

// FlushToScreen copies the composited buffer to the screen
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r, style := b.Compose(x, y)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
