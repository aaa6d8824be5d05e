// Package export renders the visible curve to a PNG file.
// Drawing goes through gg's software rasterizer at a fixed scale of pixels
// per terminal dot, so exported frames match the on-screen geometry.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/chaikin/session"
	"github.com/lixenwraith/chaikin/vmath"
)

var (
	ErrEmptyCanvas = errors.New("export canvas has no area")
	ErrNoPoints    = errors.New("nothing to export")
)

// Drawing constants, in dots before scaling
const (
	curveWidth   = 0.5
	markerRadius = 1.5
	labelMargin  = 4 // pixels
)

// Options controls where and how large frames are written
type Options struct {
	Dir   string
	Scale int // Pixels per dot
}

// Filename builds chaikin-<mode>-step<k>-<unix-nanos>.png
func Filename(snap session.Snapshot, now time.Time) string {
	return fmt.Sprintf("chaikin-%s-step%d-%d.png", strings.ToLower(snap.ModeLabel()), snap.Step, now.UnixNano())
}

// Label is the caption burned into the exported frame
func Label(snap session.Snapshot) string {
	if snap.Animating {
		return fmt.Sprintf("%s  step %d/%d  points %d", snap.ModeLabel(), snap.Step, snap.MaxSteps, len(snap.Curve))
	}
	return fmt.Sprintf("%s  control points %d", snap.ModeLabel(), len(snap.Points))
}

// Render draws snap onto a dotW x dotH canvas scaled by scale
func Render(snap session.Snapshot, dotW, dotH, scale int) (*image.RGBA, error) {
	if dotW <= 0 || dotH <= 0 || scale <= 0 {
		return nil, fmt.Errorf("%w: %dx%d dots at scale %d", ErrEmptyCanvas, dotW, dotH, scale)
	}
	if len(snap.Points) == 0 {
		return nil, ErrNoPoints
	}

	s := float64(scale)
	dc := gg.NewContext(dotW*scale, dotH*scale)
	defer dc.Close()

	dc.ClearWithColor(gg.Black)

	if len(snap.Curve) >= 2 {
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(curveWidth * s)
		tracePolyline(dc, snap.Curve, snap.CurveClosed, s)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("stroke curve: %w", err)
		}
	}

	dc.SetRGB(0.5, 0.5, 0.5)
	for _, p := range snap.Points {
		dc.DrawCircle(p.X*s, p.Y*s, markerRadius*s)
	}
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("fill markers: %w", err)
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}

	img := toRGBA(dc.Image())
	drawLabel(img, Label(snap))
	return img, nil
}

func tracePolyline(dc *gg.Context, pts []vmath.Point, closed bool, s float64) {
	dc.MoveTo(pts[0].X*s, pts[0].Y*s)
	for _, p := range pts[1:] {
		dc.LineTo(p.X*s, p.Y*s)
	}
	if closed {
		dc.ClosePath()
	}
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func drawLabel(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, A: 255}),
		Face: face,
		Dot:  fixed.P(labelMargin, img.Bounds().Dy()-labelMargin-face.Descent),
	}
	d.DrawString(text)
}

// Save renders snap and writes it under opts.Dir, returning the file path
func Save(snap session.Snapshot, dotW, dotH int, opts Options, now time.Time) (string, error) {
	img, err := Render(snap, dotW, dotH, opts.Scale)
	if err != nil {
		return "", err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, Filename(snap, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	log.Printf("Exported %s (%dx%d px)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return path, nil
}
