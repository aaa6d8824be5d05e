package renderers

import (
	"github.com/lixenwraith/chaikin/render"
)

// CurveRenderer draws the visible generation as braille dots
type CurveRenderer struct{}

// NewCurveRenderer creates a curve renderer
func NewCurveRenderer() *CurveRenderer {
	return &CurveRenderer{}
}

// Render implements SystemRenderer
func (r *CurveRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	if len(snap.Curve) < 2 {
		return
	}
	buf.Polyline(snap.Curve, snap.CurveClosed, render.StyleCurve)
}
