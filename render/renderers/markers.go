package renderers

import (
	"github.com/lixenwraith/chaikin/render"
)

// ControlPointRune marks a control point cell
const ControlPointRune = '●'

// MarkerRenderer draws every control point on top of the curve
type MarkerRenderer struct{}

// NewMarkerRenderer creates a control point renderer
func NewMarkerRenderer() *MarkerRenderer {
	return &MarkerRenderer{}
}

// Render implements SystemRenderer
func (r *MarkerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i, p := range ctx.Snapshot.Points {
		x, y := render.DotToCell(p)
		style := render.StyleControl
		if i == ctx.Dragging {
			style = render.StyleGrabbed
		}
		buf.SetCell(x, y, ControlPointRune, style)
	}
}
