package renderers

import (
	"fmt"

	"github.com/lixenwraith/chaikin/render"
)

// Help lines shown at the top of the canvas
var helpLines = []string{
	"Click to add points. Drag points to move. Enter to start animation.",
	"2 points -> straight line, 3+ points -> smooth curve. C clear, L closed/open, S save PNG, R stop, Esc exit.",
}

// HelpRenderer draws instructions and the mode line
type HelpRenderer struct {
	visible bool
}

// NewHelpRenderer creates a help renderer, visible by default
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{visible: true}
}

// IsVisible implements VisibilityToggle
func (r *HelpRenderer) IsVisible() bool { return r.visible }

// Toggle flips visibility
func (r *HelpRenderer) Toggle() { r.visible = !r.visible }

// Render implements SystemRenderer
func (r *HelpRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := 0
	for _, line := range helpLines {
		buf.Text(1, y, line, render.StyleHelp)
		y++
	}
	mode := fmt.Sprintf("Mode: %s    Points: %d", ctx.Snapshot.ModeLabel(), len(ctx.Snapshot.Points))
	buf.Text(1, y, mode, render.StyleHelp)
}

// StepRenderer draws the step counter and curve metrics while animating
type StepRenderer struct{}

// NewStepRenderer creates a step counter renderer
func NewStepRenderer() *StepRenderer {
	return &StepRenderer{}
}

// Render implements SystemRenderer
func (r *StepRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	if !snap.Animating || ctx.Height < 2 {
		return
	}

	y := ctx.Height - 2
	x := buf.Text(2, y, fmt.Sprintf("Step %d / %d", snap.Step, snap.MaxSteps), render.StyleStep)

	metrics := fmt.Sprintf("   points %d  length %.1f", len(snap.Curve), snap.CurvePerimeter())
	if snap.CurveClosed {
		metrics += fmt.Sprintf("  area %.1f", snap.CurveArea())
	}
	buf.Text(x, y, metrics, render.StyleMetric)
}
