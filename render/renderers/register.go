package renderers

import "github.com/lixenwraith/chaikin/render"

// RegisterDefaults installs the standard layer stack on o
// Returns the help renderer so callers can toggle it.
func RegisterDefaults(o *render.RenderOrchestrator) *HelpRenderer {
	help := NewHelpRenderer()

	rendererList := []struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}{
		{NewCurveRenderer(), render.PriorityCurve},
		{NewMarkerRenderer(), render.PriorityMarker},
		{help, render.PriorityUI},
		{NewStepRenderer(), render.PriorityUI},
		{NewMessageRenderer(), render.PriorityOverlay},
	}

	for _, def := range rendererList {
		o.Register(def.renderer, def.priority)
	}
	return help
}
