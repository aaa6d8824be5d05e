package render

import "github.com/lixenwraith/chaikin/session"

// RenderContext is the per-frame input shared by all renderers
type RenderContext struct {
	Snapshot session.Snapshot
	Dragging int // Index of the grabbed control point, -1 when none
	Width    int
	Height   int
}

// NewRenderContext builds a frame context from the session
func NewRenderContext(s *session.Session, width, height int) RenderContext {
	return RenderContext{
		Snapshot: s.Snapshot(),
		Dragging: s.Dragging(),
		Width:    width,
		Height:   height,
	}
}
