package renderers

import (
	"github.com/lixenwraith/chaikin/render"
	"github.com/lixenwraith/chaikin/session"
)

// messageRow places advisories just below the help block
const messageRow = 5

// MessageRenderer draws the transient advisory message
type MessageRenderer struct{}

// NewMessageRenderer creates an advisory renderer
func NewMessageRenderer() *MessageRenderer {
	return &MessageRenderer{}
}

// Render implements SystemRenderer
func (r *MessageRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	if !snap.HasMessage {
		return
	}

	style := render.StyleInfo
	if snap.Message.Severity == session.SeverityError {
		style = render.StyleError
	}
	buf.Text(2, messageRow, snap.Message.Text, style)
}
