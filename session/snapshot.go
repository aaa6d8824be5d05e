package session

import "github.com/lixenwraith/chaikin/vmath"

// Snapshot is a read-only copy of everything a renderer or exporter needs
type Snapshot struct {
	Points    []vmath.Point
	Closed    bool
	Animating bool
	Step      int
	MaxSteps  int

	Curve       []vmath.Point
	CurveClosed bool

	Message    Message
	HasMessage bool
}

// Snapshot captures the session at the current clock time
func (s *Session) Snapshot() Snapshot {
	curve, curveClosed := s.Visible()
	msg, ok := s.ActiveMessage()
	return Snapshot{
		Points:      vmath.ClonePoints(s.points),
		Closed:      s.closed,
		Animating:   s.state == StateAnimating,
		Step:        s.step,
		MaxSteps:    s.opts.MaxSteps,
		Curve:       curve,
		CurveClosed: curveClosed,
		Message:     msg,
		HasMessage:  ok,
	}
}

// ModeLabel returns "CLOSED" or "OPEN"
func (s Snapshot) ModeLabel() string {
	if s.Closed {
		return "CLOSED"
	}
	return "OPEN"
}

// CurvePerimeter is the length of the visible polyline
func (s Snapshot) CurvePerimeter() float64 {
	return vmath.Perimeter(s.Curve, s.CurveClosed)
}

// CurveArea is the enclosed area of the visible polyline, 0 when open
func (s Snapshot) CurveArea() float64 {
	if !s.CurveClosed {
		return 0
	}
	return vmath.Area(s.Curve)
}
