// Package session owns the live control points and the playback state of one
// demo run. Input handlers call into a Session; renderers read Snapshots.
package session

import (
	"log"
	"time"

	"github.com/lixenwraith/chaikin/chaikin"
	"github.com/lixenwraith/chaikin/vmath"
)

// MinAnimatedPoints is the smallest control polygon that gets animated
const MinAnimatedPoints = 3

// Advisory texts
const (
	MsgNoPoints = "No points to process! Please add points."
)

// State is the playback state
type State uint8

const (
	StateIdle State = iota
	StateAnimating
)

func (s State) String() string {
	if s == StateAnimating {
		return "animating"
	}
	return "idle"
}

// Action reports what a pointer press did
type Action uint8

const (
	ActionIgnored Action = iota // Press arrived while animating
	ActionAdd                   // New control point appended
	ActionGrab                  // Existing point grabbed for dragging
)

// StartResult reports what a start request did
type StartResult uint8

const (
	StartIgnored   StartResult = iota // Already animating
	StartEmpty                        // No points; advisory raised
	StartSingle                       // One point, display only
	StartLine                         // Two points, straight line only
	StartAnimating                    // Animation built and playing from step 0
	StartFailed                       // Animation could not be built
)

// Severity of an advisory message
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityError
)

// Message is a transient advisory shown over the canvas
type Message struct {
	Text     string
	Severity Severity
}

// Options configures a Session
type Options struct {
	MaxSteps        int
	Policy          chaikin.LoopPolicy
	HitRadius       float64
	MessageDuration time.Duration
	Closed          bool
}

// Tick is the outcome of one timer tick
type Tick struct {
	Step    int
	Changed bool // Step differs from the previous one
	Wrapped bool // Playback went from the final generation back to 0
}

// Session is the mutable state of one demo run
type Session struct {
	opts  Options
	clock Clock

	points []vmath.Point
	closed bool

	state State
	step  int
	anim  *chaikin.Animation

	dragging int

	message      Message
	messageUntil time.Time
}

// New creates an idle session with no points
func New(opts Options, clock Clock) *Session {
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &Session{
		opts:     opts,
		clock:    clock,
		closed:   opts.Closed,
		dragging: -1,
	}
}

// State returns the playback state
func (s *Session) State() State { return s.state }

// Step returns the displayed generation index, 0 when idle
func (s *Session) Step() int { return s.step }

// MaxSteps returns the configured final generation index
func (s *Session) MaxSteps() int { return s.opts.MaxSteps }

// Closed reports the polyline mode
func (s *Session) Closed() bool { return s.closed }

// Points returns a copy of the live control points
func (s *Session) Points() []vmath.Point { return vmath.ClonePoints(s.points) }

// PointCount returns the number of live control points
func (s *Session) PointCount() int { return len(s.points) }

// Dragging returns the grabbed point index or -1
func (s *Session) Dragging() int { return s.dragging }

// Press handles a primary-button press at pt
// An existing point within HitRadius is grabbed; otherwise pt is appended.
func (s *Session) Press(pt vmath.Point) Action {
	if s.state == StateAnimating {
		return ActionIgnored
	}

	if idx := vmath.Nearest(s.points, pt, s.opts.HitRadius); idx >= 0 {
		s.dragging = idx
		return ActionGrab
	}

	s.points = append(s.points, pt)
	log.Printf("Point %d added at (%.1f, %.1f)", len(s.points), pt.X, pt.Y)
	return ActionAdd
}

// Drag moves the grabbed point to pt; false when nothing is grabbed
func (s *Session) Drag(pt vmath.Point) bool {
	if s.dragging < 0 || s.dragging >= len(s.points) {
		return false
	}
	s.points[s.dragging] = pt
	return true
}

// Release ends any drag in progress
func (s *Session) Release() {
	s.dragging = -1
}

// Start handles an explicit start request
func (s *Session) Start() StartResult {
	if s.state == StateAnimating {
		return StartIgnored
	}

	switch len(s.points) {
	case 0:
		log.Printf("%s", MsgNoPoints)
		s.Notify(MsgNoPoints, SeverityError)
		return StartEmpty
	case 1:
		log.Printf("Only one point, displaying point only")
		return StartSingle
	case 2:
		a, b := s.points[0], s.points[1]
		log.Printf("Drawing persistent line from (%.1f, %.1f) to (%.1f, %.1f)", a.X, a.Y, b.X, b.Y)
		return StartLine
	}

	if err := s.rebuild(); err != nil {
		log.Printf("Animation build failed: %v", err)
		s.Notify(err.Error(), SeverityError)
		return StartFailed
	}
	return StartAnimating
}

// rebuild recomputes all generations from the live points and restarts at 0
func (s *Session) rebuild() error {
	anim, err := chaikin.BuildAnimation(s.points, s.closed, s.opts.MaxSteps)
	if err != nil {
		return err
	}
	s.anim = anim
	s.state = StateAnimating
	s.step = 0
	s.dragging = -1
	log.Printf("Starting Chaikin animation with %d points (%s polyline)", len(s.points), s.modeName())
	return nil
}

// Tick advances playback by one step according to the loop policy
func (s *Session) Tick() Tick {
	if s.state != StateAnimating || s.anim == nil {
		return Tick{Step: s.step}
	}

	prev := s.step
	next, wrapped := s.anim.Next(s.step, s.opts.Policy)
	s.step = next
	if wrapped {
		log.Printf("Animation restarted (%s)", s.opts.Policy)
	}
	return Tick{Step: next, Changed: next != prev, Wrapped: wrapped}
}

// ToggleClosed flips the polyline mode
// While animating with enough points the generations are rebuilt from the
// control points and playback restarts at step 0.
func (s *Session) ToggleClosed() {
	s.closed = !s.closed
	log.Printf("Polyline mode toggled. Now: %s", s.modeName())

	if s.state == StateAnimating && len(s.points) >= MinAnimatedPoints {
		if err := s.rebuild(); err != nil {
			log.Printf("Animation rebuild failed: %v", err)
			s.Stop()
		}
	}
}

// Stop returns to idle and keeps the control points
func (s *Session) Stop() {
	s.state = StateIdle
	s.step = 0
	s.anim = nil
}

// Clear stops playback and removes every point and message
func (s *Session) Clear() {
	s.Stop()
	s.points = nil
	s.dragging = -1
	s.message = Message{}
	s.messageUntil = time.Time{}
	log.Printf("Cleared all points and animation")
}

// Notify raises a transient message for MessageDuration
func (s *Session) Notify(text string, severity Severity) {
	s.message = Message{Text: text, Severity: severity}
	s.messageUntil = s.clock.Now().Add(s.opts.MessageDuration)
}

// ActiveMessage returns the current advisory, if it has not expired
func (s *Session) ActiveMessage() (Message, bool) {
	if s.message.Text == "" {
		return Message{}, false
	}
	if !s.clock.Now().Before(s.messageUntil) {
		s.message = Message{}
		return Message{}, false
	}
	return s.message, true
}

// Visible returns the polyline that should be drawn now and whether to close it
// While animating it is the current generation; idle with exactly two points
// it is the straight control segment; otherwise nil.
func (s *Session) Visible() ([]vmath.Point, bool) {
	if s.state == StateAnimating && s.anim != nil {
		return s.anim.Generation(s.step), s.anim.Closed()
	}
	if len(s.points) == 2 {
		return vmath.ClonePoints(s.points), false
	}
	return nil, false
}

func (s *Session) modeName() string {
	if s.closed {
		return "closed"
	}
	return "open"
}
