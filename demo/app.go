// Package demo drives the interactive terminal session: it turns tcell mouse
// and key events into session operations, advances playback on a ticker and
// redraws through the render orchestrator.
package demo

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaikin/config"
	"github.com/lixenwraith/chaikin/export"
	"github.com/lixenwraith/chaikin/render"
	"github.com/lixenwraith/chaikin/render/renderers"
	"github.com/lixenwraith/chaikin/session"
)

// UIRefreshInterval redraws often enough for advisories to disappear on time
const UIRefreshInterval = 100 * time.Millisecond

// Sound is the subset of the audio manager the demo calls
type Sound interface {
	PlayStep(step, maxSteps int)
	PlayError()
}

type silent struct{}

func (silent) PlayStep(int, int) {}
func (silent) PlayError()        {}

// App owns the screen, the session and everything drawn from it
type App struct {
	screen       tcell.Screen
	cfg          *config.Config
	clock        session.Clock
	session      *session.Session
	orchestrator *render.RenderOrchestrator
	help         *renderers.HelpRenderer
	sound        Sound

	width, height int
	prevButtons   tcell.ButtonMask

	// restartTicker is signalled when playback (re)starts at step 0
	restartTicker bool

	crashHandler func(any)
}

// New wires an App onto an initialized screen
// A nil clock uses the system time; a nil sound plays nothing.
func New(screen tcell.Screen, cfg *config.Config, clock session.Clock, sound Sound) (*App, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = session.NewTimeProvider()
	}
	if sound == nil {
		sound = silent{}
	}

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.SetStyle(render.StyleCanvas)
	screen.HideCursor()

	s := session.New(session.Options{
		MaxSteps:        cfg.MaxSteps,
		Policy:          policy,
		HitRadius:       cfg.HitRadius,
		MessageDuration: cfg.MessageDuration,
		Closed:          cfg.StartClosed,
	}, clock)

	orchestrator := render.NewRenderOrchestrator(screen)
	help := renderers.RegisterDefaults(orchestrator)

	a := &App{
		screen:       screen,
		cfg:          cfg,
		clock:        clock,
		session:      s,
		orchestrator: orchestrator,
		help:         help,
		sound:        sound,
	}
	a.width, a.height = screen.Size()
	return a, nil
}

// SetCrashHandler installs the recovery hook for the event poller goroutine
// Keeps terminal restoration in the caller, which owns the process exit.
func (a *App) SetCrashHandler(h func(any)) {
	a.crashHandler = h
}

// Session exposes the underlying session
func (a *App) Session() *session.Session { return a.session }

// Run processes events and ticks until the user quits
func (a *App) Run() {
	stepTicker := time.NewTicker(a.cfg.StepInterval)
	defer stepTicker.Stop()
	uiTicker := time.NewTicker(UIRefreshInterval)
	defer uiTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if a.crashHandler == nil {
					panic(r)
				}
				a.crashHandler(r)
			}
		}()

		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return
			}
			if a.restartTicker {
				stepTicker.Reset(a.cfg.StepInterval)
				a.restartTicker = false
			}
			a.Draw()

		case <-stepTicker.C:
			if a.Step() {
				a.Draw()
			}

		case <-uiTicker.C:
			a.Draw()
		}
	}
}

// Step advances playback one generation; true when the visible curve changed
func (a *App) Step() bool {
	tick := a.session.Tick()
	if tick.Changed {
		a.sound.PlayStep(tick.Step, a.session.MaxSteps())
	}
	return tick.Changed
}

// Draw renders one frame
func (a *App) Draw() {
	a.orchestrator.RenderFrame(render.NewRenderContext(a.session, a.width, a.height))
}

// HandleEvent applies one terminal event; false means quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.width, a.height = ev.Size()
		a.orchestrator.Resize(a.width, a.height)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.start()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'c', 'C':
		a.session.Clear()
	case 'l', 'L':
		a.session.ToggleClosed()
		if a.session.State() == session.StateAnimating {
			a.restartTicker = true
			a.sound.PlayStep(0, a.session.MaxSteps())
		}
	case 'r', 'R':
		a.session.Stop()
		log.Printf("Playback stopped")
	case 's', 'S':
		a.Export()
	case 'h', 'H', '?':
		a.help.Toggle()
	}
	return true
}

func (a *App) start() {
	switch a.session.Start() {
	case session.StartAnimating:
		a.restartTicker = true
		a.sound.PlayStep(0, a.session.MaxSteps())
	case session.StartEmpty, session.StartFailed:
		a.sound.PlayError()
	}
}

// handleMouse tracks button 1 transitions: down is a press, held motion a drag, up a release
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pt := render.CellToDot(x, y)

	now := ev.Buttons() & tcell.Button1
	was := a.prevButtons & tcell.Button1
	a.prevButtons = ev.Buttons()

	switch {
	case now != 0 && was == 0:
		a.session.Press(pt)
	case now != 0 && was != 0:
		a.session.Drag(pt)
	case now == 0 && was != 0:
		a.session.Release()
	}
}

// Export writes the current frame as PNG and reports the outcome as an advisory
func (a *App) Export() (string, error) {
	dotW, dotH := a.width*render.DotsX, a.height*render.DotsY
	path, err := export.Save(a.session.Snapshot(), dotW, dotH, export.Options{
		Dir:   a.cfg.ExportDir,
		Scale: a.cfg.ExportScale,
	}, a.clock.Now())
	if err != nil {
		log.Printf("Export failed: %v", err)
		a.session.Notify(fmt.Sprintf("Export failed: %v", err), session.SeverityError)
		a.sound.PlayError()
		return "", err
	}
	a.session.Notify("Saved "+path, session.SeverityInfo)
	return path, nil
}
