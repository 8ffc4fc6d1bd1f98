package engine

import (
	"log"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// KeySource is the per-frame keyboard view the loop consumes
type KeySource interface {
	// LastKeyEvents returns discrete presses since the previous frame
	LastKeyEvents() []input.Key
	// KeysDown returns held keys, least recently pressed first
	KeysDown() []input.Key
}

// StateFactory builds a fresh game state for a grid dimension
type StateFactory func(dimension game.Position) *game.GameState

// LoopConfig wires a Loop
type LoopConfig struct {
	// Window is the terminal size captured at startup
	Window   core.Point
	Bindings *input.Bindings
	NewState StateFactory
	Renderer *render.GameRenderer
	Clock    TimeProvider
}

// Loop binds input and rendering to the game state, one call per frame
// It owns the single live GameState and replaces it wholesale on restart
type Loop struct {
	window   core.Point
	bindings *input.Bindings
	newState StateFactory
	renderer *render.GameRenderer
	fps      *FPSCounter

	state    *game.GameState
	frame    uint64
	running  bool
	restarts int
	lostSeen bool
}

// GridDimension derives the grid from the window: four fifths of each axis, floored
func GridDimension(window core.Point) game.Position {
	return window.Scale(constants.GridScaleNumerator, constants.GridScaleDenominator)
}

// NewLoop creates a loop with its first game state
func NewLoop(cfg LoopConfig) *Loop {
	if cfg.Bindings == nil {
		cfg.Bindings = input.DefaultBindings()
	}
	if cfg.NewState == nil {
		cfg.NewState = func(d game.Position) *game.GameState { return game.New(d) }
	}
	if cfg.Renderer == nil {
		cfg.Renderer = render.NewGameRenderer(cfg.Window, render.DefaultGlyphs())
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}

	l := &Loop{
		window:   cfg.Window,
		bindings: cfg.Bindings,
		newState: cfg.NewState,
		renderer: cfg.Renderer,
		fps:      NewFPSCounter(cfg.Clock),
		running:  true,
	}
	l.state = l.newState(GridDimension(l.window))
	log.Printf("game started: window=%dx%d grid=%dx%d", l.window.X, l.window.Y, l.state.Dimension.X, l.state.Dimension.Y)
	for _, a := range []input.Action{input.ActionUp, input.ActionDown, input.ActionLeft, input.ActionRight, input.ActionQuit, input.ActionRestart} {
		log.Printf("binding: %s=%v", a, l.bindings.KeysFor(a))
	}

	return l
}

// Frame processes one frame: presses, held movement keys, the tick on even frames, then render
// Returns false once quit was requested; the frame that saw the quit still renders
func (l *Loop) Frame(keys KeySource, canvas render.Canvas) bool {
	for _, k := range keys.LastKeyEvents() {
		switch l.bindings.Action(k) {
		case input.ActionQuit:
			if l.running {
				log.Printf("quit requested: key=%s score=%d", k, l.state.Score())
			}
			l.running = false
		case input.ActionRestart:
			l.Restart()
		}
	}

	// Every held key overwrites the heading; the last one checked wins
	for _, k := range keys.KeysDown() {
		if h, ok := headingFor(l.bindings.Action(k)); ok {
			l.state.SetHeading(h)
		}
	}

	l.fps.Update()

	if l.frame%constants.FramesPerTick == 0 && !l.state.Lost {
		l.state.Update()
		if l.state.Lost && !l.lostSeen {
			l.lostSeen = true
			log.Printf("game lost: %+v", l.state.Snapshot())
		}
	}
	l.frame++

	l.renderer.Render(canvas, l.state, l.fps.Count())

	return l.running
}

// Restart replaces the game state with a fresh one sized from the startup window
func (l *Loop) Restart() {
	log.Printf("restarting from: %+v", l.state.Snapshot())
	l.state = l.newState(GridDimension(l.window))
	l.lostSeen = false
	l.restarts++
	log.Printf("game restarted: count=%d", l.restarts)
}

// State returns the live game state
func (l *Loop) State() *game.GameState {
	return l.state
}

// Frames returns the number of frames processed
func (l *Loop) Frames() uint64 {
	return l.frame
}

// Running reports whether quit has not been requested
func (l *Loop) Running() bool {
	return l.running
}

// FPS returns the frame rate shown in the readout
func (l *Loop) FPS() int {
	return l.fps.Count()
}

// headingFor maps a movement action to a heading; both enums list Up, Down, Left, Right in that order
func headingFor(a input.Action) (game.Heading, bool) {
	if !a.IsMovement() {
		return 0, false
	}
	return game.Heading(a - input.ActionUp), true
}
