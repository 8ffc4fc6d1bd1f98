package engine

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/vmath"
)

// fakeKeys is a scripted KeySource
type fakeKeys struct {
	presses []input.Key
	down    []input.Key
}

func (f *fakeKeys) LastKeyEvents() []input.Key { return f.presses }
func (f *fakeKeys) KeysDown() []input.Key      { return f.down }

var testWindow = core.Point{X: 50, Y: 20}

// newTestLoop builds a loop whose states keep food in the top-left corner, away from the center row
func newTestLoop(body ...game.Position) (*Loop, *core.Buffer) {
	factory := func(d game.Position) *game.GameState {
		s := game.New(d, game.WithRand(vmath.NewFastRand(1)))
		if len(body) > 0 {
			s.Player.Snake.Clear()
			for _, p := range body {
				s.Player.Snake.PushBack(p)
			}
		}
		s.Food = game.Position{X: 1, Y: 1}
		return s
	}

	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	l := NewLoop(LoopConfig{
		Window:   testWindow,
		NewState: factory,
		Clock:    clock,
	})
	return l, core.NewBuffer(testWindow.X, testWindow.Y)
}

func TestGridDimension(t *testing.T) {
	tests := []struct {
		window core.Point
		grid   game.Position
	}{
		{core.Point{X: 80, Y: 24}, game.Position{X: 64, Y: 19}},
		{core.Point{X: 81, Y: 25}, game.Position{X: 64, Y: 20}},
		{core.Point{X: 4, Y: 4}, game.Position{X: 3, Y: 3}},
	}
	for _, tt := range tests {
		if got := GridDimension(tt.window); got != tt.grid {
			t.Errorf("Window %v: expected grid %v, got %v", tt.window, tt.grid, got)
		}
	}
}

func TestLoopInitialState(t *testing.T) {
	l, _ := newTestLoop()
	s := l.State()

	if s.Dimension != (game.Position{X: 40, Y: 16}) {
		t.Errorf("Expected grid 40x16, got %v", s.Dimension)
	}
	if s.Head() != (game.Position{X: 20, Y: 8}) {
		t.Errorf("Expected head (20,8), got %v", s.Head())
	}
	if !l.Running() {
		t.Error("Expected new loop to be running")
	}
}

func TestLoopUpdatesOnEvenFramesOnly(t *testing.T) {
	l, buf := newTestLoop()
	keys := &fakeKeys{}

	expectedX := []int{21, 21, 22, 22, 23, 23}
	for i, want := range expectedX {
		l.Frame(keys, buf)
		if got := l.State().Head().X; got != want {
			t.Errorf("Frame %d: expected head x=%d, got %d", i, want, got)
		}
	}

	if l.Frames() != uint64(len(expectedX)) {
		t.Errorf("Expected %d frames counted, got %d", len(expectedX), l.Frames())
	}
}

func TestLoopQuitKeysStopAfterRender(t *testing.T) {
	for _, k := range []input.Key{input.KeyQ, input.KeyEscape} {
		l, buf := newTestLoop()

		if l.Frame(&fakeKeys{presses: []input.Key{k}}, buf) {
			t.Errorf("Expected %v to stop the loop", k)
		}
		if l.Running() {
			t.Errorf("Expected Running false after %v", k)
		}
		// The frame that saw the quit still completed
		if !strings.HasPrefix(buf.Line(0), "FPS:") {
			t.Errorf("Expected the quitting frame to render, row 0 is %q", buf.Line(0))
		}
		if l.State().Head().X != 21 {
			t.Errorf("Expected the quitting frame to tick, head x=%d", l.State().Head().X)
		}
	}
}

func TestLoopRestartReplacesState(t *testing.T) {
	l, buf := newTestLoop()
	keys := &fakeKeys{down: []input.Key{input.KeyW}}

	// Drive the snake off the top edge
	for i := 0; i < 40 && !l.State().Lost; i++ {
		l.Frame(keys, buf)
	}
	if !l.State().Lost {
		t.Fatal("Expected the snake to leave the grid")
	}
	old := l.State()

	l.Frame(&fakeKeys{presses: []input.Key{input.KeyR}}, buf)

	s := l.State()
	if s == old {
		t.Fatal("Expected restart to replace the state object")
	}
	if s.Lost {
		t.Error("Expected fresh state not lost")
	}
	if s.Dimension != (game.Position{X: 40, Y: 16}) {
		t.Errorf("Expected restart grid sized from the startup window, got %v", s.Dimension)
	}
	// Restart happened before the tick of this frame
	if s.Len() != 1 || s.Heading() != game.Right {
		t.Errorf("Expected fresh snake heading right, got %+v", s.Snapshot())
	}
}

func TestLoopHeldKeysLastWins(t *testing.T) {
	l, buf := newTestLoop()

	l.Frame(&fakeKeys{down: []input.Key{input.KeyW}}, buf)
	if l.State().Heading() != game.Up {
		t.Errorf("Expected heading Up, got %v", l.State().Heading())
	}

	l.Frame(&fakeKeys{down: []input.Key{input.KeyA, input.KeyS}}, buf)
	if l.State().Heading() != game.Down {
		t.Errorf("Expected the last checked key to win, got %v", l.State().Heading())
	}

	// Non-movement held keys are ignored
	l.Frame(&fakeKeys{down: []input.Key{input.KeyR}}, buf)
	if l.State().Heading() != game.Down {
		t.Errorf("Expected heading unchanged by non-movement key, got %v", l.State().Heading())
	}
}

func TestLoopSameInstantPressesLaterWins(t *testing.T) {
	l, buf := newTestLoop()
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	kb := input.NewKeyboard(clock, 100*time.Millisecond)

	kb.Press(input.KeyA)
	kb.Press(input.KeyW)
	l.Frame(kb, buf)

	if l.State().Heading() != game.Up {
		t.Errorf("Expected the later press W to set Up, got %v", l.State().Heading())
	}
}

func TestLoopRepeatedHeldKeyIsIdempotent(t *testing.T) {
	once, bufA := newTestLoop()
	many, bufB := newTestLoop()

	once.Frame(&fakeKeys{down: []input.Key{input.KeyS}}, bufA)
	many.Frame(&fakeKeys{down: []input.Key{input.KeyS, input.KeyS, input.KeyS}}, bufB)

	if once.State().Heading() != many.State().Heading() || once.State().Head() != many.State().Head() {
		t.Errorf("Expected repeated key to match single key, got %+v vs %+v",
			once.State().Snapshot(), many.State().Snapshot())
	}
}

func TestLoopReverseIntoBodyLoses(t *testing.T) {
	l, buf := newTestLoop(game.Position{X: 20, Y: 8}, game.Position{X: 19, Y: 8})

	l.Frame(&fakeKeys{down: []input.Key{input.KeyA}}, buf)

	if !l.State().Lost {
		t.Error("Expected reversing into the body to lose")
	}
	if !strings.Contains(buf.Line(1), "You Lose! Score: 2") {
		t.Errorf("Expected lose message on row 1, got %q", buf.Line(1))
	}
}

func TestLoopStopsTickingAfterLoss(t *testing.T) {
	l, buf := newTestLoop(game.Position{X: 20, Y: 8}, game.Position{X: 19, Y: 8})
	l.Frame(&fakeKeys{down: []input.Key{input.KeyA}}, buf)
	if !l.State().Lost {
		t.Fatal("Expected loss")
	}
	frozen := l.State().Snapshot()

	for i := 0; i < 6; i++ {
		if !l.Frame(&fakeKeys{}, buf) {
			t.Fatal("Expected loop to keep running on the lose screen")
		}
	}

	after := l.State().Snapshot()
	if after.Head != frozen.Head || after.Length != frozen.Length {
		t.Errorf("Expected state frozen after loss, got %+v then %+v", frozen, after)
	}
	if !after.Lost {
		t.Error("Expected loss to persist")
	}
}

func TestHeadingForMapsMovementActions(t *testing.T) {
	want := map[input.Action]game.Heading{
		input.ActionUp:    game.Up,
		input.ActionDown:  game.Down,
		input.ActionLeft:  game.Left,
		input.ActionRight: game.Right,
	}
	for a, h := range want {
		got, ok := headingFor(a)
		if !ok || got != h {
			t.Errorf("Action %v: expected %v, got %v (ok=%v)", a, h, got, ok)
		}
	}
	for _, a := range []input.Action{input.ActionNone, input.ActionQuit, input.ActionRestart} {
		if _, ok := headingFor(a); ok {
			t.Errorf("Expected %v not to map to a heading", a)
		}
	}
}

func TestLoopFPSReadout(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	l := NewLoop(LoopConfig{Window: testWindow, Clock: clock})
	buf := core.NewBuffer(testWindow.X, testWindow.Y)

	for i := 0; i < 10; i++ {
		l.Frame(&fakeKeys{}, buf)
		clock.Advance(100 * time.Millisecond)
	}
	l.Frame(&fakeKeys{}, buf)

	if l.FPS() != 10 {
		t.Errorf("Expected 10 FPS after ten frames in one second, got %d", l.FPS())
	}
	if !strings.HasPrefix(buf.Line(0), "FPS: 10") {
		t.Errorf("Expected readout to match FPS(), got %q", buf.Line(0))
	}
}

func TestLoopLogsBindingsAndLossSnapshot(t *testing.T) {
	var out bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&out)
	defer log.SetOutput(prev)

	l, buf := newTestLoop(game.Position{X: 20, Y: 8}, game.Position{X: 19, Y: 8})
	if !strings.Contains(out.String(), "binding: restart=[r]") {
		t.Errorf("Expected restart binding logged at start, got %q", out.String())
	}

	l.Frame(&fakeKeys{down: []input.Key{input.KeyA}}, buf)
	if !strings.Contains(out.String(), "game lost:") || !strings.Contains(out.String(), "Lost:true") {
		t.Errorf("Expected loss snapshot logged, got %q", out.String())
	}

	l.Restart()
	if !strings.Contains(out.String(), "restarting from:") {
		t.Errorf("Expected restart snapshot logged, got %q", out.String())
	}
}
