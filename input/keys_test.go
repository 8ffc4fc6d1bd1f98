package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/input"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Key
	}{
		{"lower w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), input.KeyW},
		{"upper W folds", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), input.KeyW},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), input.KeyA},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), input.KeyS},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), input.KeyD},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.KeyQ},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), input.KeyR},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.KeyEscape},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.KeyCtrlC},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.KeyNone},
		{"alt rune ignored", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModAlt), input.KeyNone},
		{"enter ignored", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := input.Translate(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKeyByName(t *testing.T) {
	for _, name := range []string{"w", "a", "s", "d", "up", "down", "left", "right", "escape", "q", "r", "ctrl_c"} {
		k, ok := input.KeyByName(name)
		if !ok {
			t.Errorf("Expected key name %q to resolve", name)
			continue
		}
		if k.String() != name {
			t.Errorf("Expected round trip for %q, got %q", name, k.String())
		}
	}

	if k, ok := input.KeyByName(" ESC "); !ok || k != input.KeyEscape {
		t.Errorf("Expected alias esc to resolve to escape, got %v %v", k, ok)
	}
	if _, ok := input.KeyByName("f13"); ok {
		t.Error("Expected unknown key name to fail")
	}
}
