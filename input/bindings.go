package input

import (
	"fmt"
	"sort"
)

// Action is what a bound key asks the control loop to do
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit
	ActionRestart
)

// actionNames maps config section keys to actions
var actionNames = map[string]Action{
	"up":      ActionUp,
	"down":    ActionDown,
	"left":    ActionLeft,
	"right":   ActionRight,
	"quit":    ActionQuit,
	"restart": ActionRestart,
}

func (a Action) String() string {
	for name, act := range actionNames {
		if act == a {
			return name
		}
	}
	return "none"
}

// IsMovement reports whether the action steers the snake
func (a Action) IsMovement() bool {
	return a >= ActionUp && a <= ActionRight
}

// Bindings maps keys to actions; a key has at most one action
type Bindings struct {
	actions map[Key]Action
}

// DefaultBindings returns W/A/S/D plus arrows for movement, Q/Escape/Ctrl-C to quit, R to restart
func DefaultBindings() *Bindings {
	return &Bindings{actions: map[Key]Action{
		KeyW:      ActionUp,
		KeyUp:     ActionUp,
		KeyS:      ActionDown,
		KeyDown:   ActionDown,
		KeyA:      ActionLeft,
		KeyLeft:   ActionLeft,
		KeyD:      ActionRight,
		KeyRight:  ActionRight,
		KeyQ:      ActionQuit,
		KeyEscape: ActionQuit,
		KeyCtrlC:  ActionQuit,
		KeyR:      ActionRestart,
	}}
}

// LoadBindings builds bindings from action name -> key names
// Actions absent from the map keep their default keys; a listed action replaces its defaults
// An explicitly listed key wins over a default of another action
// Returns error on unknown action names, unknown key names, or a key listed under two actions
func LoadBindings(keys map[string][]string) (*Bindings, error) {
	b := DefaultBindings()
	if len(keys) == 0 {
		return b, nil
	}

	// Deterministic processing order for stable error messages
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	overridden := make(map[Action]bool)
	for _, name := range names {
		act, ok := actionNames[name]
		if !ok {
			return nil, fmt.Errorf("keys: unknown action %q", name)
		}
		overridden[act] = true
	}

	for k, act := range b.actions {
		if overridden[act] {
			delete(b.actions, k)
		}
	}

	claimed := make(map[Key]Action)
	for _, name := range names {
		act := actionNames[name]
		for _, keyName := range keys[name] {
			k, ok := KeyByName(keyName)
			if !ok {
				return nil, fmt.Errorf("keys.%s: unknown key %q", name, keyName)
			}
			if prev, dup := claimed[k]; dup && prev != act {
				return nil, fmt.Errorf("keys.%s: key %q already bound to %s", name, keyName, prev)
			}
			claimed[k] = act
			b.actions[k] = act
		}
	}

	return b, nil
}

// Action returns the action bound to k, ActionNone when unbound
func (b *Bindings) Action(k Key) Action {
	return b.actions[k]
}

// KeysFor returns the keys bound to an action, sorted for display
func (b *Bindings) KeysFor(a Action) []Key {
	var keys []Key
	for k, act := range b.actions {
		if act == a {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
