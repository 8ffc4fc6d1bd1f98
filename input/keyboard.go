package input

import (
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Clock supplies the current time; engine.TimeProvider satisfies it
type Clock interface {
	Now() time.Time
}

// Keyboard collects key presses between frames and approximates held keys
// Terminals report presses and auto-repeats but never releases, so a key counts as
// held while its last press is within holdTimeout, or when it was pressed this frame
type Keyboard struct {
	clock       Clock
	holdTimeout time.Duration

	pressed  []Key
	held     map[Key]heldKey
	frameHit map[Key]bool
	seq      uint64
}

// heldKey records the latest press of a key; seq orders presses that share a timestamp
type heldKey struct {
	at  time.Time
	seq uint64
}

// NewKeyboard creates a keyboard reading time from clock
func NewKeyboard(clock Clock, holdTimeout time.Duration) *Keyboard {
	if holdTimeout < 0 {
		holdTimeout = 0
	}
	return &Keyboard{
		clock:       clock,
		holdTimeout: holdTimeout,
		held:        make(map[Key]heldKey),
		frameHit:    make(map[Key]bool),
	}
}

// Handle translates and records a terminal key event, returning the recognized key
func (k *Keyboard) Handle(ev *tcell.EventKey) Key {
	key := Translate(ev)
	if key != KeyNone {
		k.Press(key)
	}
	return key
}

// Press records a press of key at the current time
func (k *Keyboard) Press(key Key) {
	if key == KeyNone {
		return
	}
	k.pressed = append(k.pressed, key)
	k.seq++
	k.held[key] = heldKey{at: k.clock.Now(), seq: k.seq}
	k.frameHit[key] = true
}

// LastKeyEvents returns presses recorded since the last EndFrame, in arrival order
func (k *Keyboard) LastKeyEvents() []Key {
	out := make([]Key, len(k.pressed))
	copy(out, k.pressed)
	return out
}

// KeysDown returns the currently held keys, oldest press first so the most recent press is last
func (k *Keyboard) KeysDown() []Key {
	now := k.clock.Now()

	var keys []Key
	for key, h := range k.held {
		if k.frameHit[key] || now.Sub(h.at) <= k.holdTimeout {
			keys = append(keys, key)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		return k.held[keys[i]].seq < k.held[keys[j]].seq
	})
	return keys
}

// EndFrame clears the per-frame press queue and forgets keys past the hold window
func (k *Keyboard) EndFrame() {
	k.pressed = k.pressed[:0]
	clear(k.frameHit)

	now := k.clock.Now()
	for key, h := range k.held {
		if now.Sub(h.at) > k.holdTimeout {
			delete(k.held, key)
		}
	}
}
