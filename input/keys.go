package input

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Key is the closed set of keys the game reacts to
type Key uint8

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyQ
	KeyR
	KeyCtrlC
)

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyW:      "w",
	KeyA:      "a",
	KeyS:      "s",
	KeyD:      "d",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyEscape: "escape",
	KeyQ:      "q",
	KeyR:      "r",
	KeyCtrlC:  "ctrl_c",
}

var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+1)
	for k, name := range keyToName {
		nameToKey[name] = k
	}
	nameToKey["esc"] = KeyEscape
}

// KeyByName resolves a config name (case-insensitive) to a Key
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "none"
}

// runeKeys maps lowercase runes to keys; uppercase input is folded
var runeKeys = map[rune]Key{
	'w': KeyW,
	'a': KeyA,
	's': KeyS,
	'd': KeyD,
	'q': KeyQ,
	'r': KeyR,
}

// Translate converts a tcell key event to a Key, KeyNone when unrecognized
func Translate(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyCtrlC:
		return KeyCtrlC
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return KeyNone
		}
		return runeKeys[unicode.ToLower(ev.Rune())]
	}
	return KeyNone
}
