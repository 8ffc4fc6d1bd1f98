package render

import "fmt"

// RectCharset holds the runes used to outline a rectangle
type RectCharset struct {
	TopLeft, Horizontal, TopRight rune
	Vertical                      rune
	BottomLeft, BottomRight       rune
}

// Line styles
var (
	SimpleLines      = RectCharset{'┌', '─', '┐', '│', '└', '┘'}
	SimpleRoundLines = RectCharset{'╭', '─', '╮', '│', '╰', '╯'}
	DoubleLines      = RectCharset{'╔', '═', '╗', '║', '╚', '╝'}
	HeavyLines       = RectCharset{'┏', '━', '┓', '┃', '┗', '┛'}
)

var charsetNames = map[string]RectCharset{
	"square": SimpleLines,
	"round":  SimpleRoundLines,
	"double": DoubleLines,
	"heavy":  HeavyLines,
}

// CharsetByName resolves a config border name
func CharsetByName(name string) (RectCharset, error) {
	cs, ok := charsetNames[name]
	if !ok {
		return RectCharset{}, fmt.Errorf("unknown border style %q", name)
	}
	return cs, nil
}
