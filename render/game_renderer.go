package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
)

// Glyphs are the runes used to draw the board
type Glyphs struct {
	Snake  rune
	Food   rune
	Border RectCharset
}

// DefaultGlyphs returns the standard board glyphs
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Snake:  constants.GlyphSnake,
		Food:   constants.GlyphFood,
		Border: SimpleRoundLines,
	}
}

// GameRenderer draws a game state centered in a window of fixed size
// The window is the size captured at startup; layout does not follow later resizes
type GameRenderer struct {
	window core.Point
	glyphs Glyphs
	style  tcell.Style
}

// NewGameRenderer creates a renderer for the given window size
func NewGameRenderer(window core.Point, glyphs Glyphs) *GameRenderer {
	return &GameRenderer{
		window: window,
		glyphs: glyphs,
		style:  tcell.StyleDefault,
	}
}

// Render clears the canvas and draws one frame
// A lost game shows only the lose message
func (r *GameRenderer) Render(c Canvas, s *game.GameState, fps int) {
	c.Clear()
	pencil := NewPencil(c).SetStyle(r.style)

	if s.Lost {
		msg := fmt.Sprintf(constants.LoseFormat, s.Score())
		pencil.SetOrigin(r.headerOrigin(s, msg)).DrawText(msg, core.Point{})
		return
	}

	score := fmt.Sprintf(constants.ScoreFormat, s.Score())
	pencil.
		DrawText(fmt.Sprintf(constants.FPSFormat, fps), core.Point{}).
		SetOrigin(r.headerOrigin(s, score)).
		DrawText(score, core.Point{})

	pencil.
		SetOrigin(r.BoardOrigin(s)).
		DrawRect(r.glyphs.Border, core.Point{}, s.Dimension).
		DrawChar(r.glyphs.Food, s.Food)

	// Head and body share a glyph
	for i := 0; i < s.Player.Snake.Len(); i++ {
		pencil.DrawChar(r.glyphs.Snake, s.Player.Snake.At(i))
	}
}

// BoardOrigin is the window cell where grid cell (0,0) is drawn
func (r *GameRenderer) BoardOrigin(s *game.GameState) core.Point {
	return core.Point{
		X: (r.window.X - s.Dimension.X) / 2,
		Y: (r.window.Y - s.Dimension.Y) / 2,
	}
}

// headerOrigin centers text horizontally on the row above the board
func (r *GameRenderer) headerOrigin(s *game.GameState, text string) core.Point {
	return core.Point{
		X: (r.window.X - TextWidth(text)) / 2,
		Y: (r.window.Y-s.Dimension.Y)/2 - 1,
	}
}
