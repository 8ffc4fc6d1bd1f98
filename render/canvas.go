// Package render draws game state as monochrome character cells onto a Canvas.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

// Canvas is a grid of character cells; writes outside Size are clipped by the implementation
type Canvas interface {
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (int, int)
	Clear()
}

var _ Canvas = (*core.Buffer)(nil)
