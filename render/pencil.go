package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/mattn/go-runewidth"
)

// Pencil draws onto a canvas relative to a movable origin
// Methods return the pencil so calls can be chained
type Pencil struct {
	canvas Canvas
	origin core.Point
	style  tcell.Style
}

// NewPencil creates a pencil at origin (0,0) with the default style
func NewPencil(c Canvas) *Pencil {
	return &Pencil{canvas: c, style: tcell.StyleDefault}
}

// SetOrigin moves the origin all subsequent positions are relative to
func (p *Pencil) SetOrigin(o core.Point) *Pencil {
	p.origin = o
	return p
}

// SetStyle sets the style for subsequent draws
func (p *Pencil) SetStyle(s tcell.Style) *Pencil {
	p.style = s
	return p
}

// DrawChar draws a single rune at origin+at
func (p *Pencil) DrawChar(r rune, at core.Point) *Pencil {
	pos := p.origin.Add(at)
	p.canvas.SetContent(pos.X, pos.Y, r, p.style)
	return p
}

// DrawText draws s starting at origin+at, advancing by display width
func (p *Pencil) DrawText(s string, at core.Point) *Pencil {
	pos := p.origin.Add(at)
	x := pos.X
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.canvas.SetContent(x, pos.Y, r, p.style)
		x += w
	}
	return p
}

// DrawRect outlines the rectangle whose top-left cell is origin+at and whose size is size
// Sizes below 2 in either axis draw nothing
func (p *Pencil) DrawRect(cs RectCharset, at core.Point, size core.Point) *Pencil {
	if size.X < 2 || size.Y < 2 {
		return p
	}

	left, top := at.X, at.Y
	right, bottom := at.X+size.X-1, at.Y+size.Y-1

	p.DrawChar(cs.TopLeft, core.Point{X: left, Y: top})
	p.DrawChar(cs.TopRight, core.Point{X: right, Y: top})
	p.DrawChar(cs.BottomLeft, core.Point{X: left, Y: bottom})
	p.DrawChar(cs.BottomRight, core.Point{X: right, Y: bottom})

	for x := left + 1; x < right; x++ {
		p.DrawChar(cs.Horizontal, core.Point{X: x, Y: top})
		p.DrawChar(cs.Horizontal, core.Point{X: x, Y: bottom})
	}
	for y := top + 1; y < bottom; y++ {
		p.DrawChar(cs.Vertical, core.Point{X: left, Y: y})
		p.DrawChar(cs.Vertical, core.Point{X: right, Y: y})
	}
	return p
}

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}
