package core

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell represents a single cell in the buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
}

var blankCell = Cell{Rune: ' ', Style: tcell.StyleDefault}

// Buffer is an off-screen grid of cells composed once per frame and flushed to a screen
// Only cells that changed since the last flush are written out
type Buffer struct {
	width  int
	height int
	lines  [][]Cell
	dirty  map[Point]bool
}

// NewBuffer creates a new buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{dirty: make(map[Point]bool)}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Size returns width and height
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize resizes the buffer, preserving existing content where possible
// Every cell is marked dirty afterwards
func (b *Buffer) Resize(newWidth, newHeight int) {
	if newWidth < 0 {
		newWidth = 0
	}
	if newHeight < 0 {
		newHeight = 0
	}

	newLines := make([][]Cell, newHeight)
	for y := 0; y < newHeight; y++ {
		newLines[y] = make([]Cell, newWidth)
		for x := 0; x < newWidth; x++ {
			if y < b.height && x < b.width {
				newLines[y][x] = b.lines[y][x]
			} else {
				newLines[y][x] = blankCell
			}
		}
	}

	b.width = newWidth
	b.height = newHeight
	b.lines = newLines
	b.MarkAllDirty()
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.lines[y][x], true
}

// SetCell sets the cell at the given position, marking it dirty when it changed
// Returns false for out-of-bounds positions
func (b *Buffer) SetCell(x, y int, cell Cell) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}

	if b.lines[y][x] != cell {
		b.lines[y][x] = cell
		b.dirty[Point{X: x, Y: y}] = true
	}
	return true
}

// SetContent writes a rune with style, silently clipping out-of-bounds writes
func (b *Buffer) SetContent(x, y int, r rune, style tcell.Style) {
	b.SetCell(x, y, Cell{Rune: r, Style: style})
}

// Clear blanks every cell
func (b *Buffer) Clear() {
	b.Fill(tcell.StyleDefault)
}

// Fill blanks every cell using the given style
func (b *Buffer) Fill(style tcell.Style) {
	blank := Cell{Rune: ' ', Style: style}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.SetCell(x, y, blank)
		}
	}
}

// ClearDirty clears all dirty flags
func (b *Buffer) ClearDirty() {
	b.dirty = make(map[Point]bool)
}

// MarkAllDirty forces the next flush to rewrite every cell
func (b *Buffer) MarkAllDirty() {
	b.dirty = make(map[Point]bool, b.width*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.dirty[Point{X: x, Y: y}] = true
		}
	}
}

// Line returns the runes of a row as a string
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.lines[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// FlushTo writes dirty cells to the screen and clears the dirty set
// The caller is responsible for screen.Show()
func (b *Buffer) FlushTo(screen tcell.Screen) {
	for p := range b.dirty {
		c := b.lines[p.Y][p.X]
		screen.SetContent(p.X, p.Y, c.Rune, nil, c.Style)
	}
	b.ClearDirty()
}
