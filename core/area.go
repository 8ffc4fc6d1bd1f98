package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale multiplies both components by num/den using integer division
func (p Point) Scale(num, den int) Point {
	return Point{X: p.X * num / den, Y: p.Y * num / den}
}

// Area represents a rectangular region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains reports whether p lies within the area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// Inset returns the area shrunk by n cells on every side
// Width and height never go below zero
func (a Area) Inset(n int) Area {
	w := a.Width - 2*n
	h := a.Height - 2*n
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Area{X: a.X + n, Y: a.Y + n, Width: w, Height: h}
}
