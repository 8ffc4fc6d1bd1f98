// Package game holds the snake simulation: a single mutable state advanced one tick at a time.
// It knows nothing about terminals, keys or frames.
package game

import (
	"fmt"
	"time"

	"github.com/gammazero/deque"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/vmath"
)

// Position identifies a grid cell
type Position = core.Point

// PlayerState groups the snake body with its heading
type PlayerState struct {
	// Snake is ordered head first; never empty
	Snake   deque.Deque[Position]
	Heading Heading
}

// GameState is the whole simulation. It is replaced wholesale on restart, never partially reset.
type GameState struct {
	Dimension Position
	Player    PlayerState
	Food      Position
	// Lost only ever goes from false to true
	Lost bool

	policy FoodPolicy
	rng    *vmath.FastRand
}

// Option customizes a GameState at construction
type Option func(*GameState)

// WithRand sets the generator used for food placement
func WithRand(rng *vmath.FastRand) Option {
	return func(s *GameState) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithFoodPolicy sets the food placement policy
func WithFoodPolicy(p FoodPolicy) Option {
	return func(s *GameState) {
		s.policy = p
	}
}

// ValidDimension reports whether a grid of this size has a non-empty food interior
func ValidDimension(d Position) bool {
	return d.X >= constants.MinGridDimension && d.Y >= constants.MinGridDimension
}

// New creates the initial state: a one-segment snake at the grid center heading right,
// and food in the interior. Panics when either dimension is below 3.
func New(dimension Position, opts ...Option) *GameState {
	if !ValidDimension(dimension) {
		panic(fmt.Sprintf("game: grid dimension %dx%d below minimum %d", dimension.X, dimension.Y, constants.MinGridDimension))
	}

	s := &GameState{
		Dimension: dimension,
		policy:    FoodUnchecked,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}

	s.Player.Heading = Right
	s.Player.Snake.PushFront(Position{X: dimension.X / 2, Y: dimension.Y / 2})
	s.Food = s.placeFood()

	return s
}

// Update advances the simulation by one tick. The candidate head is pushed even on a losing
// move so the final frame shows where the snake crashed. Callers stop calling after a loss,
// but nothing here prevents it.
func (s *GameState) Update() {
	candidate := s.Head().Add(s.Player.Heading.Delta())

	if s.Contains(candidate) {
		s.Lost = true
	}

	if !s.Bounds().Contains(candidate) {
		s.Lost = true
	}

	s.Player.Snake.PushFront(candidate)

	if candidate == s.Food {
		s.Food = s.placeFood()
	} else {
		s.Player.Snake.PopBack()
	}
}

// Head returns the front segment
func (s *GameState) Head() Position {
	return s.Player.Snake.Front()
}

// Len returns the number of segments
func (s *GameState) Len() int {
	return s.Player.Snake.Len()
}

// Score is the snake length
func (s *GameState) Score() int {
	return s.Player.Snake.Len()
}

// Contains reports whether any segment occupies p
func (s *GameState) Contains(p Position) bool {
	return s.Player.Snake.Index(func(seg Position) bool { return seg == p }) >= 0
}

// Segments returns a copy of the body, head first
func (s *GameState) Segments() []Position {
	n := s.Player.Snake.Len()
	out := make([]Position, n)
	for i := 0; i < n; i++ {
		out[i] = s.Player.Snake.At(i)
	}
	return out
}

// Heading returns the current heading
func (s *GameState) Heading() Heading {
	return s.Player.Heading
}

// SetHeading overwrites the heading; reversing into the body is allowed
func (s *GameState) SetHeading(h Heading) {
	s.Player.Heading = h
}

// FoodPolicy returns the placement policy the state was built with
func (s *GameState) FoodPolicy() FoodPolicy {
	return s.policy
}

// Bounds is the whole grid; the snake loses when its head leaves it
func (s *GameState) Bounds() core.Area {
	return core.Area{Width: s.Dimension.X, Height: s.Dimension.Y}
}

// Interior is the area food may be placed in: the grid minus its outer ring
func (s *GameState) Interior() core.Area {
	return s.Bounds().Inset(1)
}
