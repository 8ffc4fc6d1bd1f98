package game

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
)

// FoodPolicy selects how a new food position is chosen
type FoodPolicy uint8

const (
	// FoodUnchecked samples the interior uniformly and may land on the snake
	FoodUnchecked FoodPolicy = iota
	// FoodAvoidSnake rejects samples that overlap the snake while a free interior cell exists
	FoodAvoidSnake
)

var foodPolicyNames = map[string]FoodPolicy{
	"unchecked":   FoodUnchecked,
	"avoid_snake": FoodAvoidSnake,
}

// ParseFoodPolicy resolves a config name to a policy
func ParseFoodPolicy(name string) (FoodPolicy, error) {
	p, ok := foodPolicyNames[name]
	if !ok {
		return FoodUnchecked, fmt.Errorf("unknown food placement %q (want \"unchecked\" or \"avoid_snake\")", name)
	}
	return p, nil
}

func (p FoodPolicy) String() string {
	switch p {
	case FoodUnchecked:
		return "unchecked"
	case FoodAvoidSnake:
		return "avoid_snake"
	default:
		return "unknown"
	}
}

// sampleInterior picks x in [1, width-2] and y in [1, height-2] independently
func (s *GameState) sampleInterior() Position {
	in := s.Interior()
	return Position{
		X: s.rng.IntRange(in.X, in.X+in.Width-1),
		Y: s.rng.IntRange(in.Y, in.Y+in.Height-1),
	}
}

// placeFood returns a new food position according to the state's policy
func (s *GameState) placeFood() Position {
	p := s.sampleInterior()
	if s.policy != FoodAvoidSnake {
		return p
	}

	for i := 1; i < constants.FoodPlacementAttempts && s.Contains(p); i++ {
		p = s.sampleInterior()
	}
	if !s.Contains(p) {
		return p
	}

	// Crowded interior: take the first free cell in row-major order
	in := s.Interior()
	for y := in.Y; y < in.Y+in.Height; y++ {
		for x := in.X; x < in.X+in.Width; x++ {
			c := Position{X: x, Y: y}
			if !s.Contains(c) {
				return c
			}
		}
	}

	// Interior fully covered, nothing better exists
	return p
}
