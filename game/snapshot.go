package game

// Snapshot is a plain copy of the observable state, for logging and tests
type Snapshot struct {
	Dimension Position
	Head      Position
	Length    int
	Heading   Heading
	Food      Position
	Lost      bool
	Segments  []Position
}

// Snapshot captures the current state
func (s *GameState) Snapshot() Snapshot {
	return Snapshot{
		Dimension: s.Dimension,
		Head:      s.Head(),
		Length:    s.Len(),
		Heading:   s.Player.Heading,
		Food:      s.Food,
		Lost:      s.Lost,
		Segments:  s.Segments(),
	}
}
