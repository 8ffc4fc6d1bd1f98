package constants

import "time"

// Glyphs
const (
	// GlyphSnake is drawn for every segment, head included
	GlyphSnake = '▒'

	// GlyphFood marks the food cell
	GlyphFood = 'o'

	// BorderStyleDefault names the rectangle charset around the grid
	BorderStyleDefault = "round"
)

// Messages
const (
	FPSFormat   = "FPS: %d"
	ScoreFormat = "Score: %d"
	LoseFormat  = "You Lose! Score: %d | Press \"R\" to Restart"
)

// Frame Timing Constants
const (
	// FrameRateDefault is the rendered frames per second; ticks run at half this rate
	FrameRateDefault = 20

	// FrameRateMax caps the -fps flag and config value
	FrameRateMax = 240

	// HoldTimeoutDefault is how long a key counts as held after its last press or auto-repeat
	HoldTimeoutDefault = 120 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 100
)
