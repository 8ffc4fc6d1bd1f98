package constants

// Grid Sizing Constants
const (
	// GridScaleNumerator and GridScaleDenominator size the grid as a fraction of the window
	// Each axis is floored independently: 4/5 of an 81x24 window is 64x19
	GridScaleNumerator   = 4
	GridScaleDenominator = 5

	// MinGridDimension is the smallest width or height with a non-empty food interior
	MinGridDimension = 3
)

// Simulation Constants
const (
	// FramesPerTick is the number of rendered frames per logical game tick
	FramesPerTick = 2

	// FoodPlacementAttempts bounds rejection sampling before falling back to a scan
	FoodPlacementAttempts = 64
)
