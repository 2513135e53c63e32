package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the frame tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a terminal key press counts as held down
	// Terminals report repeats, not key-up, so a press is held until repeats stop
	KeyHoldWindow = 120 * time.Millisecond
)

// Canvas dimensions in field units
const (
	FieldWidth  = 600.0
	FieldHeight = 700.0
)
