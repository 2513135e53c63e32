package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, q
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Shooter movement
	IntentMoveLeft  // Left arrow, h, a
	IntentMoveRight // Right arrow, l, d

	// Game commands forwarded to engine.Game.KeyPress
	IntentBegin       // Space
	IntentRestart     // r
	IntentTogglePause // p

	// Pointer
	IntentPointer // Left mouse button
)

// Intent is one decoded input event
type Intent struct {
	Type IntentType
	// Key is the rune passed to engine.Game.KeyPress for command intents
	Key rune
	// X, Y are the screen cell for IntentPointer
	X, Y int
}
