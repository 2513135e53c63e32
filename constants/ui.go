package constants

// Overlay text
const (
	TitleText        = "Football Penalty Shootout"
	StartPromptText  = "Press SPACE to Start"
	GameOverText     = "Game Over"
	RestartPrompt    = "Press 'R' to Restart"
	PausedText       = "Paused"
	ResumePromptText = "Click or press 'P' to continue"
)

// HUD
const (
	// HUDRows is the number of terminal rows reserved below the field
	HUDRows = 1
)

// Field decoration in field units
const (
	StripeHeight       = 80.0
	CenterCircleRadius = 70.0
	PenaltyBoxDepth    = 140.0
	GoalDepth          = 20.0
)
