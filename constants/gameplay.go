package constants

// Rules
const (
	// InitialLives is the life count at game start and after restart
	InitialLives = 3

	// GoalLineY is the y threshold the ball must pass to score
	GoalLineY = 60.0

	// GoalMouthFraction is the goal mouth width as a fraction of field width, centred
	GoalMouthFraction = 0.5

	// KickFrames is the kick animation length in ticks
	KickFrames = 10
)

// Ball
const (
	BallRadius      = 10.0
	BallLaunchSpeed = 6.0

	// BallFollowOffset is the armed ball's height above the shooter centre
	BallFollowOffset = 15.0

	// Free-motion serve velocity: vx uniform in [-BallServeSpreadX, BallServeSpreadX]
	BallServeSpreadX = 5.0
	BallServeSpeedY  = -6.0
)

// Goalkeeper
const (
	GoalkeeperY      = 60.0
	GoalkeeperSpeed  = 2.0
	GoalkeeperRadius = 15.0
)

// Shooter
const (
	ShooterWidth   = 80.0
	ShooterHeight  = 10.0
	ShooterSpeed   = 5.0
	ShooterYOffset = 30.0 // distance from the bottom edge
)
