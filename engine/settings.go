package engine

import "github.com/lixenwraith/penalty-shootout/constants"

// SpawnSettings controls obstacle scattering
type SpawnSettings struct {
	Count         int
	Radius        float64
	MinSeparation float64
	MinX, MaxX    float64
	MinY, MaxY    float64
	MaxAttempts   int
}

// Settings is the full, read-only tuning of one game
type Settings struct {
	Width, Height float64
	Lives         int

	// Goal mouth: ball centre above GoalLineY with GoalLeft < x < GoalRight
	GoalLineY float64
	GoalLeft  float64
	GoalRight float64

	BallRadius   float64
	LaunchSpeed  float64
	FollowOffset float64
	ServeSpreadX float64
	ServeSpeedY  float64

	KeeperY      float64
	KeeperSpeed  float64
	KeeperRadius float64
	KeeperMinX   float64
	KeeperMaxX   float64

	ShooterWidth   float64
	ShooterHeight  float64
	ShooterSpeed   float64
	ShooterYOffset float64
	KickFrames     int

	Obstacles SpawnSettings
	Policy    Policy
}

// DefaultSettings returns the classic 600x700 field under the penalty policy
func DefaultSettings() Settings {
	w, h := constants.FieldWidth, constants.FieldHeight
	mouth := w * constants.GoalMouthFraction
	goalLeft := (w - mouth) / 2

	return Settings{
		Width:  w,
		Height: h,
		Lives:  constants.InitialLives,

		GoalLineY: constants.GoalLineY,
		GoalLeft:  goalLeft,
		GoalRight: goalLeft + mouth,

		BallRadius:   constants.BallRadius,
		LaunchSpeed:  constants.BallLaunchSpeed,
		FollowOffset: constants.BallFollowOffset,
		ServeSpreadX: constants.BallServeSpreadX,
		ServeSpeedY:  constants.BallServeSpeedY,

		KeeperY:      constants.GoalkeeperY,
		KeeperSpeed:  constants.GoalkeeperSpeed,
		KeeperRadius: constants.GoalkeeperRadius,
		KeeperMinX:   goalLeft + constants.GoalkeeperRadius,
		KeeperMaxX:   goalLeft + mouth - constants.GoalkeeperRadius,

		ShooterWidth:   constants.ShooterWidth,
		ShooterHeight:  constants.ShooterHeight,
		ShooterSpeed:   constants.ShooterSpeed,
		ShooterYOffset: constants.ShooterYOffset,
		KickFrames:     constants.KickFrames,

		Obstacles: SpawnSettings{
			Count:         constants.ObstacleCount,
			Radius:        constants.ObstacleRadius,
			MinSeparation: constants.ObstacleMinSeparation,
			MinX:          constants.ObstacleMarginX,
			MaxX:          w - constants.ObstacleMarginX,
			MinY:          constants.ObstacleMinY,
			MaxY:          constants.ObstacleMaxY,
			MaxAttempts:   constants.ObstacleMaxAttempts,
		},
		Policy: PolicyPenalty,
	}
}
