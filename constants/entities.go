package constants

// Obstacle generation
const (
	ObstacleCount         = 10
	ObstacleRadius        = 13.0
	ObstacleMinSeparation = 18.0

	// Scatter band
	ObstacleMarginX = 50.0
	ObstacleMinY    = 150.0
	ObstacleMaxY    = 350.0

	// ObstacleMaxAttempts bounds rejection sampling across the whole set
	ObstacleMaxAttempts = 10000
)
