package components

import "github.com/lixenwraith/penalty-shootout/vmath"

// Obstacle is a static circle destroyed when the ball hits it
type Obstacle struct {
	Position vmath.Vec2
	Radius   float64
}

// NewObstacle creates an obstacle at (x, y)
func NewObstacle(x, y, radius float64) Obstacle {
	return Obstacle{Position: vmath.V(x, y), Radius: radius}
}
