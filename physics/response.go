package physics

import "github.com/lixenwraith/penalty-shootout/components"

// BounceOffShooter reflects the ball upward and parks it on the shooter's top edge
func BounceOffShooter(b *components.Ball, s *components.Shooter) {
	b.Velocity = b.Velocity.ReflectY()
	b.Position.Y = s.Top() - b.Radius
}

// BounceOffObstacle reverses both velocity components
func BounceOffObstacle(b *components.Ball) {
	b.Velocity = b.Velocity.Scale(-1)
}

// BounceOffGoalkeeper sends a ball travelling toward goal back down the field
// Returns false when the ball is already moving away, so an overlap spanning frames reflects once
func BounceOffGoalkeeper(b *components.Ball) bool {
	if b.Velocity.Y >= 0 {
		return false
	}
	b.Velocity = b.Velocity.ReflectY()
	return true
}
