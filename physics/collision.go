package physics

import (
	"github.com/lixenwraith/penalty-shootout/components"
	"github.com/lixenwraith/penalty-shootout/vmath"
)

// Predicates only test; responses in response.go mutate

// CirclesOverlap reports whether two circles intersect (strict: touching is not a hit)
func CirclesOverlap(a vmath.Vec2, ra float64, b vmath.Vec2, rb float64) bool {
	return vmath.Dist(a, b) < ra+rb
}

// BallHitsShooter reports a downward ball whose bottom edge reached the shooter's top edge within its span
// The velocity guard keeps a receding ball from triggering again on the next frame
// A ball already past the bottom edge has slipped by and is not caught
func BallHitsShooter(b *components.Ball, s *components.Shooter) bool {
	return b.Position.Y+b.Radius >= s.Top() &&
		b.Position.Y-b.Radius <= s.Bottom() &&
		b.Position.X >= s.Left() &&
		b.Position.X <= s.Right() &&
		b.Velocity.Y > 0
}

// BallHitsObstacle reports circle overlap between ball and obstacle
func BallHitsObstacle(b *components.Ball, o components.Obstacle) bool {
	return CirclesOverlap(b.Position, b.Radius, o.Position, o.Radius)
}

// BallHitsGoalkeeper reports circle overlap between ball and keeper
func BallHitsGoalkeeper(b *components.Ball, k *components.Goalkeeper) bool {
	return CirclesOverlap(b.Position, b.Radius, k.Position, k.Radius)
}
