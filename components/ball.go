package components

import "github.com/lixenwraith/penalty-shootout/vmath"

// LaunchPhase tracks whether the ball waits on the shooter or moves freely
type LaunchPhase int

const (
	PhaseArmed    LaunchPhase = iota // Stationary, follows shooter
	PhaseInFlight                    // Moving under its own velocity
)

// upField is the launch direction used when the aim vector has no length
var upField = vmath.V(0, -1)

// Ball represents the football
type Ball struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
	Phase    LaunchPhase
}

// NewBall creates an armed ball at (x, y)
func NewBall(x, y, radius float64) *Ball {
	return &Ball{
		Position: vmath.V(x, y),
		Radius:   radius,
		Phase:    PhaseArmed,
	}
}

// Armed reports whether the ball is waiting to be launched
func (b *Ball) Armed() bool {
	return b.Phase == PhaseArmed
}

// Move advances position by velocity
// With wallBounce, side-wall exits reflect velocity.x inward and clamp to the wall; returns true on bounce
// Without it, side exits are left for the out-of-bounds check
func (b *Ball) Move(width, height float64, wallBounce bool) bool {
	b.Position = b.Position.Add(b.Velocity)

	if !wallBounce {
		return false
	}

	switch {
	case b.Position.X < 0:
		b.Position.X = 0
		if b.Velocity.X < 0 {
			b.Velocity = b.Velocity.ReflectX()
		}
		return true
	case b.Position.X > width:
		b.Position.X = width
		if b.Velocity.X > 0 {
			b.Velocity = b.Velocity.ReflectX()
		}
		return true
	}
	return false
}

// OutOfBounds reports whether the ball left the playable rectangle
// Vertical exits always count; horizontal exits only when horizontal is set
func (b *Ball) OutOfBounds(width, height float64, horizontal bool) bool {
	if b.Position.Y < 0 || b.Position.Y > height {
		return true
	}
	return horizontal && (b.Position.X < 0 || b.Position.X > width)
}

// Reset places the ball at (x, y), zeroes velocity and re-arms it
func (b *Ball) Reset(x, y float64) {
	b.Position = vmath.V(x, y)
	b.Velocity = vmath.Vec2{}
	b.Phase = PhaseArmed
}

// Serve places the ball at (x, y) already in flight with velocity v
func (b *Ball) Serve(x, y float64, v vmath.Vec2) {
	b.Position = vmath.V(x, y)
	b.Velocity = v
	b.Phase = PhaseInFlight
}

// Launch sends an armed ball toward the target at the given speed
// Aiming at the ball's own position launches straight up the field
// Returns false if the ball is already in flight
func (b *Ball) Launch(targetX, targetY, speed float64) bool {
	if b.Phase != PhaseArmed {
		return false
	}
	dir := vmath.V(targetX, targetY).Sub(b.Position).Normalize(upField)
	b.Velocity = dir.Scale(speed)
	b.Phase = PhaseInFlight
	return true
}
