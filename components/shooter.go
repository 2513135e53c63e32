package components

import "github.com/lixenwraith/penalty-shootout/vmath"

// KickState is the shooter's one-shot kick animation
// Idle when Active is false; Frame counts ticks since the kick started
type KickState struct {
	Active bool
	Frame  int
}

// Shooter is the player-controlled platform at the bottom of the field
type Shooter struct {
	Position   vmath.Vec2
	Width      float64
	Height     float64
	Speed      float64
	KickFrames int
	Kick       KickState
}

// NewShooter creates an idle shooter centred at (x, y)
func NewShooter(x, y, width, height, speed float64, kickFrames int) *Shooter {
	return &Shooter{
		Position:   vmath.V(x, y),
		Width:      width,
		Height:     height,
		Speed:      speed,
		KickFrames: kickFrames,
	}
}

// Move shifts the shooter by direction*speed, clamped so it stays on a field of fieldWidth
func (s *Shooter) Move(direction int, fieldWidth float64) {
	half := s.Width / 2
	s.Position.X = vmath.Clamp(s.Position.X+float64(direction)*s.Speed, half, fieldWidth-half)
}

// Top returns the y of the shooter's top edge
func (s *Shooter) Top() float64 {
	return s.Position.Y - s.Height/2
}

// Bottom returns the y of the shooter's bottom edge
func (s *Shooter) Bottom() float64 {
	return s.Position.Y + s.Height/2
}

// Left returns the x of the shooter's left edge
func (s *Shooter) Left() float64 {
	return s.Position.X - s.Width/2
}

// Right returns the x of the shooter's right edge
func (s *Shooter) Right() float64 {
	return s.Position.X + s.Width/2
}

// KickBall (re)starts the kick animation
func (s *Shooter) KickBall() {
	s.Kick = KickState{Active: true}
}

// Kicking reports whether the kick animation is running
func (s *Shooter) Kicking() bool {
	return s.Kick.Active
}

// Tick advances the kick animation by one frame
func (s *Shooter) Tick() {
	if !s.Kick.Active {
		return
	}
	s.Kick.Frame++
	if s.Kick.Frame >= s.KickFrames {
		s.Kick = KickState{}
	}
}
