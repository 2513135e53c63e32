package components

import "github.com/lixenwraith/penalty-shootout/vmath"

// Goalkeeper oscillates horizontally between MinX and MaxX
type Goalkeeper struct {
	Position  vmath.Vec2
	Speed     float64
	Radius    float64
	MinX      float64
	MaxX      float64
	Direction int // +1 right, -1 left
}

// NewGoalkeeper creates a keeper at (x, y) moving right
func NewGoalkeeper(x, y, speed, radius, minX, maxX float64) *Goalkeeper {
	return &Goalkeeper{
		Position:  vmath.V(x, y),
		Speed:     speed,
		Radius:    radius,
		MinX:      minX,
		MaxX:      maxX,
		Direction: 1,
	}
}

// Move steps the keeper and flips direction once a bound is crossed
// Position is clamped to the crossed bound so it never leaves [MinX, MaxX]
func (k *Goalkeeper) Move() {
	k.Position.X += k.Speed * float64(k.Direction)

	switch {
	case k.Position.X < k.MinX:
		k.Position.X = k.MinX
		k.Direction = 1
	case k.Position.X > k.MaxX:
		k.Position.X = k.MaxX
		k.Direction = -1
	}
}
