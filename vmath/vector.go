package vmath

import "math"

// Vec2 is a 2D vector in field units
type Vec2 struct {
	X, Y float64
}

// V returns a Vec2 from components
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Magnitude returns Euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns unit vector, zero-safe
// Zero, NaN and infinite inputs return fallback unchanged
func (v Vec2) Normalize(fallback Vec2) Vec2 {
	mag := v.Magnitude()
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return fallback
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// Dist returns Euclidean distance between a and b
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// ReflectX returns v reflected off a vertical wall
func (v Vec2) ReflectX() Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

// ReflectY returns v reflected off a horizontal wall
func (v Vec2) ReflectY() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
