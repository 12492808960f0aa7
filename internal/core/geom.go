// Package core provides fundamental types and utilities shared by the garden
// simulation and its frontends. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Vec is a point in frontend coordinates.
type Vec struct {
	X, Y float64
}

// Box is an axis-aligned box anchored at its center, the way frontends
// position plant sprites.
type Box struct {
	X, Y float64 // Center position
	W, H float64 // Width and height
}

// NewBox creates a box centered at (x, y).
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X, Y: b.Y}
}

// TopCenter returns the middle of the top edge.
func (b Box) TopCenter() Vec {
	return Vec{X: b.X, Y: b.Y - b.H/2}
}

// BottomCenter returns the middle of the bottom edge.
func (b Box) BottomCenter() Vec {
	return Vec{X: b.X, Y: b.Y + b.H/2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b Vec, t float64) Vec {
	t = ClampF(t, 0, 1)
	return Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
