// Package core provides fundamental types and utilities shared by the game
// core and its presenters. It contains no presentation dependencies (no Bubble
// Tea, no Ebitengine) so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in playfield units.
// The origin is the bottom-left corner; Y grows upward.
type Rect struct {
	X, Y float64 // Bottom-left corner
	W, H float64 // Width and height, never negative
}

// NewRect creates a rectangle, clamping negative sizes to zero.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// Overlaps reports whether the two rectangles share a non-empty intersection.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Top() && other.Y < r.Top()
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Vec2 is a signed 2D vector (velocity in units per second).
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
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
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
