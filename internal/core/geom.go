// Package core provides fundamental types and utilities for the shooter platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec is an integer (x, y) pair in screen space.
// Used both for positions (pixels) and velocities (pixels per second).
type Vec struct {
	X, Y int
}

// V creates a new vector.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect creates a rectangle of size w×h whose origin is center − size/2.
func CenteredRect(center Vec, w, h int) Rect {
	return Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ContainsInclusive returns true if p lies inside the rectangle or on any of
// its four edges, including the right and bottom ones.
func (r Rect) ContainsInclusive(p Vec) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Corners returns the four corners: top-left, top-right, bottom-left, bottom-right.
func (r Rect) Corners() [4]Vec {
	return [4]Vec{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// CornerOverlaps reports whether any corner of r lies inside other
// (inclusive edges).
//
// This is not a full intersection test: two rectangles that cross like a plus
// sign, with no corner of r inside other, are reported as not overlapping.
// Gameplay depends on exactly this behaviour.
func (r Rect) CornerOverlaps(other Rect) bool {
	for _, c := range r.Corners() {
		if other.ContainsInclusive(c) {
			return true
		}
	}
	return false
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
