// Package core provides the shared types of the platformer: world geometry,
// the screen buffer, input frames and simulation events. It has no external
// dependencies (especially no Bubble Tea) so game logic stays pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// AABB is an axis-aligned box in world units, anchored at its top-left corner.
type AABB struct {
	X, Y float64
	W, H float64
}

// NewAABB creates a box from its top-left corner and size.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, W: w, H: h}
}

// CenteredAABB creates a box of the given size centred on (cx, cy).
func CenteredAABB(cx, cy, w, h float64) AABB {
	return AABB{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b AABB) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b AABB) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b AABB) Bottom() float64 { return b.Y + b.H }

// Center returns the centre point of the box.
func (b AABB) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Valid reports whether the box has a finite position and a positive size.
func (b AABB) Valid() bool {
	for _, v := range []float64{b.X, b.Y, b.W, b.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.W > 0 && b.H > 0
}

// Intersects reports whether two boxes overlap with positive area.
// Boxes that only share an edge do not intersect.
func (b AABB) Intersects(o AABB) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Overlap returns the penetration depth along each axis.
// Both values are positive only when the boxes intersect.
func (b AABB) Overlap(o AABB) (dx, dy float64) {
	dx = math.Min(b.Right(), o.Right()) - math.Max(b.X, o.X)
	dy = math.Min(b.Bottom(), o.Bottom()) - math.Max(b.Y, o.Y)
	return dx, dy
}

// ContainsBox reports whether o lies entirely inside b.
func (b AABB) ContainsBox(o AABB) bool {
	return o.X >= b.X && o.Y >= b.Y && o.Right() <= b.Right() && o.Bottom() <= b.Bottom()
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
