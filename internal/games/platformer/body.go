package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Touching records which sides of a body were blocked during the current tick.
// It is cleared at the start of every tick.
type Touching struct {
	Up, Down, Left, Right bool
}

// Body is the physical part of an entity: a box moving under velocity and
// gravity. Pos is the top-left corner in world units.
type Body struct {
	Pos     core.Vec2
	Vel     core.Vec2
	W, H    float64
	Gravity float64 // Downward acceleration, units/s²
	BounceX float64 // Fraction of horizontal speed reflected when blocked; vertical stops

	Immovable          bool // Never integrated nor pushed
	CollideWorldBounds bool

	Touching Touching
}

// AABB returns the body's current box.
func (b *Body) AABB() core.AABB {
	return core.NewAABB(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Center returns the centre of the body.
func (b *Body) Center() core.Vec2 {
	return b.AABB().Center()
}

// SetCenter moves the body so its centre sits at c.
func (b *Body) SetCenter(c core.Vec2) {
	b.Pos = core.Vec2{X: c.X - b.W/2, Y: c.Y - b.H/2}
}
