package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Axis names the separation axis of a contact.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Contact describes how a mover was separated from an obstacle.
type Contact struct {
	Axis Axis
	// Push is the displacement applied to the mover.
	Push core.Vec2
	// Landed is set when the mover was pushed up onto the obstacle's top.
	Landed bool
}

// StaticHitFunc is called after a mover has been separated from an obstacle.
type StaticHitFunc func(mover, obstacle *Entity, c Contact)

// OverlapFunc reacts to two live entities whose boxes overlap.
type OverlapFunc func(a, b *Entity)

// Separate pushes b out of the obstacle box along the axis of minimum
// penetration. The push direction is chosen by comparing centres, so a body
// fully inside the obstacle is still pushed out. Vertical velocity into the
// obstacle is stopped; horizontal velocity is reflected by BounceX, which is
// zero for bodies that should just stop.
// Returns false when the boxes do not overlap.
func Separate(b *Body, obstacle core.AABB) (Contact, bool) {
	box := b.AABB()
	if dx, dy := box.Overlap(obstacle); dx <= 0 || dy <= 0 {
		return Contact{}, false
	}

	mc, oc := box.Center(), obstacle.Center()

	var pushX float64
	if mc.X < oc.X {
		pushX = obstacle.Left() - box.Right()
	} else {
		pushX = obstacle.Right() - box.Left()
	}

	var pushY float64
	if mc.Y < oc.Y {
		pushY = obstacle.Top() - box.Bottom()
	} else {
		pushY = obstacle.Bottom() - box.Top()
	}

	// Ties go to the vertical axis so corner landings count as landings.
	if math.Abs(pushY) <= math.Abs(pushX) {
		c := Contact{Axis: AxisY, Push: core.Vec2{Y: pushY}}
		if pushY < 0 {
			b.Pos.Y = obstacle.Top() - b.H
			b.Touching.Down = true
			c.Landed = true
			if b.Vel.Y > 0 {
				b.Vel.Y = 0
			}
		} else {
			b.Pos.Y = obstacle.Bottom()
			b.Touching.Up = true
			if b.Vel.Y < 0 {
				b.Vel.Y = 0
			}
		}
		return c, true
	}

	c := Contact{Axis: AxisX, Push: core.Vec2{X: pushX}}
	if pushX < 0 {
		b.Pos.X = obstacle.Left() - b.W
		b.Touching.Right = true
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X * b.BounceX
		}
	} else {
		b.Pos.X = obstacle.Right()
		b.Touching.Left = true
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * b.BounceX
		}
	}
	return c, true
}

// CollideStatic resolves every live mover against every obstacle, both in
// slice order (ascending ID). onHit may be nil.
func CollideStatic(movers, obstacles []*Entity, onHit StaticHitFunc) {
	for _, m := range movers {
		for _, o := range obstacles {
			if !m.Alive {
				break
			}
			c, hit := Separate(&m.Body, o.Body.AABB())
			if hit && onHit != nil {
				onHit(m, o, c)
			}
		}
	}
}

// Overlap calls react for every live member of group whose box overlaps a.
// Liveness is checked before each pair, so a reaction that kills either
// entity prevents the pairs after it. No positional correction is applied.
func Overlap(a *Entity, group []*Entity, react OverlapFunc) {
	for _, b := range group {
		if !a.Alive {
			return
		}
		if !b.Alive {
			continue
		}
		if a.Body.AABB().Intersects(b.Body.AABB()) {
			react(a, b)
		}
	}
}
