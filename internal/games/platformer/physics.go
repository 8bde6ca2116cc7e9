package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Integrate advances one body by dt seconds: gravity is added to the
// vertical velocity, the position moves by the new velocity, and bodies
// that collide with the world bounds are clamped back inside.
//
// A clamped axis stops. Only horizontal speed may reflect, scaled by
// BounceX, so patrolling bodies turn at the world edge.
// Immovable bodies are left untouched.
func Integrate(b *Body, dt float64, bounds Bounds) {
	if b.Immovable {
		return
	}

	b.Vel.Y += b.Gravity * dt
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt

	if b.CollideWorldBounds {
		clampToBounds(b, bounds)
	}
}

func clampToBounds(b *Body, bounds Bounds) {
	box := bounds.Box

	switch {
	case b.Pos.X < box.Left():
		b.Pos.X = box.Left()
		b.Touching.Left = true
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * b.BounceX
		}
	case b.Pos.X+b.W > box.Right():
		b.Pos.X = box.Right() - b.W
		b.Touching.Right = true
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X * b.BounceX
		}
	}

	switch {
	case b.Pos.Y+b.H > box.Bottom():
		b.Pos.Y = box.Bottom() - b.H
		b.Touching.Down = true
		if b.Vel.Y > 0 {
			b.Vel.Y = 0
		}
	case b.Pos.Y < box.Top():
		b.Pos.Y = box.Top()
		b.Touching.Up = true
		if b.Vel.Y < 0 {
			b.Vel.Y = 0
		}
	}
}

// keepInside moves a bounded body back inside the world after a reaction
// displaced it. Velocity is left alone.
func keepInside(b *Body, bounds Bounds) {
	if !b.CollideWorldBounds {
		return
	}
	box := bounds.Box
	b.Pos.X = core.ClampF(b.Pos.X, box.Left(), box.Right()-b.W)
	b.Pos.Y = core.ClampF(b.Pos.Y, box.Top(), box.Bottom()-b.H)
}
