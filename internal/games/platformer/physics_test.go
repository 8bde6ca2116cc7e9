package platformer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func testBounds() Bounds {
	return Bounds{Box: core.NewAABB(0, 0, 1000, 600)}
}

func TestIntegrateGravityAndVelocity(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 100, Y: 100}, Vel: core.Vec2{X: 20}, W: 10, H: 10, Gravity: 100}

	Integrate(&b, 0.5, testBounds())

	assert.Equal(t, 50.0, b.Vel.Y)
	assert.Equal(t, 110.0, b.Pos.X)
	assert.Equal(t, 125.0, b.Pos.Y)
}

func TestIntegrateZeroDtKeepsPosition(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 10, Y: 10}, Vel: core.Vec2{X: 50, Y: -20}, W: 10, H: 10, Gravity: 450}
	Integrate(&b, 0, testBounds())
	assert.Equal(t, core.Vec2{X: 10, Y: 10}, b.Pos)
	assert.Equal(t, core.Vec2{X: 50, Y: -20}, b.Vel)
}

func TestIntegrateSkipsImmovable(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 10, Y: 10}, Vel: core.Vec2{X: 50}, W: 10, H: 10, Gravity: 100, Immovable: true}
	Integrate(&b, 1, testBounds())
	assert.Equal(t, core.Vec2{X: 10, Y: 10}, b.Pos)
}

func TestWorldBoundsStopAndReflect(t *testing.T) {
	t.Run("left edge stops a body without bounce", func(t *testing.T) {
		b := Body{Pos: core.Vec2{X: 2, Y: 100}, Vel: core.Vec2{X: -300}, W: 32, H: 48, CollideWorldBounds: true}
		Integrate(&b, 1.0/60, testBounds())
		assert.Equal(t, 0.0, b.Pos.X)
		assert.Equal(t, 0.0, b.Vel.X)
		assert.True(t, b.Touching.Left)
	})

	t.Run("right edge reflects a bouncing body", func(t *testing.T) {
		b := Body{Pos: core.Vec2{X: 967, Y: 100}, Vel: core.Vec2{X: 120}, W: 32, H: 32, BounceX: 1, CollideWorldBounds: true}
		Integrate(&b, 1.0/60, testBounds())
		assert.Equal(t, 968.0, b.Pos.X)
		assert.Equal(t, -120.0, b.Vel.X)
		assert.True(t, b.Touching.Right)
	})

	t.Run("bottom edge lands", func(t *testing.T) {
		b := Body{Pos: core.Vec2{X: 100, Y: 560}, Vel: core.Vec2{Y: 600}, W: 32, H: 48, CollideWorldBounds: true}
		Integrate(&b, 1.0/60, testBounds())
		assert.Equal(t, 552.0, b.Pos.Y)
		assert.Equal(t, 0.0, b.Vel.Y)
		assert.True(t, b.Touching.Down)
	})

	t.Run("bottom edge stops a bouncing body", func(t *testing.T) {
		b := Body{Pos: core.Vec2{X: 100, Y: 560}, Vel: core.Vec2{X: 120, Y: 600}, W: 32, H: 32, BounceX: 1, CollideWorldBounds: true}
		Integrate(&b, 1.0/60, testBounds())
		assert.Equal(t, 0.0, b.Vel.Y)
		assert.Equal(t, 120.0, b.Vel.X)
	})

	t.Run("top edge stops", func(t *testing.T) {
		b := Body{Pos: core.Vec2{X: 100, Y: 5}, Vel: core.Vec2{Y: -600}, W: 32, H: 32, CollideWorldBounds: true}
		Integrate(&b, 1.0/60, testBounds())
		assert.Equal(t, 0.0, b.Pos.Y)
		assert.Equal(t, 0.0, b.Vel.Y)
		assert.True(t, b.Touching.Up)
	})
}

// Whatever the velocity, a bounded body ends every integration inside the
// world on every edge.
func TestWorldBoundsContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bounds := testBounds()

	for i := 0; i < 2000; i++ {
		b := Body{
			Pos:                core.Vec2{X: rng.Float64() * 968, Y: rng.Float64() * 568},
			Vel:                core.Vec2{X: (rng.Float64() - 0.5) * 20000, Y: (rng.Float64() - 0.5) * 20000},
			W:                  32,
			H:                  32,
			Gravity:            rng.Float64() * 500,
			BounceX:            rng.Float64(),
			CollideWorldBounds: true,
		}
		Integrate(&b, 1.0/60, bounds)
		assert.Truef(t, bounds.Box.ContainsBox(b.AABB()), "body escaped: %+v", b.AABB())
	}
}
