package platformer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func obstacle(id int, x, y, w, h float64) *Entity {
	return &Entity{
		ID:       id,
		Kind:     KindObstacle,
		Alive:    true,
		Body:     Body{Pos: core.Vec2{X: x, Y: y}, W: w, H: h, Immovable: true},
		Obstacle: &ObstacleInfo{Class: ClassPlatform},
	}
}

func mover(id int, x, y, w, h float64) *Entity {
	return &Entity{ID: id, Kind: KindCoin, Alive: true, Body: Body{Pos: core.Vec2{X: x, Y: y}, W: w, H: h}}
}

func TestSeparateLanding(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 110, Y: 255}, Vel: core.Vec2{X: 100, Y: 300}, W: 32, H: 48}
	platform := core.NewAABB(100, 300, 100, 25)

	c, hit := Separate(&b, platform)

	require.True(t, hit)
	assert.Equal(t, AxisY, c.Axis)
	assert.True(t, c.Landed)
	assert.True(t, b.Touching.Down)
	assert.Equal(t, 300.0, b.AABB().Bottom())
	assert.Equal(t, 0.0, b.Vel.Y)
	assert.Equal(t, 100.0, b.Vel.X, "landing must not touch horizontal speed")
}

func TestSeparateLandingNeverBounces(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 110, Y: 270}, Vel: core.Vec2{X: 120, Y: 200}, W: 32, H: 32, BounceX: 1}
	_, hit := Separate(&b, core.NewAABB(100, 300, 100, 25))
	require.True(t, hit)
	assert.True(t, b.Touching.Down)
	assert.Equal(t, 0.0, b.Vel.Y)
	assert.Equal(t, 120.0, b.Vel.X)
}

func TestSeparateSideHit(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 495, Y: 527}, Vel: core.Vec2{X: 300}, W: 32, H: 48}
	wall := core.NewAABB(525, 525, 25, 50)

	c, hit := Separate(&b, wall)

	require.True(t, hit)
	assert.Equal(t, AxisX, c.Axis)
	assert.False(t, c.Landed)
	assert.True(t, b.Touching.Right)
	assert.Equal(t, 525.0, b.AABB().Right())
	assert.Equal(t, 0.0, b.Vel.X)
}

func TestSeparateSideReflectsBouncingBody(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 545, Y: 540}, Vel: core.Vec2{X: -120}, W: 32, H: 32, BounceX: 1}
	_, hit := Separate(&b, core.NewAABB(525, 525, 25, 50))
	require.True(t, hit)
	assert.True(t, b.Touching.Left)
	assert.Equal(t, 550.0, b.Pos.X)
	assert.Equal(t, 120.0, b.Vel.X)
}

func TestSeparateCeiling(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 110, Y: 320}, Vel: core.Vec2{Y: -400}, W: 32, H: 48}
	_, hit := Separate(&b, core.NewAABB(100, 300, 100, 25))
	require.True(t, hit)
	assert.True(t, b.Touching.Up)
	assert.Equal(t, 325.0, b.Pos.Y)
	assert.Equal(t, 0.0, b.Vel.Y)
}

func TestSeparateNoOverlap(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 0, Y: 0}, W: 10, H: 10}
	_, hit := Separate(&b, core.NewAABB(10, 0, 10, 10))
	assert.False(t, hit)
	assert.Equal(t, core.Vec2{}, b.Pos)
}

func TestSeparateEnclosedBody(t *testing.T) {
	b := Body{Pos: core.Vec2{X: 40, Y: 40}, W: 10, H: 10}
	big := core.NewAABB(0, 0, 100, 100)

	_, hit := Separate(&b, big)

	require.True(t, hit)
	assert.False(t, b.AABB().Intersects(big))
}

// After one static pass a mover never overlaps the obstacle it was resolved
// against by more than a rounding error.
func TestSeparateAlwaysResolves(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const eps = 1e-9

	for i := 0; i < 5000; i++ {
		obs := core.NewAABB(rng.Float64()*500, rng.Float64()*500, 1+rng.Float64()*300, 1+rng.Float64()*300)
		b := Body{
			Pos: core.Vec2{X: obs.X - 40 + rng.Float64()*(obs.W+40), Y: obs.Y - 40 + rng.Float64()*(obs.H+40)},
			Vel: core.Vec2{X: (rng.Float64() - 0.5) * 1000, Y: (rng.Float64() - 0.5) * 1000},
			W:   1 + rng.Float64()*60,
			H:   1 + rng.Float64()*60,
		}

		Separate(&b, obs)

		dx, dy := b.AABB().Overlap(obs)
		assert.LessOrEqualf(t, math.Min(dx, dy), eps, "case %d: still overlapping %v / %v", i, b.AABB(), obs)
	}
}

func TestCollideStaticOrder(t *testing.T) {
	obstacles := []*Entity{
		obstacle(1, 0, 100, 100, 25),
		obstacle(2, 50, 100, 100, 25),
		obstacle(3, 500, 100, 100, 25),
	}
	movers := []*Entity{mover(10, 60, 80, 20, 30), mover(11, 0, 0, 5, 5)}

	var hits [][2]int
	CollideStatic(movers, obstacles, func(m, o *Entity, c Contact) {
		hits = append(hits, [2]int{m.ID, o.ID})
		assert.True(t, c.Landed)
	})

	assert.Equal(t, [][2]int{{10, 1}}, hits, "after the first push-out the mover rests on both and touches neither")
	assert.Equal(t, 100.0, movers[0].Body.AABB().Bottom())
}

func TestCollideStaticSkipsDeadMovers(t *testing.T) {
	dead := mover(5, 10, 90, 20, 20)
	dead.Alive = false

	CollideStatic([]*Entity{dead}, []*Entity{obstacle(1, 0, 100, 100, 25)}, func(_, _ *Entity, _ Contact) {
		t.Fatal("dead mover must not collide")
	})
	assert.Equal(t, 90.0, dead.Body.Pos.Y)
}

func TestOverlapReactionKillsStopsLaterPairs(t *testing.T) {
	a := mover(1, 0, 0, 50, 50)
	group := []*Entity{mover(2, 10, 10, 5, 5), mover(3, 20, 20, 5, 5), mover(4, 200, 200, 5, 5)}
	group[0].Alive = false

	var seen []int
	Overlap(a, group, func(_, b *Entity) {
		seen = append(seen, b.ID)
		b.kill()
	})
	assert.Equal(t, []int{3}, seen)

	// A reaction killing the subject ends the pass.
	group = []*Entity{mover(5, 10, 10, 5, 5), mover(6, 20, 20, 5, 5)}
	seen = nil
	Overlap(a, group, func(a, b *Entity) {
		seen = append(seen, b.ID)
		a.kill()
	})
	assert.Equal(t, []int{5}, seen)
}
