package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// build creates the world and every entity from the level data.
// IDs follow the level order: obstacles, coins, power-ups, hazards, player.
func (g *Game) build() {
	lvl := g.level
	g.world = World{
		Bounds: Bounds{Box: core.NewAABB(0, 0, lvl.Width, lvl.Height)},
	}

	nextID := 1
	for _, p := range lvl.Obstacles {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}
	newID := func() int {
		id := nextID
		nextID++
		return id
	}

	for _, p := range lvl.Obstacles {
		box, t, _ := p.Box()
		id := p.ID
		if id == 0 {
			id = newID()
		}
		e := &Entity{
			ID:    id,
			Kind:  KindObstacle,
			Alive: true,
			Body: Body{
				Pos:       core.Vec2{X: box.X, Y: box.Y},
				W:         box.W,
				H:         box.H,
				Immovable: true,
			},
			Obstacle: &ObstacleInfo{Class: t.Class, Type: p.Type},
		}
		if t.Class == ClassWall {
			g.world.Walls = append(g.world.Walls, e)
		} else {
			g.world.Platforms = append(g.world.Platforms, e)
		}
	}
	sortByID(g.world.Platforms)
	sortByID(g.world.Walls)

	g.coins = g.coins[:0]
	for _, p := range lvl.Coins {
		g.coins = append(g.coins, newDynamic(newID(), KindCoin, p,
			g.cfg.Coin.Width, g.cfg.Coin.Height, g.cfg.Physics.Coin, false))
	}

	g.powerUps = g.powerUps[:0]
	for _, p := range lvl.PowerUps {
		g.powerUps = append(g.powerUps, newDynamic(newID(), KindPowerUp, p,
			g.cfg.PowerUp.Width, g.cfg.PowerUp.Height, g.cfg.Physics.PowerUp, false))
	}

	g.hazards = g.hazards[:0]
	row := lvl.Hazards
	for i := 0; i < row.Count; i++ {
		center := Point{X: row.OffsetX + float64(i)*row.Spacing, Y: row.Y}
		h := newDynamic(newID(), KindHazard, center,
			g.cfg.Hazard.Width, g.cfg.Hazard.Height, g.cfg.Physics.Hazard, true)

		speed := row.MinSpeed + g.rng.Float64()*(row.MaxSpeed-row.MinSpeed)
		h.Hazard = &HazardState{BaseSpeed: speed}
		dir := 1.0
		if g.rng.Intn(2) == 0 {
			dir = -1
		}
		h.Body.Vel.X = dir * g.difficulty.Speed(speed, 0, 0)
		g.hazards = append(g.hazards, h)
	}

	g.player = newDynamic(newID(), KindPlayer, lvl.Spawn,
		g.cfg.Player.Width, g.cfg.Player.Height, g.cfg.Physics.Player, true)
	g.player.Player = &PlayerState{
		Health:    g.cfg.Player.MaxHealth,
		MaxHealth: g.cfg.Player.MaxHealth,
		Facing:    FacingRight,
		Anim:      AnimIdle,
		Spawn:     core.Vec2{X: lvl.Spawn.X, Y: lvl.Spawn.Y},
	}
}

func newDynamic(id int, kind Kind, center Point, w, h float64, phys config.BodyPhysics, collideWorld bool) *Entity {
	box := core.CenteredAABB(center.X, center.Y, w, h)
	return &Entity{
		ID:    id,
		Kind:  kind,
		Alive: true,
		Body: Body{
			Pos:                core.Vec2{X: box.X, Y: box.Y},
			W:                  w,
			H:                  h,
			Gravity:            phys.Gravity,
			BounceX:            phys.BounceX,
			CollideWorldBounds: collideWorld,
		},
	}
}
