package platformer

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// PlayerView is the read-only view of the player.
type PlayerView struct {
	ID        int
	Box       core.AABB
	Vel       core.Vec2
	Facing    Facing
	Anim      Anim
	Tint      core.Color
	Alive     bool
	Health    int
	MaxHealth int
}

// EntityView is the read-only view of a non-player entity.
type EntityView struct {
	ID    int
	Kind  Kind
	Box   core.AABB
	Class ObstacleClass // Meaningful for obstacles only
}

// Snapshot is everything a renderer or UI needs for one frame.
// Dead coins and power-ups are not included.
type Snapshot struct {
	Tick  uint64
	Clock float64
	Phase Phase

	Player   PlayerView
	Entities []EntityView
	Camera   core.Vec2 // Point the view should centre on

	Score            int
	HealthFraction   float64
	TimeLeftFraction float64
	TimeLeft         float64
	PowerUpActive    bool
	PowerUpLeft      float64
	Message          Message
	ShowStartPrompt  bool
	Paused           bool
	GameOver         bool
}

// Snapshot captures the current state for presentation.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	ps := p.Player

	snap := Snapshot{
		Tick:  g.tick,
		Clock: g.state.Clock,
		Phase: g.state.Phase,
		Player: PlayerView{
			ID:        p.ID,
			Box:       p.Body.AABB(),
			Vel:       p.Body.Vel,
			Facing:    ps.Facing,
			Anim:      ps.Anim,
			Tint:      g.state.Tint,
			Alive:     p.Alive,
			Health:    ps.Health,
			MaxHealth: ps.MaxHealth,
		},
		Camera:           p.Body.Center(),
		Score:            g.state.Score,
		HealthFraction:   float64(ps.Health) / float64(ps.MaxHealth),
		TimeLeftFraction: g.state.TimeLeftFraction(),
		TimeLeft:         g.state.TimeLeft(),
		PowerUpActive:    g.state.PowerUpActive(),
		PowerUpLeft:      g.state.PowerUp.Remaining(g.state.Clock),
		Message:          g.state.Message,
		ShowStartPrompt:  !g.state.PlayerMoved && !g.state.GameOver,
		Paused:           g.state.Paused,
		GameOver:         g.state.GameOver,
	}

	for _, group := range [][]*Entity{g.world.Obstacles(), g.coins, g.powerUps, g.hazards} {
		for _, e := range group {
			if !e.Alive {
				continue
			}
			v := EntityView{ID: e.ID, Kind: e.Kind, Box: e.Body.AABB()}
			if e.Obstacle != nil {
				v.Class = e.Obstacle.Class
			}
			snap.Entities = append(snap.Entities, v)
		}
	}

	return snap
}

// Count returns the number of live entities of the given kind.
func (s Snapshot) Count(kind Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Hash returns a fingerprint of the simulation-relevant fields.
// Two runs with the same level, seed and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := hasher{d: xxhash.New()}

	h.u64(s.Tick)
	h.f64(s.Clock)
	h.u64(uint64(s.Phase))
	h.i64(int64(s.Score))
	h.box(s.Player.Box)
	h.f64(s.Player.Vel.X)
	h.f64(s.Player.Vel.Y)
	h.i64(int64(s.Player.Health))
	h.bool(s.Player.Alive)
	h.bool(s.PowerUpActive)
	h.f64(s.PowerUpLeft)

	for _, e := range s.Entities {
		h.i64(int64(e.ID))
		h.u64(uint64(e.Kind))
		h.box(e.Box)
	}

	return h.d.Sum64()
}

type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) i64(v int64) { h.u64(uint64(v)) }

func (h *hasher) f64(v float64) { h.u64(math.Float64bits(v)) }

func (h *hasher) bool(v bool) {
	if v {
		h.u64(1)
	} else {
		h.u64(0)
	}
}

func (h *hasher) box(b core.AABB) {
	h.f64(b.X)
	h.f64(b.Y)
	h.f64(b.W)
	h.f64(b.H)
}
