// Package platformer implements a side-scrolling platformer simulation.
// The player runs and jumps across static platforms, collects coins and
// power-ups and dodges patrolling hazards before the countdown runs out.
//
// The package is pure: it performs no I/O besides loading its tuning file in
// New, knows nothing about terminals, and advances only when the caller
// steps it.
package platformer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Options configures a Game.
type Options struct {
	ConfigPath string                  // Tuning file; empty uses the search path
	Difficulty config.DifficultyPreset // Empty keeps the loaded difficulty
	Config     *config.PlatformerConfig
	Audio      core.AudioSink
}

// Game owns the world and the state of one level and advances them in fixed
// steps.
type Game struct {
	level      Level
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager
	audio      core.AudioSink
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	world    World
	player   *Entity
	coins    []*Entity
	powerUps []*Entity
	hazards  []*Entity

	state        State
	hazardDamage int
	tick         uint64
	events       []core.Event
}

// New validates the level, loads the tuning and resets the game with the
// default runtime config. Invalid levels or tuning are reported here, before
// any tick runs.
func New(level Level, opts Options) (*Game, error) {
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", level.ID, err)
	}

	var cfg config.PlatformerConfig
	if opts.Config != nil {
		cfg = *opts.Config
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid platformer config: %w", err)
		}
	} else {
		var err error
		cfg, err = config.LoadPlatformer(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
	}
	config.ApplyPlatformerPreset(&cfg, opts.Difficulty)

	g := &Game{
		level:      level,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		audio:      opts.Audio,
	}
	if err := g.Reset(core.DefaultConfig()); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level's display name.
func (g *Game) Title() string {
	return g.level.Name
}

// Level returns the level the game was built from.
func (g *Game) Level() Level {
	return g.level
}

// SetAudioSink replaces the audio sink; nil silences the game.
func (g *Game) SetAudioSink(a core.AudioSink) {
	g.audio = a
}

// Reset rebuilds every entity from the level data and restarts the clock.
// The seed in runtime drives hazard speeds, so equal seeds give equal runs.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	if err := runtime.Validate(); err != nil {
		return fmt.Errorf("reset %s: %w", g.level.ID, err)
	}

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.events = nil
	g.state = newState(g.level.TimeLimit)
	g.hazardDamage = g.difficulty.Damage(g.cfg.Hazard.Damage, 0, 0)
	g.build()
	return nil
}

// Step advances the game by one tick of 1/TickRate seconds.
// Pause toggles on a fresh pause press; a paused game does not advance.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.JustPressed(core.ActionPause) && !g.state.GameOver {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return core.StepResult{State: g.State()}
	}
	return g.Advance(g.runtime.StepDuration(), in)
}

// Advance runs one simulation tick of dt seconds: integrate bodies, resolve
// collisions, apply input, then advance timers and check for time up.
// A negative or NaN dt is a programming error and panics.
func (g *Game) Advance(dt float64, in core.InputFrame) core.StepResult {
	if dt < 0 || math.IsNaN(dt) {
		panic(fmt.Sprintf("platformer: invalid time step %v", dt))
	}

	g.tick++
	g.events = nil

	g.clearContacts()
	g.integrate(dt)
	g.resolveCollisions()
	g.applyInput(in)
	g.advanceTimers(dt)

	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the platform-facing summary of the run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Paused:   g.state.Paused,
	}
}

// Stats returns the current run summary.
func (g *Game) Stats() core.RunStats {
	return core.RunStats{
		LevelID: g.level.ID,
		Score:   g.state.Score,
		Coins:   g.state.CoinsCollected,
		Defeats: g.state.Defeats,
		Elapsed: math.Min(g.state.Clock, g.state.TimeLimit),
		TimeUp:  g.state.Phase == PhaseTimeUp,
	}
}

func (g *Game) dynamic() [][]*Entity {
	return [][]*Entity{{g.player}, g.coins, g.powerUps, g.hazards}
}

func (g *Game) clearContacts() {
	for _, group := range g.dynamic() {
		for _, e := range group {
			e.Body.Touching = Touching{}
		}
	}
}

func (g *Game) integrate(dt float64) {
	for _, group := range g.dynamic() {
		for _, e := range group {
			if e.Alive {
				Integrate(&e.Body, dt, g.world.Bounds)
			}
		}
	}
}

func (g *Game) resolveCollisions() {
	player := []*Entity{g.player}

	CollideStatic(player, g.world.Platforms, nil)
	CollideStatic(player, g.world.Walls, nil)
	CollideStatic(g.coins, g.world.Platforms, nil)
	CollideStatic(g.coins, g.world.Walls, nil)
	Overlap(g.player, g.coins, g.collectCoin)
	Overlap(g.player, g.powerUps, g.collectPowerUp)
	CollideStatic(g.hazards, g.world.Platforms, func(h, p *Entity, c Contact) {
		if c.Landed {
			Patrol(h, p)
		}
	})
	CollideStatic(g.hazards, g.world.Walls, nil)
	Overlap(g.player, g.hazards, g.touchHazard)
}

func (g *Game) advanceTimers(dt float64) {
	g.state.Clock += dt

	if g.state.PowerUp.Fire(g.state.Clock) {
		g.expirePowerUp()
	}

	if g.difficulty.Progressive() {
		g.rescaleHazards()
	}

	if g.state.Phase == PhasePlaying && g.state.Clock >= g.state.TimeLimit {
		g.timeUp()
	}
}

// rescaleHazards applies the current difficulty level to hazard speed and
// contact damage, keeping each hazard's direction.
func (g *Game) rescaleHazards() {
	g.hazardDamage = g.difficulty.Damage(g.cfg.Hazard.Damage, g.state.Score, g.tick)
	for _, h := range g.hazards {
		if !h.Alive {
			continue
		}
		speed := g.difficulty.Speed(h.Hazard.BaseSpeed, g.state.Score, g.tick)
		h.Body.Vel.X = float64(h.Direction()) * speed
	}
}

func (g *Game) emit(kind core.EventKind, entityID int, sound core.Sound) {
	g.events = append(g.events, core.Event{
		Kind:     kind,
		Tick:     g.tick,
		EntityID: entityID,
		Sound:    sound,
	})
	if sound != "" && g.audio != nil {
		g.audio.Play(sound)
	}
}
