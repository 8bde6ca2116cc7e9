package platformer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// groundY is the top of the ground platform in test levels.
const groundY = 575

// flatLevel is a 1000x600 world with a ground platform and nothing else.
// The player spawns standing on the ground.
func flatLevel() Level {
	return Level{
		ID:        "flat",
		Name:      "Flat",
		Width:     1000,
		Height:    600,
		TimeLimit: 180,
		Spawn:     Point{X: 100, Y: groundY - 24},
		Obstacles: []ObstaclePlacement{
			{Type: "platform-500", X: 0, Y: groundY, ScaleX: 2},
		},
	}
}

// busyLevel has ledges, walls and a row of hazards for long-running checks.
func busyLevel() Level {
	lvl := flatLevel()
	lvl.ID = "busy"
	lvl.Obstacles = append(lvl.Obstacles,
		ObstaclePlacement{Type: "platform-100", X: 200, Y: 500},
		ObstaclePlacement{Type: "platform-200", X: 400, Y: 400},
		ObstaclePlacement{Type: "platform-50", X: 700, Y: 300},
		ObstaclePlacement{Type: "wall-50", X: 350, Y: 525},
		ObstaclePlacement{Type: "wall-150", X: 800, Y: 425},
	)
	lvl.Coins = []Point{{X: 250, Y: 0}, {X: 450, Y: 100}, {X: 725, Y: 0}, {X: 900, Y: 0}}
	lvl.PowerUps = []Point{{X: 500, Y: 350}}
	lvl.Hazards = HazardRow{Count: 4, Spacing: 200, OffsetX: 150, Y: 16, MinSpeed: 100, MaxSpeed: 150}
	return lvl
}

func testConfig() *config.PlatformerConfig {
	cfg := config.DefaultPlatformerConfig()
	return &cfg
}

func newTestGame(t *testing.T, lvl Level) *Game {
	t.Helper()
	return newTestGameWithConfig(t, lvl, testConfig())
}

func newTestGameWithConfig(t *testing.T, lvl Level, cfg *config.PlatformerConfig) *Game {
	t.Helper()
	g, err := New(lvl, Options{Config: cfg})
	require.NoError(t, err)
	return g
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func pressed(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// recordingSink collects played sounds.
type recordingSink struct {
	played []core.Sound
}

func (r *recordingSink) Play(s core.Sound) {
	r.played = append(r.played, s)
}
