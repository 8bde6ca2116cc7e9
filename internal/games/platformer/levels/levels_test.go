package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

const sampleLevel = `
id: sample
name: Sample
world: { width: 800, height: 600 }
time_limit: 30
spawn: { x: 40, y: 500 }
obstacles:
  - { type: platform-500, x: 0, y: 575, scale_x: 2 }
  - { id: 7, type: wall-50, x: 300, y: 525 }
coins:
  - { x: 100, y: 0 }
hazards: { count: 2, spacing: 100, offset_x: 400, y: 16, min_speed: 50, max_speed: 60 }
`

func writeLevel(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(sampleLevel))
	require.NoError(t, err)

	assert.Equal(t, "sample", lvl.ID)
	assert.Equal(t, 800.0, lvl.Width)
	assert.Equal(t, 30.0, lvl.TimeLimit)
	assert.Equal(t, platformer.Point{X: 40, Y: 500}, lvl.Spawn)
	require.Len(t, lvl.Obstacles, 2)
	assert.Equal(t, 2.0, lvl.Obstacles[0].ScaleX)
	assert.Equal(t, 7, lvl.Obstacles[1].ID)
	assert.Len(t, lvl.Coins, 1)
	assert.Empty(t, lvl.PowerUps)
	assert.Equal(t, 2, lvl.Hazards.Count)
	assert.NoError(t, lvl.Validate())
}

func TestParseYAMLNameDefaultsToID(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: bare\n"))
	require.NoError(t, err)
	assert.Equal(t, "bare", lvl.Name)
	assert.Zero(t, lvl.Hazards.Count)
}

func TestParseYAMLRejectsGarbage(t *testing.T) {
	_, err := ParseYAML([]byte("id: [unterminated"))
	assert.Error(t, err)
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", sampleLevel)
	writeLevel(t, dir, "nested/a.yml", `
id: another
world: { width: 400, height: 300 }
time_limit: 10
spawn: { x: 10, y: 10 }
`)
	writeLevel(t, dir, "broken.yaml", "id: broken\nworld: { width: 0, height: 10 }\ntime_limit: 5\n")
	writeLevel(t, dir, "notes.txt", "not a level")

	levels, err := NewLoader(dir).LoadAll()
	require.Len(t, levels, 2)
	assert.Equal(t, "another", levels[0].ID)
	assert.Equal(t, "sample", levels[1].ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
	assert.Contains(t, err.Error(), "DEGENERATE_AABB")
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "sample.yaml", sampleLevel)

	lvl, err := NewLoader(dir).LoadByID("sample")
	require.NoError(t, err)
	assert.Equal(t, "Sample", lvl.Name)

	_, err = NewLoader(dir).LoadByID("missing")
	assert.ErrorContains(t, err, "level not found")
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	assert.Error(t, err)
}

func builtinLevel(t *testing.T, id string) platformer.Level {
	t.Helper()
	builtins, err := Builtin()
	require.NoError(t, err)
	for _, lvl := range builtins {
		if lvl.ID == id {
			return lvl
		}
	}
	t.Fatalf("builtin level %q not found", id)
	return platformer.Level{}
}

func TestBuiltinCity(t *testing.T) {
	city := builtinLevel(t, "city")

	assert.Equal(t, 5000.0, city.Width)
	assert.Equal(t, 600.0, city.Height)
	assert.Equal(t, 180.0, city.TimeLimit)
	assert.Len(t, city.Obstacles, 20)
	assert.Len(t, city.Coins, 15)
	assert.Len(t, city.PowerUps, 2)
	assert.Equal(t, 30, city.Hazards.Count)
}

// Bounded bodies stay inside the city, top edge included, even when the
// player jumps from the highest ledge.
func TestBuiltinCityKeepsBodiesInside(t *testing.T) {
	city := builtinLevel(t, "city")
	city.Spawn = platformer.Point{X: 75, Y: 76}

	cfg := config.DefaultPlatformerConfig()
	g, err := platformer.New(city, platformer.Options{Config: &cfg})
	require.NoError(t, err)

	world := core.NewAABB(0, 0, city.Width, city.Height)
	jump := core.NewInputFrame()
	jump.Press(core.ActionJump)

	for i := 0; i < 240; i++ {
		in := core.NewInputFrame()
		if i == 0 {
			in = jump
		}
		g.Advance(1.0/60, in)

		snap := g.Snapshot()
		require.Truef(t, world.ContainsBox(snap.Player.Box), "player %+v left the world at tick %d", snap.Player.Box, i)
		for _, e := range snap.Entities {
			if e.Kind == platformer.KindHazard {
				require.Truef(t, world.ContainsBox(e.Box), "hazard %d %+v left the world at tick %d", e.ID, e.Box, i)
			}
		}
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"city", "training"} {
		assert.True(t, registry.Exists(id), id)
	}

	g, err := registry.Create("training", registry.Options{})
	require.NoError(t, err)
	assert.Equal(t, "training", g.ID())

	require.NoError(t, g.Reset(core.DefaultConfig()))
	res := g.Step(core.NewInputFrame())
	assert.False(t, res.State.GameOver)
}

func TestRegisterDir(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "sample.yaml", sampleLevel)
	writeLevel(t, dir, "clash.yaml", `
id: city
world: { width: 400, height: 300 }
time_limit: 10
spawn: { x: 10, y: 10 }
`)

	n, err := RegisterDir(dir)
	assert.Equal(t, 1, n)
	assert.ErrorContains(t, err, `"city" already registered`)
	assert.True(t, registry.Exists("sample"))
}
