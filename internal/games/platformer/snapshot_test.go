package platformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestSnapshotContents(t *testing.T) {
	lvl := busyLevel()
	lvl.Coins = append(lvl.Coins, lvl.Spawn)
	g := newTestGame(t, lvl)

	snap := g.Snapshot()
	assert.Equal(t, 5, snap.Count(KindCoin))
	assert.Equal(t, 1, snap.Count(KindPowerUp))
	assert.Equal(t, 4, snap.Count(KindHazard))
	assert.Equal(t, 6, snap.Count(KindObstacle))
	assert.Equal(t, 1.0, snap.HealthFraction)
	assert.Equal(t, 1.0, snap.TimeLeftFraction)
	assert.True(t, snap.ShowStartPrompt)
	assert.Equal(t, core.ColorWhite, snap.Player.Tint)
	assert.Equal(t, g.player.Body.Center(), snap.Camera)

	g.Advance(dt, held(core.ActionRight))
	snap = g.Snapshot()
	assert.Equal(t, 4, snap.Count(KindCoin), "collected coins leave the snapshot")
	assert.False(t, snap.ShowStartPrompt)
	assert.Equal(t, AnimRunRight, snap.Player.Anim)
	assert.Less(t, snap.TimeLeftFraction, 1.0)
}

func TestSnapshotHashTracksState(t *testing.T) {
	g := newTestGame(t, busyLevel())
	h0 := g.Snapshot().Hash()
	assert.Equal(t, h0, g.Snapshot().Hash())

	g.Advance(dt, core.NewInputFrame())
	assert.NotEqual(t, h0, g.Snapshot().Hash())
}

func TestRender(t *testing.T) {
	g := newTestGame(t, busyLevel())
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.Row(0), "HP")
	assert.Contains(t, screen.Row(2), "jump")

	out := screen.String()
	assert.True(t, strings.ContainsRune(out, PlatformChar))
	assert.True(t, strings.ContainsRune(out, PlayerRight))

	// The ground spans the last row; the view is slightly wider than the world.
	last := screen.Row(23)
	assert.GreaterOrEqual(t, strings.Count(last, string(PlatformChar)), 75)
	assert.False(t, strings.ContainsRune(last, PlayerChar), "player must stand on the ground, not in it")
}

func TestRenderCameraFollowsPlayer(t *testing.T) {
	lvl := flatLevel()
	lvl.Width = 5000
	lvl.Obstacles[0].ScaleX = 10
	g := newTestGame(t, lvl)
	screen := core.NewScreen(80, 24)

	g.player.Body.SetCenter(core.Vec2{X: 2500, Y: lvl.Spawn.Y})
	g.Render(screen)

	// 80 columns of 12.5 units show 1000 units centred on the player.
	col := strings.IndexRune(screen.Row(21), PlayerRight)
	require.GreaterOrEqual(t, col, 0, "player not visible:\n%s", screen.String())
	assert.InDelta(t, 40, col, 2)
}

func TestRenderTimeUp(t *testing.T) {
	lvl := flatLevel()
	lvl.TimeLimit = 1
	g := newTestGame(t, lvl)
	g.Advance(1, core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "TIME UP")
	assert.Contains(t, out, MessageTimeUp)
	assert.False(t, strings.ContainsRune(out, PlayerRight), "frozen player is hidden")
}
