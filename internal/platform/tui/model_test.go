package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// scriptedGame ends after a fixed number of steps and records its input.
type scriptedGame struct {
	steps    int
	endAfter int
	resets   int
	frames   []core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) error {
	g.resets++
	g.steps = 0
	return nil
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.steps * 10, GameOver: g.steps >= g.endAfter}
}

func (g *scriptedGame) Stats() core.RunStats {
	return core.RunStats{LevelID: g.ID(), Score: g.steps * 10, TimeUp: g.steps >= g.endAfter}
}

func newTestModel(t *testing.T, game *scriptedGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(game, store, nil, cfg)
	m.Init()
	return m, store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{At: time.Now(), Loop: m.loop})
	return next.(Model)
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelSavesRunOnceAtGameOver(t *testing.T) {
	game := &scriptedGame{endAfter: 3}
	m, store := newTestModel(t, game)

	for range 6 {
		m = tick(t, m)
	}

	runs, err := store.TopRuns("scripted", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].TimeUp)
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &scriptedGame{endAfter: 2}
	m, store := newTestModel(t, game)

	m = tick(t, m)
	m = tick(t, m)
	require.True(t, m.gameState.GameOver)

	next, _ := m.Update(key('r'))
	m = tick(t, next.(Model))
	assert.Equal(t, 2, game.resets)
	assert.False(t, m.gameState.GameOver)

	m = tick(t, m)
	m = tick(t, m)
	runs, err := store.TopRuns("scripted", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2, "each finished run is recorded")
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m, _ := newTestModel(t, game)

	next, cmd := m.Update(TickMsg{At: time.Now(), Loop: m.loop + 1000})
	assert.Nil(t, cmd)
	assert.Zero(t, next.(Model).gameState.Score)
	assert.Zero(t, game.steps)
}

func TestModelForwardsLatchedInput(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m, _ := newTestModel(t, game)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, next.(Model))
	m = tick(t, m)

	require.Len(t, game.frames, 2)
	assert.True(t, game.frames[0].JustPressed(core.ActionRight))
	assert.True(t, game.frames[1].Has(core.ActionRight))
	assert.False(t, game.frames[1].JustPressed(core.ActionRight))
}

func TestModelBackReturnsToMenuInSession(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m, store := newTestModel(t, game)
	m.canGoBack = true

	m = tick(t, m)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())

	runs, err := store.TopRuns("scripted", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1, "abandoned runs with a score are recorded")
	assert.False(t, runs[0].TimeUp)
}

func TestModelQuitWithoutScoreSavesNothing(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m, store := newTestModel(t, game)

	next, _ := m.Update(key('q'))
	assert.True(t, next.(Model).IsQuitting())

	runs, err := store.TopRuns("scripted", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLogSinkWithoutLogger(t *testing.T) {
	assert.NotPanics(t, func() { LogSink{}.Play(core.SoundCatHit) })
}
