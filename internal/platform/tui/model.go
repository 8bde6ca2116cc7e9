package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Model is the Bubble Tea model for running a level.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	latch     *KeyLatch
	styles    frameStyles
	gameState core.GameState
	loop      uint64

	runSaved   bool // Whether the current run has been recorded
	canGoBack  bool // Back returns to a menu instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		latch:     NewKeyLatch(DefaultInitialHold, DefaultRepeatHold),
		styles:    newFrameStyles(),
		loop:      newTickLoop(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("reset failed", "level", m.game.ID(), "err", err)
		return tea.Quit
	}
	m.logger.Info("run started", "level", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.saveRun()
		if m.canGoBack {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	m.latch.Report(action, time.Now())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	frame := m.latch.Frame(now)

	if frame.JustPressed(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "tick", ev.Tick, "entity", ev.EntityID)
	}

	if m.gameState.GameOver {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("restart failed", "level", m.game.ID(), "err", err)
		return
	}
	m.gameState = m.game.State()
	m.runSaved = false
	m.latch.Reset()
	m.logger.Info("run restarted", "level", m.game.ID(), "seed", m.config.Seed)
}

// saveRun records the current run once. Runs that never scored are skipped.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	stats := m.game.Stats()
	if stats.Score <= 0 && !stats.TimeUp {
		return
	}
	m.logger.Info("run finished", "level", stats.LevelID, "score", stats.Score,
		"coins", stats.Coins, "defeats", stats.Defeats, "time_up", stats.TimeUp)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(stats)
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.styles.render(m.screen)
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// LogSink is a core.AudioSink that writes sound cues to a logger.
// Terminals have no audio, so cues are only traced.
type LogSink struct {
	Logger *log.Logger
}

// Play implements core.AudioSink.
func (s LogSink) Play(sound core.Sound) {
	if s.Logger != nil {
		s.Logger.Debug("sound", "cue", sound)
	}
}

// GameOptions builds registry options that route sound cues to logger.
func GameOptions(configPath string, difficulty config.DifficultyPreset, logger *log.Logger) registry.Options {
	return registry.Options{
		ConfigPath: configPath,
		Difficulty: difficulty,
		Audio:      LogSink{Logger: logger},
	}
}
