package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const defaultLevel = "city"

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (default: city).

Controls:
  Left/Right, A/D   - Run
  Up, W, Space      - Jump
  P                 - Pause
  R                 - Restart (after time up)
  Esc/B, Q/Ctrl+C   - Quit
  Ctrl+S            - Save a text screenshot

Difficulty options:
  easy   - Weaker cats, more health, progresses over time
  normal - Progresses from 30% difficulty
  hard   - Stronger knockback, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play training
  platformer play city --difficulty hard
  platformer play city --seed 42 --config ./my-tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	levelID := defaultLevel
	if len(args) == 1 {
		levelID = args[0]
	}

	if !registry.Exists(levelID) {
		return fmt.Errorf("unknown level %q; run 'platformer list' to see available levels", levelID)
	}

	game, err := registry.Create(levelID, tui.GameOptions(flagConfig, difficulty(), logger))
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	return tui.Run(game, store, logger, runtimeConfig())
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
