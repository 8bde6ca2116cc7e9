// platformer is a side-scrolling platformer that runs in the terminal.
//
// Usage:
//
//	platformer list              - List available levels
//	platformer play [level]      - Play a level (default: city)
//	platformer menu              - Start menu to pick levels interactively
//	platformer serve             - Start SSH server for remote play
//	platformer scores <level>    - Show the best runs for a level
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible hazards
//	--db <path>         - Set database path (default: ~/.tui-platformer/scores.db)
//	--config <path>     - Custom tuning YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--levels <dir>      - Extra level files (default: ~/.tui-platformer/levels)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log file (default: ~/.tui-platformer/logs/platformer.log)
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogLevel   string
	flagLogFile    string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - run, jump and collect coins in your terminal",
	Long: `TUI Platformer is a side-scrolling platformer for the terminal.
Run across the city, collect coins and power-ups and dodge the
patrolling cats before the clock runs out.

Available commands:
  list     - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker menu
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  platformer list
  platformer play city
  platformer play training --difficulty easy
  platformer menu
  platformer serve --ssh :2222
  platformer scores city`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	home := filepath.Join("~", config.AppDir)

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", filepath.Join(home, "scores.db"), "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", filepath.Join(home, "levels"), "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", filepath.Join(home, "logs", "platformer.log"), "Log file path (empty = no file)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup validates global flags, configures logging and registers user levels.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	var err error
	logger, err = newLogger(flagLogLevel, flagLogFile, cmd.Name() == "serve")
	if err != nil {
		return err
	}

	dir := expandHome(flagLevelsDir)
	if _, statErr := os.Stat(dir); errors.Is(statErr, fs.ErrNotExist) {
		return nil
	}
	n, regErr := levels.RegisterDir(dir)
	if regErr != nil {
		logger.Warn("some level files were rejected", "dir", dir, "err", regErr)
	}
	logger.Debug("user levels registered", "dir", dir, "count", n)
	return nil
}

// newLogger builds the process logger. The TUI owns the terminal, so logs go
// only to the rotated file; the server also writes them to stderr.
func newLogger(level, file string, toStderr bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var out io.Writer = io.Discard
	if toStderr {
		out = os.Stderr
	}
	if file != "" {
		path := expandHome(file)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out = rotating
		if toStderr {
			out = io.MultiWriter(os.Stderr, rotating)
		}
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           lvl,
	}), nil
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func difficulty() config.DifficultyPreset {
	preset, _ := config.ParsePreset(flagDifficulty)
	return preset
}
