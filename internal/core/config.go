package core

import "fmt"

// RuntimeConfig contains configuration passed to the game at reset.
// The game uses it to size its view and to seed deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Validate checks that the config can drive a fixed-step simulation.
func (c RuntimeConfig) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.ScreenW < 0 || c.ScreenH < 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenW, c.ScreenH)
	}
	return nil
}

// StepDuration returns the simulated seconds covered by one tick.
func (c RuntimeConfig) StepDuration() float64 {
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended; never reverts within a run
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events raised during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunStats summarises a finished or abandoned run for the score history.
type RunStats struct {
	LevelID string
	Score   int
	Coins   int
	Defeats int
	Elapsed float64 // Simulated seconds
	TimeUp  bool    // Whether the countdown ran out
}
