package config

import "math"

// DifficultyManager derives hazard tuning from the difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Progressive returns whether the level changes during a run.
func (d *DifficultyManager) Progressive() bool {
	switch d.cfg.Progression.Type {
	case "score", "time":
		return d.cfg.Enabled
	default:
		return false
	}
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// A disabled manager always reports level 0 so tuning stays at its base values.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if !d.Progressive() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base hazard speed by the current level.
// Speed increases from base to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks uint64) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Damage scales the hazard contact damage by the current level.
func (d *DifficultyManager) Damage(baseDamage int, score int, ticks uint64) int {
	level := d.Level(score, ticks)
	return int(math.Round(float64(baseDamage) * (1.0 + level*d.cfg.Scaling.DamageMultiplier)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
