// Package config provides YAML-based tuning for the platformer and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all tuning values of the simulation.
// Level layout (geometry, spawn points, time limit) is not part of it.
type PlatformerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Coin       CoinConfig       `yaml:"coin"`
	PowerUp    PowerUpConfig    `yaml:"power_up"`
	Hazard     HazardConfig     `yaml:"hazard"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BodyPhysics defines the per-kind body parameters.
type BodyPhysics struct {
	Gravity float64 `yaml:"gravity"`  // Downward acceleration, units/s²
	BounceX float64 `yaml:"bounce_x"` // Fraction of horizontal speed reflected when blocked
}

// PhysicsConfig groups body parameters by entity kind.
type PhysicsConfig struct {
	Player  BodyPhysics `yaml:"player"`
	Coin    BodyPhysics `yaml:"coin"`
	PowerUp BodyPhysics `yaml:"power_up"`
	Hazard  BodyPhysics `yaml:"hazard"`
}

// PlayerConfig defines the player's size, health and movement.
type PlayerConfig struct {
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	MaxHealth            int     `yaml:"max_health"`
	RunRightSpeed        float64 `yaml:"run_right_speed"`
	RunLeftSpeed         float64 `yaml:"run_left_speed"`
	PoweredRunRightSpeed float64 `yaml:"powered_run_right_speed"`
	PoweredRunLeftSpeed  float64 `yaml:"powered_run_left_speed"`
	JumpImpulse          float64 `yaml:"jump_impulse"`
	PoweredJumpImpulse   float64 `yaml:"powered_jump_impulse"`
}

// CoinConfig defines coin size and value.
type CoinConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Value  int     `yaml:"value"`
}

// PowerUpConfig defines power-up size and effect duration.
type PowerUpConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Duration float64 `yaml:"duration"` // Seconds
}

// HazardConfig defines hazard size and the contact reaction.
type HazardConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Damage     int     `yaml:"damage"`      // Health removed per contact
	Knockback  float64 `yaml:"knockback"`   // Horizontal displacement away from the player
	HopImpulse float64 `yaml:"hop_impulse"` // Upward speed given on contact
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to hazard speed at max difficulty
	DamageMultiplier float64 `yaml:"damage_multiplier"` // Added to hazard damage at max difficulty
}

// Validate reports every value the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	for name, bp := range map[string]BodyPhysics{
		"player":   c.Physics.Player,
		"coin":     c.Physics.Coin,
		"power_up": c.Physics.PowerUp,
		"hazard":   c.Physics.Hazard,
	} {
		check(bp.Gravity >= 0, "physics.%s.gravity must not be negative", name)
		check(bp.BounceX >= 0 && bp.BounceX <= 1, "physics.%s.bounce_x must be in [0, 1]", name)
	}

	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.MaxHealth > 0, "player.max_health must be positive")
	check(c.Player.RunLeftSpeed >= 0 && c.Player.RunRightSpeed >= 0, "player run speeds must not be negative")
	check(c.Player.PoweredRunLeftSpeed >= 0 && c.Player.PoweredRunRightSpeed >= 0, "player powered run speeds must not be negative")
	check(c.Player.JumpImpulse >= 0 && c.Player.PoweredJumpImpulse >= 0, "player jump impulses must not be negative")
	check(c.Coin.Width > 0 && c.Coin.Height > 0, "coin size must be positive")
	check(c.Coin.Value >= 0, "coin.value must not be negative")
	check(c.PowerUp.Width > 0 && c.PowerUp.Height > 0, "power_up size must be positive")
	check(c.PowerUp.Duration > 0, "power_up.duration must be positive")
	check(c.Hazard.Width > 0 && c.Hazard.Height > 0, "hazard size must be positive")
	check(c.Hazard.Damage >= 0, "hazard.damage must not be negative")
	check(c.Physics.Hazard.BounceX > 0, "physics.hazard.bounce_x must be positive so hazards keep moving")
	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1, "difficulty.initial_level must be in [0, 1]")
	check(c.Difficulty.Scaling.SpeedMultiplier > -1, "difficulty.scaling.speed_multiplier must be greater than -1 so hazards keep moving")

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a user-supplied name into a preset.
// The empty string means "keep the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
