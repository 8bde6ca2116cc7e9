package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in tuning.
// It mirrors defaults/platformer.yaml and is used when the embedded file
// cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Player:  BodyPhysics{Gravity: 450},
			Coin:    BodyPhysics{Gravity: 400},
			PowerUp: BodyPhysics{},
			Hazard:  BodyPhysics{Gravity: 300, BounceX: 1},
		},
		Player: PlayerConfig{
			Width:                32,
			Height:               48,
			MaxHealth:            100,
			RunRightSpeed:        300,
			RunLeftSpeed:         200,
			PoweredRunRightSpeed: 400,
			PoweredRunLeftSpeed:  300,
			JumpImpulse:          400,
			PoweredJumpImpulse:   550,
		},
		Coin: CoinConfig{
			Width:  32,
			Height: 32,
			Value:  50,
		},
		PowerUp: PowerUpConfig{
			Width:    24,
			Height:   22,
			Duration: 10,
		},
		Hazard: HazardConfig{
			Width:      32,
			Height:     32,
			Damage:     5,
			Knockback:  20,
			HopImpulse: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				DamageMultiplier: 1.0,
			},
		},
	}
}
