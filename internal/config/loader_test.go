package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	require.NoError(t, yaml.Unmarshal(defaultPlatformerYAML, &cfg))
	assert.Equal(t, DefaultPlatformerConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  max_health: 40\nhazard:\n  damage: 8\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadPlatformer(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Player.MaxHealth)
	assert.Equal(t, 8, cfg.Hazard.Damage)
	// Untouched fields keep their defaults.
	assert.Equal(t, 450.0, cfg.Physics.Player.Gravity)
	assert.Equal(t, 50, cfg.Coin.Value)
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPlatformer(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("player: [oops"), 0o644))
	_, err = LoadPlatformer(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("player:\n  width: 0\npower_up:\n  duration: -1\n"), 0o644))
	_, err = LoadPlatformer(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player size must be positive")
	assert.Contains(t, err.Error(), "power_up.duration must be positive")
}

func TestValidateRejectsStillHazards(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.Physics.Hazard.BounceX = 0
	assert.ErrorContains(t, cfg.Validate(), "hazards keep moving")
}

func TestValidateRejectsStoppingSpeedMultiplier(t *testing.T) {
	for _, m := range []float64{-1, -2.5} {
		cfg := DefaultPlatformerConfig()
		cfg.Difficulty.Scaling.SpeedMultiplier = m
		assert.ErrorContains(t, cfg.Validate(), "speed_multiplier must be greater than -1", "multiplier %v", m)
	}

	cfg := DefaultPlatformerConfig()
	cfg.Difficulty.Scaling.SpeedMultiplier = -0.5
	assert.NoError(t, cfg.Validate())
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		damage      int
		startHealth int
	}{
		{"", false, 0.0, 5, 100},
		{DifficultyFixed, false, 0.0, 5, 100},
		{DifficultyEasy, true, 0.0, 3, 150},
		{DifficultyNormal, true, 0.3, 5, 100},
		{DifficultyHard, true, 0.7, 10, 100},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, tc.preset)

			assert.Equal(t, tc.enabled, cfg.Difficulty.Enabled)
			assert.Equal(t, tc.level, cfg.Difficulty.InitialLevel)
			assert.Equal(t, tc.damage, cfg.Hazard.Damage)
			assert.Equal(t, tc.startHealth, cfg.Player.MaxHealth)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	p, err = ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	_, err = ParsePreset("nightmare")
	assert.ErrorContains(t, err, "unknown difficulty")
}
