package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, levels and the database.
const AppDir = ".tui-platformer"

// LoadPlatformer loads the platformer tuning and validates it.
// Search order: customPath -> ~/.tui-platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Files found on the search path that fail to parse are skipped; an explicit
// customPath that fails to read or parse is an error.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg, err := loadPlatformer(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid platformer config: %w", err)
	}
	return cfg, nil
}

func loadPlatformer(customPath string) (PlatformerConfig, error) {
	// Fields missing from a file keep their default values.
	cfg := DefaultPlatformerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("platformer.yaml"), filepath.Join("configs", "platformer.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultPlatformerConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Hazard.Damage = 3
		cfg.Player.MaxHealth = 150
	case DifficultyHard:
		cfg.Hazard.Damage = 10
		cfg.Hazard.Knockback = 30
	}
}
