package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGoblins loads the simulation tuning.
// Search order: customPath -> ~/.goblins/configs/goblins.yaml -> ./configs/goblins.yaml -> embedded default
func LoadGoblins(customPath string) (GoblinsConfig, error) {
	cfg := DefaultGoblinsConfig()

	// A custom path is explicit, so its errors are reported
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

	if userCfgPath := userConfigPath("goblins.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultGoblinsConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "goblins.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultGoblinsConfig()
	}

	if err := yaml.Unmarshal(defaultGoblinsYAML, &cfg); err != nil {
		return DefaultGoblinsConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.goblins, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".goblins")
}

// ApplyGoblinsPreset modifies the config based on a difficulty preset.
func ApplyGoblinsPreset(cfg *GoblinsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Session.ExtraLives = 2
		cfg.Session.WalkerOdds = 800
		cfg.Shooter.Cooldown.Min *= 2
	case DifficultyHard:
		cfg.Session.ExtraLives = -1
		cfg.Session.WalkerOdds = 300
		cfg.Knight.Invincibility = 60
	}
}
