package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the game configuration.
// Search order: customPath -> ~/.skyflap/config.yaml -> ./configs/skyflap.yaml -> embedded default.
// A customPath that cannot be read or parsed is an error; the fallback
// locations fail silently to the next candidate.
func Load(customPath string) (GameConfig, error) {
	var cfg GameConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return validated(cfg)
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return validated(cfg)
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "skyflap.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return validated(cfg)
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return validated(cfg)
}

// validated rejects configs the simulation cannot run on.
func validated(cfg GameConfig) (GameConfig, error) {
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return cfg, fmt.Errorf("config: world dimensions must be positive, got %gx%g", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Obstacles.GapSize <= cfg.Actor.Height {
		return cfg, fmt.Errorf("config: gap size %g must exceed actor height %g", cfg.Obstacles.GapSize, cfg.Actor.Height)
	}
	if cfg.Obstacles.MinGapStart+cfg.Obstacles.GapSize >= cfg.World.Height {
		return cfg, fmt.Errorf("config: gap cannot fit below min_gap_start %g", cfg.Obstacles.MinGapStart)
	}
	if cfg.Spawner.BaseMinMs <= 0 || cfg.Spawner.BaseMaxMs < cfg.Spawner.BaseMinMs {
		return cfg, fmt.Errorf("config: invalid spawn interval range [%d, %d]", cfg.Spawner.BaseMinMs, cfg.Spawner.BaseMaxMs)
	}
	if cfg.Actor.Lives <= 0 {
		return cfg, fmt.Errorf("config: lives must be positive, got %d", cfg.Actor.Lives)
	}
	if cfg.Stages.Threshold <= 0 || len(cfg.Stages.Themes) == 0 {
		return cfg, fmt.Errorf("config: stages need a positive threshold and at least one theme")
	}
	return cfg, nil
}

// userConfigPath returns the per-user config path, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyflap", "config.yaml")
}
