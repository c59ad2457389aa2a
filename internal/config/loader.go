package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDotMaze loads the dot maze configuration.
// Search order: customPath -> ~/.dotmaze/configs/dotmaze.yaml -> ./configs/dotmaze.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadDotMaze(customPath string) (DotMazeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DotMazeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDotMaze(data)
		if err != nil {
			return DotMazeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DotMazeConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dotmaze.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDotMaze(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dotmaze.yaml"); err == nil {
		if cfg, err := parseDotMaze(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseDotMaze(defaultDotMazeYAML)
	if err != nil {
		return DefaultDotMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseDotMaze(data []byte) (DotMazeConfig, error) {
	cfg := DefaultDotMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dotmaze", "configs", filename)
}
