// Package config provides YAML-based configuration loading for dotmaze:
// gameplay rules, asset directories, audio, storage and the sprite theme.
package config

import (
	"errors"
	"fmt"
)

// DotMazeConfig contains all configuration for the dot maze game.
type DotMazeConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Storage  StorageConfig  `yaml:"storage"`
}

// GameplayConfig defines the rules of a game.
type GameplayConfig struct {
	Lives          int   `yaml:"lives"`
	LevelTimes     []int `yaml:"level_times"`      // seconds per level, one entry per level
	StepsPerSecond int   `yaml:"steps_per_second"` // maze steps per second
}

// AssetsConfig defines where images, levels, fonts and sounds live.
type AssetsConfig struct {
	ImgDir    string `yaml:"img_dir"`
	LevelsDir string `yaml:"levels_dir"`
	FontsDir  string `yaml:"fonts_dir"`
	AudioDir  string `yaml:"audio_dir"`
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"` // log2 gain, 0 keeps the file level
	SfxVolume   float64 `yaml:"sfx_volume"`
}

// StorageConfig defines the high score database.
type StorageConfig struct {
	DB string `yaml:"db"` // sqlite path or postgres:// URL
}

// MaxLevel is the number of levels in a game.
func (c DotMazeConfig) MaxLevel() int {
	return len(c.Gameplay.LevelTimes)
}

// Validate reports settings the game cannot run with.
func (c DotMazeConfig) Validate() error {
	var errs []error
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if len(c.Gameplay.LevelTimes) == 0 {
		errs = append(errs, errors.New("gameplay.level_times must list at least one level"))
	}
	for i, t := range c.Gameplay.LevelTimes {
		if t <= 0 {
			errs = append(errs, fmt.Errorf("gameplay.level_times[%d] must be positive, got %d", i, t))
		}
	}
	if c.Gameplay.StepsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.steps_per_second must be positive, got %d", c.Gameplay.StepsPerSecond))
	}
	return errors.Join(errs...)
}
