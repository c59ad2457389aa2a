package config

import (
	_ "embed"
)

//go:embed defaults/dotmaze.yaml
var defaultDotMazeYAML []byte

// DefaultDotMazeConfig returns the default dot maze configuration.
func DefaultDotMazeConfig() DotMazeConfig {
	return DotMazeConfig{
		Gameplay: GameplayConfig{
			Lives:          3,
			LevelTimes:     []int{180, 180, 180, 180, 180},
			StepsPerSecond: 2,
		},
		Assets: AssetsConfig{
			ImgDir:    "./assets/img",
			LevelsDir: "./assets/levels",
			FontsDir:  "./assets/fonts",
			AudioDir:  "./assets/audio",
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: -1,
		},
		Storage: StorageConfig{
			DB: "~/.dotmaze/scores.db",
		},
	}
}
