package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dotmaze/internal/audio"
	"github.com/vovakirdan/dotmaze/internal/config"
	"github.com/vovakirdan/dotmaze/internal/core"
	"github.com/vovakirdan/dotmaze/internal/games/dotmaze"
	"github.com/vovakirdan/dotmaze/internal/games/dotmaze/levels"
	"github.com/vovakirdan/dotmaze/internal/logging"
	"github.com/vovakirdan/dotmaze/internal/platform/tui"
	"github.com/vovakirdan/dotmaze/internal/storage"
)

var errNoTerminal = errors.New("dotmaze needs an interactive terminal")

// app holds everything a command needs after startup.
type app struct {
	cfg    config.DotMazeConfig
	logger *log.Logger
	source levels.Source
	theme  config.Theme
	sounds dotmaze.Sounds
	player *audio.Player
	closer func() error
}

// appOptions tweaks startup for commands that do not own a terminal.
type appOptions struct {
	logPrefix string
	stderr    bool // log to stderr as well as the trace file
	silent    bool // never open the audio device
}

// newApp loads config and assets. Problems the game can live with are
// logged as warnings; the rest are returned.
func newApp(cmd *cobra.Command, opts appOptions) (*app, error) {
	cfg, err := config.LoadDotMaze(flagConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)

	prefix := opts.logPrefix
	if prefix == "" {
		prefix = "dotmaze"
	}
	logger, closer, err := logging.New(logging.Options{
		TracePath:  flagTrace,
		DebugLevel: flagDebugLevel,
		Prefix:     prefix,
		Stderr:     opts.stderr,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, closer: closer}

	a.source, err = levels.Open(cfg.Assets.LevelsDir, cmd.Flags().Changed("level-dir"))
	if err != nil {
		return nil, closeOnError(closer, err)
	}
	logger.Info("levels", "source", a.source.String(), "count", cfg.MaxLevel())

	theme, err := config.LoadTheme(cfg.Assets.ImgDir)
	if err != nil {
		logger.Warn("using built-in sprites", "err", err)
	}
	a.theme = theme

	if _, err := os.Stat(cfg.Assets.FontsDir); err != nil {
		logger.Warn("font directory unavailable", "dir", cfg.Assets.FontsDir, "err", err)
	}

	a.sounds = audio.Silent{}
	if !opts.silent && !flagMute && cfg.Audio.Enabled {
		p := audio.Load(cfg.Assets.AudioDir, audio.Options{
			MusicVolume: cfg.Audio.MusicVolume,
			SfxVolume:   cfg.Audio.SfxVolume,
		}, logger)
		if err := p.Start(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			a.player = p
			a.sounds = p
		}
	}

	return a, nil
}

// applyFlags lets explicit command line flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *config.DotMazeConfig) {
	flags := cmd.Flags()
	if flags.Changed("img-dir") {
		cfg.Assets.ImgDir = flagImgDir
	}
	if flags.Changed("level-dir") {
		cfg.Assets.LevelsDir = flagLevelDir
	}
	if flags.Changed("font-dir") {
		cfg.Assets.FontsDir = flagFontDir
	}
	if flags.Changed("audio-dir") {
		cfg.Assets.AudioDir = flagAudioDir
	}
	if flags.Changed("db") {
		cfg.Storage.DB = flagDBPath
	}
}

// newGame builds a fresh game wired to the app's assets.
func (a *app) newGame() tui.Game {
	return dotmaze.New(dotmaze.Options{
		Config: a.cfg,
		Theme:  a.theme,
		Source: a.source,
		Sounds: a.sounds,
		Logger: a.logger,
	})
}

// openStore opens the score database, or returns nil with a warning.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.Storage.DB)
	if err != nil {
		a.logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// closeOnError releases the trace file after a failed startup and keeps a
// close failure next to the original error.
func closeOnError(closer func() error, err error) error {
	if cerr := closer(); cerr != nil {
		return errors.Join(err, fmt.Errorf("close trace file: %w", cerr))
	}
	return err
}

func (a *app) Close() {
	if a.player != nil {
		a.player.Close()
	}
	//nolint:errcheck // Best-effort close on exit
	a.closer()
}

// terminalConfig checks for an interactive terminal and sizes the screen.
func terminalConfig() (core.RuntimeConfig, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return core.RuntimeConfig{}, errNoTerminal
	}
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}, nil
}

// playerName is the name scores are recorded under.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
