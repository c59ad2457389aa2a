// Package dotmaze adapts the maze engine to the platform: it paces engine
// steps against the frame rate, turns engine events into sounds, log lines
// and blocking messages, and draws the maze with its HUD.
package dotmaze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/dotmaze/internal/audio"
	"github.com/vovakirdan/dotmaze/internal/config"
	"github.com/vovakirdan/dotmaze/internal/core"
	"github.com/vovakirdan/dotmaze/internal/games/dotmaze/levels"
	"github.com/vovakirdan/dotmaze/internal/games/dotmaze/maze"
	"github.com/vovakirdan/dotmaze/internal/logging"
)

// GameID is the identifier scores are stored under.
const GameID = "dotmaze"

// Sounds is what the game needs from an audio backend.
type Sounds interface {
	Play(audio.Cue)
	PlayMusic()
	PauseMusic()
	HaltMusic()
}

// Options configures a Game. Zero values get working defaults.
type Options struct {
	Config config.DotMazeConfig
	Theme  config.Theme
	Source maze.LevelSource
	Sounds Sounds
	Logger *log.Logger
}

// modalKind says what dismissing a message does.
type modalKind int

const (
	modalInfo      modalKind = iota // just continue
	modalPause                      // resume the paused level
	modalLoadError                  // retry the failed load
	modalFinal                      // game over or win; a new game follows
)

type modal struct {
	kind   modalKind
	title  string
	detail string // optional middle line
	footer string
}

// Game implements the dot maze game on top of maze.State.
type Game struct {
	opts  Options
	rules maze.Rules
	state *maze.State

	tick         uint64
	ticksPerStep int
	stepTicker   int
	steps        uint64

	modals []modal
	runID  string

	// final result shown while a game over or win message is up
	final    core.GameState
	finished bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game. Call Reset before stepping it.
func New(opts Options) *Game {
	if opts.Config.Gameplay.Lives == 0 {
		opts.Config = config.DefaultDotMazeConfig()
	}
	if opts.Theme == (config.Theme{}) {
		opts.Theme = config.DefaultTheme()
	}
	if opts.Source == nil {
		opts.Source = levels.Embedded{}
	}
	if opts.Sounds == nil {
		opts.Sounds = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Game{
		opts:  opts,
		rules: RulesFrom(opts.Config),
	}
}

// RulesFrom converts the gameplay settings into engine rules.
func RulesFrom(cfg config.DotMazeConfig) maze.Rules {
	times := make([]int, len(cfg.Gameplay.LevelTimes))
	copy(times, cfg.Gameplay.LevelTimes)
	return maze.Rules{
		Lives:      cfg.Gameplay.Lives,
		LevelTimes: times,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Dot Maze"
}

// RunID identifies the game in progress; it changes with every new game.
func (g *Game) RunID() string {
	return g.runID
}

// Reset starts from level 1 with a fresh engine.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = maze.NewState(g.opts.Source, g.rules, rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.steps = 0
	g.stepTicker = 0
	g.modals = nil
	g.finished = false
	g.final = core.GameState{}
	g.runID = uuid.NewString()

	steps := g.opts.Config.Gameplay.StepsPerSecond
	if steps <= 0 {
		steps = 2
	}
	g.ticksPerStep = max(1, cfg.TickRate/steps)

	g.opts.Sounds.HaltMusic()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.opts.Logger.Info("new game", "run", g.runID, "seed", cfg.Seed, "ticks_per_step", g.ticksPerStep)
}

// Resize adapts to a new screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if len(g.modals) > 0 {
		if input.Pressed() {
			g.dismiss()
		}
		return core.StepResult{State: g.State()}
	}

	if g.state.Status() == maze.StatusIdle {
		g.load()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.pause()
		return core.StepResult{State: g.State()}
	}
	if d := directionOf(input); d != maze.DirNone {
		g.state.Steer(d)
	}

	g.stepTicker++
	if g.stepTicker >= g.ticksPerStep {
		g.stepTicker = 0
		g.steps++
		g.handle(g.state.Step())
	}

	return core.StepResult{State: g.State()}
}

func directionOf(input core.InputFrame) maze.Dir {
	switch {
	case input.Has(core.ActionUp):
		return maze.DirUp
	case input.Has(core.ActionDown):
		return maze.DirDown
	case input.Has(core.ActionLeft):
		return maze.DirLeft
	case input.Has(core.ActionRight):
		return maze.DirRight
	}
	return maze.DirNone
}

// load starts the current level. On failure the engine stays idle and a
// message offers a retry.
func (g *Game) load() {
	level := g.state.Level()
	if err := g.state.Load(); err != nil {
		g.opts.Logger.Error("level load failed", "level", level, "err", err)
		m := modal{kind: modalLoadError, title: fmt.Sprintf("Cannot load level %d", level), footer: "Press any key to retry."}
		var lerr *maze.LevelLoadError
		if errors.As(err, &lerr) && lerr.Err != nil {
			m.detail = lerr.Err.Error()
		}
		g.push(m)
		return
	}
	hud := g.state.HUD()
	g.stepTicker = 0
	g.opts.Logger.Info("level loaded", "level", level, "target", hud.Target, "time", hud.TimeLeft, "lives", hud.Lives)
	g.opts.Sounds.PlayMusic()
}

func (g *Game) pause() {
	if g.state.TogglePause() != maze.StatusPaused {
		return
	}
	g.opts.Logger.Debug("paused", "level", g.state.Level())
	g.opts.Sounds.PauseMusic()
	g.push(modal{kind: modalPause, title: "PAUSE", footer: "Press any key to continue."})
}

func (g *Game) push(m modal) {
	g.modals = append(g.modals, m)
}

// dismiss closes the front message and applies its follow-up.
func (g *Game) dismiss() {
	m := g.modals[0]
	g.modals = g.modals[1:]

	switch m.kind {
	case modalPause:
		g.state.TogglePause()
		g.opts.Sounds.PlayMusic()
	case modalFinal:
		g.finished = false
		g.final = core.GameState{}
		g.runID = uuid.NewString()
		g.opts.Logger.Info("new game", "run", g.runID)
	}
	// idle engines load on the next frame, which also retries failed loads
}

// handle turns engine events into sounds, logs and messages.
func (g *Game) handle(events []maze.Event) {
	logger := g.opts.Logger
	sounds := g.opts.Sounds

	for _, ev := range events {
		switch ev.Kind {
		case maze.EventPelletEaten:
			logger.Debug("pellet", "level", ev.Level, "level_score", ev.Score)

		case maze.EventPowerUp:
			sounds.Play(audio.CuePowerUp)
			logger.Debug("power up", "level", ev.Level, "level_score", ev.Score, "powers", g.state.Powers())

		case maze.EventPowerHint:
			g.push(modal{kind: modalInfo, title: "Wow, would you like to kill a ghost?", footer: "Press any key to continue."})

		case maze.EventEnemyKilled:
			sounds.Play(audio.CueEnemyKilled)
			logger.Info("enemy killed", "level", ev.Level, "enemy", ev.Letter.String())

		case maze.EventPlayerDied:
			sounds.Play(audio.CueDeath)
			logger.Info("player died", "level", ev.Level, "lives", ev.Lives)

		case maze.EventTimeOut:
			sounds.HaltMusic()
			sounds.Play(audio.CueGameOver)
			logger.Info("time out", "level", ev.Level, "lives", ev.Lives)
			g.push(modal{kind: modalInfo, title: "TIME OUT!", footer: "Press any key to restart the level."})

		case maze.EventGameOver:
			sounds.HaltMusic()
			sounds.Play(audio.CueGameOver)
			logger.Info("game over", "run", g.runID, "level", ev.Level, "score", ev.Score)
			g.finish(ev, false)
			g.push(modal{kind: modalFinal, title: "GAME OVER", footer: "Press any key to restart."})

		case maze.EventLevelUp:
			sounds.PauseMusic()
			sounds.Play(audio.CueLevelUp)
			logger.Info("level up", "level", ev.Level, "score", ev.Score)
			g.push(modal{kind: modalInfo, title: "Level UP!", footer: fmt.Sprintf("Press any key to start level %d", ev.Level+1)})

		case maze.EventWin:
			sounds.PauseMusic()
			sounds.Play(audio.CueWin)
			logger.Info("win", "run", g.runID, "score", ev.Score)
			g.finish(ev, true)
			g.push(modal{kind: modalFinal, title: "You Win =)", footer: "Press any key to restart."})
		}
	}
}

func (g *Game) finish(ev maze.Event, won bool) {
	g.finished = true
	g.final = core.GameState{
		Score:    ev.Score,
		Level:    ev.Level,
		GameOver: true,
		Won:      won,
	}
}

// State returns the current game state. GameOver stays true while the final
// message is on screen.
func (g *Game) State() core.GameState {
	if g.finished {
		return g.final
	}
	if g.state == nil {
		return core.GameState{}
	}
	hud := g.state.HUD()
	return core.GameState{
		Score:  hud.GameScore + hud.LevelScore,
		Level:  hud.Level,
		Paused: g.state.Status() == maze.StatusPaused,
	}
}
