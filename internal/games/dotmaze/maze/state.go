package maze

import (
	"fmt"
	"math/rand"
)

// Status is the lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return "idle"
	}
}

// LevelSource provides the text of a level, numbered from 1.
type LevelSource interface {
	Lines(level int) ([]string, error)
}

// Rules holds the tunable parameters of a game.
type Rules struct {
	Lives      int
	LevelTimes []int // seconds per level; its length is the level count
}

// DefaultRules returns three lives and five levels of 180 seconds.
func DefaultRules() Rules {
	return Rules{
		Lives:      3,
		LevelTimes: []int{180, 180, 180, 180, 180},
	}
}

// MaxLevel is the number of levels in a game.
func (r Rules) MaxLevel() int {
	return len(r.LevelTimes)
}

// TimeFor returns the time budget of a level.
func (r Rules) TimeFor(level int) int {
	if level < 1 || level > len(r.LevelTimes) {
		return 0
	}
	return r.LevelTimes[level-1]
}

// State is the whole game: grid, entities, scores and lifecycle. It is owned
// by a single driver and is not safe for concurrent use.
type State struct {
	rules  Rules
	source LevelSource
	rng    *rand.Rand

	grid    *Grid
	player  Entity
	enemies [EnemyCount]Entity

	level       int
	levelScore  int
	target      int
	gameScore   int
	powers      int
	timeLeft    int
	gameOver    bool
	timeOut     bool
	status      Status
	playerMoved bool
	hintShown   bool

	last HUD // HUD at the moment the previous level ended
}

// NewState creates an idle game at level 1.
func NewState(source LevelSource, rules Rules, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &State{
		rules:  rules,
		source: source,
		rng:    rng,
		grid:   ParseGrid(nil),
	}
	s.resetGame()
	return s
}

// Load reads the current level and starts it. On failure the state is not
// modified and stays idle, so the caller may retry.
func (s *State) Load() error {
	if s.status != StatusIdle {
		return ErrNotIdle
	}

	lines, err := s.source.Lines(s.level)
	if err != nil {
		return &LevelLoadError{Level: s.level, Err: err}
	}
	grid, err := ParseLevel(lines)
	if err != nil {
		return &LevelLoadError{Level: s.level, Err: err}
	}
	player, enemies, _ := scanSpawns(grid)

	player.Lives = s.player.Lives
	if player.Lives <= 0 {
		player.Lives = s.rules.Lives
	}

	s.grid = grid
	s.player = player
	s.enemies = enemies
	s.target = grid.TargetScore()
	s.levelScore = 0
	s.powers = 0
	s.timeLeft = s.rules.TimeFor(s.level)
	s.timeOut = false
	s.playerMoved = false
	s.status = StatusRunning
	return nil
}

// Steer sets the direction the player keeps moving in from the next step.
func (s *State) Steer(d Dir) {
	if s.status != StatusRunning {
		return
	}
	s.player.Dir = d
}

// TogglePause switches between running and paused. Other states are kept.
func (s *State) TogglePause() Status {
	switch s.status {
	case StatusRunning:
		s.status = StatusPaused
	case StatusPaused:
		s.status = StatusRunning
	}
	return s.status
}

// Step advances the simulation by one tick. It does nothing unless running.
func (s *State) Step() []Event {
	if s.status != StatusRunning {
		return nil
	}

	var events []Event
	if s.timeLeft == 0 {
		s.timeOut = true
	}

	if !s.timeOut {
		events = s.movePlayer(events)
		if !s.gameOver && s.levelScore != s.target {
			events = s.moveEnemies(events)
		}
	}

	switch {
	case s.timeOut:
		events = s.expire(events)
	case s.gameOver:
		events = s.endGame(events)
	case s.levelScore == s.target:
		events = s.completeLevel(events)
	case s.levelScore > 0 && s.timeLeft > 0:
		s.timeLeft--
	}
	return events
}

// expire handles the level timer running out.
func (s *State) expire(events []Event) []Event {
	if s.player.Lives > 0 {
		s.player.Lives--
	}
	if s.player.Lives == 0 {
		s.gameOver = true
		return s.endGame(events)
	}

	s.last = s.HUD()
	events = append(events, Event{Kind: EventTimeOut, Level: s.level, Score: s.gameScore, Lives: s.player.Lives})
	s.resetLevel()
	return events
}

func (s *State) endGame(events []Event) []Event {
	s.last = s.HUD()
	events = append(events, Event{
		Kind:  EventGameOver,
		Level: s.level,
		Score: s.gameScore + s.levelScore,
		Lives: s.player.Lives,
	})
	s.resetGame()
	return events
}

func (s *State) completeLevel(events []Event) []Event {
	s.gameScore += s.levelScore
	s.last = s.HUD()

	if s.level >= s.rules.MaxLevel() {
		events = append(events, Event{Kind: EventWin, Level: s.level, Score: s.gameScore, Lives: s.player.Lives})
		s.resetGame()
		return events
	}

	events = append(events, Event{Kind: EventLevelUp, Level: s.level, Score: s.gameScore, Lives: s.player.Lives})
	s.level++
	s.resetLevel()
	return events
}

// resetLevel clears per-level progress; the next Load reloads the grid.
func (s *State) resetLevel() {
	s.levelScore = 0
	s.target = 0
	s.powers = 0
	s.timeLeft = s.rules.TimeFor(s.level)
	s.timeOut = false
	s.playerMoved = false
	s.status = StatusIdle
}

// resetGame returns to level 1 with zeroed scores. The grid is kept for
// display until the next Load replaces it.
func (s *State) resetGame() {
	s.level = 1
	s.gameScore = 0
	s.gameOver = false
	s.hintShown = false
	s.player.Lives = 0
	s.resetLevel()
}

// Status returns the lifecycle state.
func (s *State) Status() Status {
	return s.status
}

// Level returns the current level number.
func (s *State) Level() int {
	return s.level
}

// Grid returns a copy of the grid.
func (s *State) Grid() *Grid {
	return s.grid.Clone()
}

// Player returns a copy of the player entity.
func (s *State) Player() Entity {
	return s.player
}

// Enemies returns copies of the enemy entities.
func (s *State) Enemies() [EnemyCount]Entity {
	return s.enemies
}

// Powers returns the number of active power-ups.
func (s *State) Powers() int {
	return s.powers
}

// HUD returns the heads-up display fields.
func (s *State) HUD() HUD {
	return HUD{
		Level:      s.level,
		MaxLevel:   s.rules.MaxLevel(),
		LevelScore: s.levelScore,
		Target:     s.target,
		GameScore:  s.gameScore,
		Powers:     s.powers,
		TimeLeft:   s.timeLeft,
		Lives:      s.player.Lives,
	}
}

// LastHUD returns the HUD captured when the previous level ended.
func (s *State) LastHUD() HUD {
	return s.last
}

func (s *State) String() string {
	return fmt.Sprintf("level=%d status=%s score=%d/%d total=%d powers=%d time=%d lives=%d",
		s.level, s.status, s.levelScore, s.target, s.gameScore, s.powers, s.timeLeft, s.player.Lives)
}
