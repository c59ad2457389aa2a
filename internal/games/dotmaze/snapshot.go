package dotmaze

import "github.com/vovakirdan/dotmaze/internal/games/dotmaze/maze"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Steps      uint64 // engine steps taken
	Status     string
	Level      int
	LevelScore int
	Target     int
	GameScore  int
	Powers     int
	TimeLeft   int
	Lives      int
	Player     maze.Pos
	Enemies    [maze.EnemyCount]maze.Pos
	Modal      string // title of the message on screen, if any
	Grid       string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Tick: g.tick}
	}

	hud := g.state.HUD()
	snap := Snapshot{
		Tick:       g.tick,
		Steps:      g.steps,
		Status:     g.state.Status().String(),
		Level:      hud.Level,
		LevelScore: hud.LevelScore,
		Target:     hud.Target,
		GameScore:  hud.GameScore,
		Powers:     hud.Powers,
		TimeLeft:   hud.TimeLeft,
		Lives:      hud.Lives,
		Player:     g.state.Player().Pos,
		Grid:       g.state.Grid().String(),
	}
	for i, e := range g.state.Enemies() {
		snap.Enemies[i] = e.Pos
	}
	if len(g.modals) > 0 {
		snap.Modal = g.modals[0].title
	}
	return snap
}
