package maze

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventPelletEaten EventKind = iota
	EventPowerUp
	EventPowerHint // first power pellet of the game
	EventEnemyKilled
	EventPlayerDied
	EventTimeOut
	EventGameOver
	EventLevelUp
	EventWin
)

func (k EventKind) String() string {
	switch k {
	case EventPelletEaten:
		return "pellet"
	case EventPowerUp:
		return "power_up"
	case EventPowerHint:
		return "power_hint"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerDied:
		return "player_died"
	case EventTimeOut:
		return "time_out"
	case EventGameOver:
		return "game_over"
	case EventLevelUp:
		return "level_up"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for the presentation layer (sounds, messages,
// logging). For lifecycle events Level is the level that ended and Score the
// game total at that moment.
type Event struct {
	Kind   EventKind
	Level  int
	Score  int
	Lives  int
	Letter Cell
}

// Lifecycle reports whether the event ends the running level.
func (e Event) Lifecycle() bool {
	switch e.Kind {
	case EventTimeOut, EventGameOver, EventLevelUp, EventWin:
		return true
	}
	return false
}
