package maze

import (
	"errors"
	"fmt"
)

// Spawn validation failures, wrapped in a LevelLoadError.
var (
	ErrNoPlayerSpawn  = errors.New("no player spawn")
	ErrNoEnemySpawn   = errors.New("missing enemy spawn")
	ErrDuplicateSpawn = errors.New("duplicate spawn")
	ErrNotIdle        = errors.New("maze: level can only be loaded while idle")
)

// LevelLoadError reports a level that could not be read or is malformed.
// The state is left untouched when it is returned.
type LevelLoadError struct {
	Level int
	Err   error
}

func (e *LevelLoadError) Error() string {
	return fmt.Sprintf("maze: cannot load level %d: %v", e.Level, e.Err)
}

func (e *LevelLoadError) Unwrap() error {
	return e.Err
}
