// Package maze implements the dot-maze simulation: the character grid, the
// player and enemy entities, the movement and collision rules and the level
// lifecycle. It has no terminal, audio or file system dependencies.
package maze

// Grid dimensions.
const (
	Rows = 16
	Cols = 16
)

// Point values for collectibles.
const (
	PelletPoints = 10
	PowerPoints  = 100
)

// Cell is a single grid symbol as it appears in level files.
type Cell byte

const (
	CellEmpty  Cell = ' '
	CellWall   Cell = '#'
	CellPellet Cell = '.'
	CellPower  Cell = 'O'
	CellPlayer Cell = 'H'
)

// EnemyLetters are the enemy symbols in spawn order.
var EnemyLetters = [EnemyCount]Cell{'R', 'G', 'B', 'A'}

// EnemyCount is fixed for the whole game.
const EnemyCount = 4

// IsEnemy reports whether c is one of the enemy symbols.
func (c Cell) IsEnemy() bool {
	return enemyIndex(c) >= 0
}

// IsCollectible reports whether stepping on c as the player scores points.
func (c Cell) IsCollectible() bool {
	return c == CellPellet || c == CellPower
}

// Points returns the score value of a collectible, 0 otherwise.
func (c Cell) Points() int {
	switch c {
	case CellPellet:
		return PelletPoints
	case CellPower:
		return PowerPoints
	default:
		return 0
	}
}

// IsOccupied reports whether c holds the player or an enemy.
func (c Cell) IsOccupied() bool {
	return c == CellPlayer || c.IsEnemy()
}

func (c Cell) String() string {
	return string(rune(c))
}

// known reports whether c is a symbol the level format defines.
func (c Cell) known() bool {
	switch c {
	case CellEmpty, CellWall, CellPellet, CellPower, CellPlayer:
		return true
	}
	return c.IsEnemy()
}

func enemyIndex(c Cell) int {
	for i, l := range EnemyLetters {
		if l == c {
			return i
		}
	}
	return -1
}
