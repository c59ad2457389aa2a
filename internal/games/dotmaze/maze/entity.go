package maze

// Entity is the player or one enemy. Both share the same shape; the rules
// applied to them differ by Letter.
type Entity struct {
	Letter  Cell
	Pos     Pos
	Initial Pos
	Saved   Cell // grid content under the entity
	Dir     Dir
	Facing  Dir // last horizontal direction, for sprites
	Edge    Dir // armed deferred wrap, DirNone when clear
	Lives   int
}

// Alive reports whether the entity is on the grid.
func (e *Entity) Alive() bool {
	return e.Pos != Sentinel
}

// IsEnemy reports whether the entity is one of the enemies.
func (e *Entity) IsEnemy() bool {
	return e.Letter.IsEnemy()
}

// spawnAt places the entity at its spawn cell for a fresh level.
func (e *Entity) spawnAt(p Pos) {
	e.Pos = p
	e.Initial = p
	e.Saved = CellEmpty
	e.Edge = DirNone
}

func (e *Entity) face(d Dir) {
	if d.Horizontal() {
		e.Facing = d
	}
}

// ParseLevel parses level text and checks that the player and every enemy
// spawn exactly once.
func ParseLevel(lines []string) (*Grid, error) {
	g := ParseGrid(lines)
	if _, _, err := scanSpawns(g); err != nil {
		return nil, err
	}
	return g, nil
}

// scanSpawns finds the player and every enemy in a freshly parsed grid.
// Each spawn symbol must appear exactly once.
func scanSpawns(g *Grid) (Entity, [EnemyCount]Entity, error) {
	var enemies [EnemyCount]Entity

	player := Entity{Letter: CellPlayer, Dir: DirNone, Facing: DirRight}
	switch n := g.Count(CellPlayer); {
	case n == 0:
		return player, enemies, ErrNoPlayerSpawn
	case n > 1:
		return player, enemies, duplicateSpawn(CellPlayer)
	}
	p, _ := g.Find(CellPlayer)
	player.spawnAt(p)

	for i, letter := range EnemyLetters {
		switch n := g.Count(letter); {
		case n == 0:
			return player, enemies, missingEnemy(letter)
		case n > 1:
			return player, enemies, duplicateSpawn(letter)
		}
		ep, _ := g.Find(letter)
		enemies[i] = Entity{Letter: letter, Dir: DirLeft, Facing: DirLeft}
		enemies[i].spawnAt(ep)
	}
	return player, enemies, nil
}

func duplicateSpawn(c Cell) error {
	return &spawnError{err: ErrDuplicateSpawn, symbol: c}
}

func missingEnemy(c Cell) error {
	return &spawnError{err: ErrNoEnemySpawn, symbol: c}
}

type spawnError struct {
	err    error
	symbol Cell
}

func (e *spawnError) Error() string {
	return e.err.Error() + " '" + e.symbol.String() + "'"
}

func (e *spawnError) Unwrap() error {
	return e.err
}
