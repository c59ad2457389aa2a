package maze

// aim is the outcome of computing a candidate cell.
type aim int

const (
	aimOK       aim = iota
	aimDeferred     // wrap armed, mover stays this tick
	aimBlocked      // off the grid
)

// aimAt computes the cell e would enter moving in d. A horizontal move into an
// empty edge column arms a wrap instead of moving; the next move in the same
// direction lands on the opposite edge.
func (s *State) aimAt(e *Entity, d Dir) (Pos, aim) {
	dx, dy := d.Delta()
	next := e.Pos.Add(dx, dy)

	if e.Edge != DirNone {
		armed := e.Edge
		e.Edge = DirNone
		if d == armed {
			if dx > 0 {
				next.X = 0
			} else {
				next.X = Cols - 1
			}
			return next, aimOK
		}
	}

	if !s.grid.InBounds(next) {
		return next, aimBlocked
	}
	if d.Horizontal() && s.grid.Get(next) == CellEmpty && isExitColumn(next.X, dx) {
		e.Edge = d
		return next, aimDeferred
	}
	return next, aimOK
}

func isExitColumn(x, dx int) bool {
	return (dx < 0 && x == 0) || (dx > 0 && x == Cols-1)
}

// applyDirection moves e one cell in d and resolves whatever is there.
func (s *State) applyDirection(e *Entity, d Dir, events []Event) []Event {
	if d == DirNone || !e.Alive() {
		return events
	}
	next, a := s.aimAt(e, d)
	return s.resolve(e, d, next, a, events)
}

// resolve applies the cell-content rules to a computed candidate.
func (s *State) resolve(e *Entity, d Dir, next Pos, a aim, events []Event) []Event {
	switch a {
	case aimBlocked:
		return events
	case aimDeferred:
		if e.IsEnemy() {
			e.Dir = d
		}
		e.face(d)
		return events
	}

	switch c := s.grid.Get(next); {
	case c == CellWall:
		return events

	case c.IsEnemy():
		if e.IsEnemy() {
			return events
		}
		if s.powers == 0 {
			return s.playerHit(events)
		}
		events = s.killEnemy(enemyIndex(c), events)

	case c == CellPlayer:
		if !e.IsEnemy() {
			return events
		}
		if s.powers > 0 {
			return s.killEnemy(enemyIndex(e.Letter), events)
		}
		events = s.playerHit(events)
		// with the player respawned the enemy takes the vacated cell
		if s.gameOver || !e.Alive() || s.grid.Get(next).IsOccupied() {
			return events
		}
	}

	if e.IsEnemy() {
		e.Dir = d
	}
	e.face(d)
	under := s.relocate(e, next)
	if !e.IsEnemy() {
		events = s.collect(under, events)
	}
	return events
}

// relocate restores the old cell, remembers the new one and moves e there.
func (s *State) relocate(e *Entity, next Pos) Cell {
	s.grid.Set(e.Pos, e.Saved)
	under := s.grid.Get(next)
	e.Saved = under
	s.grid.Set(next, e.Letter)
	e.Pos = next
	return under
}

// collect scores a collectible the player just stepped on and consumes it.
func (s *State) collect(under Cell, events []Event) []Event {
	if !under.IsCollectible() {
		return events
	}
	s.player.Saved = CellEmpty
	s.levelScore += under.Points()

	if under == CellPellet {
		return append(events, Event{Kind: EventPelletEaten, Level: s.level, Score: s.levelScore})
	}

	s.powers++
	events = append(events, Event{Kind: EventPowerUp, Level: s.level, Score: s.levelScore})
	if !s.hintShown {
		s.hintShown = true
		events = append(events, Event{Kind: EventPowerHint, Level: s.level})
	}
	return events
}

// movePlayer moves the player along its current direction.
func (s *State) movePlayer(events []Event) []Event {
	if s.player.Dir == DirNone {
		return events
	}
	s.playerMoved = true
	return s.applyDirection(&s.player, s.player.Dir, events)
}

// killEnemy removes enemy i from the grid and spends one power-up.
func (s *State) killEnemy(i int, events []Event) []Event {
	e := &s.enemies[i]
	s.grid.Set(e.Pos, e.Saved)
	e.Pos = Sentinel
	e.Saved = CellEmpty
	e.Edge = DirNone
	if s.powers > 0 {
		s.powers--
	}
	return append(events, Event{Kind: EventEnemyKilled, Level: s.level, Letter: e.Letter})
}

// playerHit costs a life. With lives left the player respawns at its
// initial cell with no direction; otherwise the game is over.
func (s *State) playerHit(events []Event) []Event {
	p := &s.player
	if p.Lives > 0 {
		p.Lives--
	}
	events = append(events, Event{Kind: EventPlayerDied, Level: s.level, Lives: p.Lives})
	if p.Lives == 0 {
		s.gameOver = true
		return events
	}

	s.grid.Set(p.Pos, p.Saved)
	if i := enemyIndex(s.grid.Get(p.Initial)); i >= 0 {
		s.displaceEnemy(i)
	}
	p.Pos = p.Initial
	p.Saved = CellEmpty
	p.Dir = DirNone
	p.Edge = DirNone
	s.grid.Set(p.Pos, CellPlayer)
	return events
}

// displaceEnemy moves an enemy off the player's spawn cell, back to its own
// spawn if that is free, off the grid otherwise.
func (s *State) displaceEnemy(i int) {
	e := &s.enemies[i]
	s.grid.Set(e.Pos, e.Saved)
	e.Edge = DirNone

	home := s.grid.Get(e.Initial)
	if e.Initial != e.Pos && !home.IsOccupied() {
		e.Pos = e.Initial
		e.Saved = home
		s.grid.Set(e.Pos, e.Letter)
		return
	}
	e.Pos = Sentinel
	e.Saved = CellEmpty
}
