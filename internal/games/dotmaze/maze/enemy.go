package maze

// moveEnemies gives every living enemy one random step. Enemies stay put
// until the player has moved in the current level.
func (s *State) moveEnemies(events []Event) []Event {
	if !s.playerMoved {
		return events
	}
	for i := range s.enemies {
		e := &s.enemies[i]
		if !e.Alive() {
			continue
		}
		d, next, a := s.pickStep(e)
		events = s.resolve(e, d, next, a, events)
		if s.gameOver {
			break
		}
	}
	return events
}

// pickStep draws a random direction and, while the candidate falls off the
// grid, tries the remaining directions in order. At most four attempts are
// made; a boxed-in enemy reports aimBlocked and stays.
func (s *State) pickStep(e *Entity) (Dir, Pos, aim) {
	start := s.rng.Intn(len(cardinals))
	for i := range cardinals {
		d := cardinals[(start+i)%len(cardinals)]
		next, a := s.aimAt(e, d)
		if a != aimBlocked {
			return d, next, a
		}
	}
	return DirNone, e.Pos, aimBlocked
}
