package maze

import "strings"

// Pos is a grid coordinate. X is the column, Y the row.
type Pos struct {
	X, Y int
}

// Sentinel marks an eliminated enemy until the next level load.
var Sentinel = Pos{X: -1, Y: -1}

// Add returns p moved by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Grid is the fixed-size maze. Entities are written into it in place; each
// entity remembers the symbol it covers so it can be restored on move-away.
type Grid struct {
	cells [Rows][Cols]Cell
}

// ParseGrid builds a grid from level text. Lines beyond Rows and characters
// beyond Cols are dropped, missing cells are empty and unknown symbols are
// treated as floor.
func ParseGrid(lines []string) *Grid {
	g := &Grid{}
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = CellEmpty
		}
	}

	for y, line := range lines {
		if y >= Rows {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		for x := 0; x < len(line) && x < Cols; x++ {
			c := Cell(line[x])
			if !c.known() {
				c = CellEmpty
			}
			g.cells[y][x] = c
		}
	}
	return g
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < Cols && p.Y >= 0 && p.Y < Rows
}

// Get returns the cell at p. Out-of-bounds positions read as walls.
func (g *Grid) Get(p Pos) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.cells[p.Y][p.X]
}

// Set writes c at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p Pos, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y][p.X] = c
}

// Find returns the first cell holding c, scanning row by row.
func (g *Grid) Find(c Cell) (Pos, bool) {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == c {
				return Pos{X: x, Y: y}, true
			}
		}
	}
	return Sentinel, false
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == c {
				n++
			}
		}
	}
	return n
}

// TargetScore is the sum of all collectible values currently on the grid.
func (g *Grid) TargetScore() int {
	return g.Count(CellPellet)*PelletPoints + g.Count(CellPower)*PowerPoints
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Lines returns the grid as text, one string per row.
func (g *Grid) Lines() []string {
	lines := make([]string, Rows)
	for y := range g.cells {
		var b [Cols]byte
		for x, c := range g.cells[y] {
			b[x] = byte(c)
		}
		lines[y] = string(b[:])
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
