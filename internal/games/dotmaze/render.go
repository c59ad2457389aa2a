package dotmaze

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/dotmaze/internal/config"
	"github.com/vovakirdan/dotmaze/internal/core"
	"github.com/vovakirdan/dotmaze/internal/games/dotmaze/maze"
)

// Screen layout: lives and clock above the maze, score rows below it. The
// score line wraps onto a second row when the window is narrower than it,
// and minWidth fits either wrapped half.
const (
	gridWidth   = maze.Cols * config.GlyphWidth
	summaryRows = 2
	minWidth    = 40
	minHeight   = maze.Rows + 1 + summaryRows
)

var enemyColors = map[maze.Cell]core.Color{
	'R': core.ColorRed,
	'G': core.ColorGreen,
	'B': core.ColorCyan,
	'A': core.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()), modal{
			title:  "Window too small",
			footer: fmt.Sprintf("Resize to at least %dx%d", minWidth, minHeight),
		})
		return
	}
	if g.state == nil {
		return
	}

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	area := screen.Centered(gridWidth, minHeight)
	hud := g.visibleHUD()

	g.renderTop(dst, area, hud)
	g.renderGrid(dst, area)
	for i, line := range summaryLines(hud, dst.Width()) {
		dst.DrawTextCentered(area.Y+1+maze.Rows+i, line)
	}

	if len(g.modals) > 0 {
		g.renderOverlay(dst, area, g.modals[0])
	}
}

// visibleHUD keeps showing the finished level's numbers while its closing
// message is up.
func (g *Game) visibleHUD() maze.HUD {
	if g.state.Status() == maze.StatusIdle && len(g.modals) > 0 && g.modals[0].kind != modalLoadError {
		return g.state.LastHUD()
	}
	return g.state.HUD()
}

// summaryLines fits the score line into width, splitting it in two halves
// when it does not fit on one row.
func summaryLines(hud maze.HUD, width int) []string {
	line := hud.Summary()
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}
	fields := hud.Fields()
	half := len(fields) / 2
	return []string{
		strings.Join(fields[:half], maze.SummarySep),
		strings.Join(fields[half:], maze.SummarySep),
	}
}

// renderTop draws the lives and the level clock.
func (g *Game) renderTop(dst *core.Screen, area core.Rect, hud maze.HUD) {
	label := "Lives: "
	dst.DrawText(area.X, area.Y, label)
	x := area.X + len(label)
	for range max(hud.Lives, 0) {
		dst.DrawTextColored(x, area.Y, g.opts.Theme.Heart, core.ColorBrightRed)
		x += utf8.RuneCountInString(g.opts.Theme.Heart)
	}

	clock := hud.Clock()
	color := core.ColorDefault
	if hud.TimeLeft <= 10 && hud.LevelScore > 0 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(area.Right()-len(clock), area.Y, clock, color)
}

// renderGrid draws every cell as a two-column glyph.
func (g *Game) renderGrid(dst *core.Screen, area core.Rect) {
	grid := g.state.Grid()
	player := g.state.Player()
	enemies := g.state.Enemies()
	scared := g.state.Powers() > 0

	for y := range maze.Rows {
		for x := range maze.Cols {
			cell := grid.Get(maze.Pos{X: x, Y: y})
			glyph, color := g.glyph(cell, player, enemies, scared)
			dst.DrawTextColored(area.X+x*config.GlyphWidth, area.Y+1+y, glyph, color)
		}
	}
}

func (g *Game) glyph(c maze.Cell, player maze.Entity, enemies [maze.EnemyCount]maze.Entity, scared bool) (string, core.Color) {
	theme := g.opts.Theme

	switch {
	case c == maze.CellWall:
		return theme.Wall, core.ColorBlue
	case c == maze.CellPellet:
		return theme.Pellet, core.ColorWhite
	case c == maze.CellPower:
		return theme.Power, core.ColorBrightYellow
	case c == maze.CellPlayer:
		return playerGlyph(theme, player), core.ColorBrightYellow
	case c.IsEnemy():
		return enemyGlyph(theme, c, enemies, scared)
	}
	return theme.Empty, core.ColorDefault
}

func playerGlyph(theme config.Theme, p maze.Entity) string {
	d := p.Dir
	if d == maze.DirNone {
		d = p.Facing
	}
	switch d {
	case maze.DirUp:
		return theme.PlayerUp
	case maze.DirDown:
		return theme.PlayerDown
	case maze.DirLeft:
		return theme.PlayerLeft
	default:
		return theme.PlayerRight
	}
}

// enemyGlyph puts the facing marker on the side the enemy is heading. While
// the player holds power-ups enemies are drawn lower-case in blue.
func enemyGlyph(theme config.Theme, c maze.Cell, enemies [maze.EnemyCount]maze.Entity, scared bool) (string, core.Color) {
	letter := c.String()
	color := enemyColors[c]
	if scared {
		letter = string(unicode.ToLower(rune(c)))
		color = core.ColorBrightBlue
	}

	facing := maze.DirLeft
	for _, e := range enemies {
		if e.Letter == c {
			facing = e.Facing
			break
		}
	}
	if facing == maze.DirRight {
		return letter + theme.EnemyRight, color
	}
	return theme.EnemyLeft + letter, color
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, m modal) {
	lines := []string{m.title}
	if m.detail != "" {
		lines = append(lines, m.detail)
	}
	lines = append(lines, m.footer)

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := min(maxLen+4, dst.Width())
	boxH := len(lines)*2 + 1
	box := area.Centered(boxW, boxH)
	box.X = core.Clamp(box.X, 0, max(dst.Width()-boxW, 0))

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColored(box.Y+1+i*2, l, color)
	}
}
