// Package levels provides the level files for dotmaze: plain text mazes
// named 1.txt, 2.txt, ... read from a directory or from the set compiled
// into the binary.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/dotmaze/internal/games/dotmaze/maze"
)

//go:embed defaults/*.txt
var defaultLevels embed.FS

// ErrNoLevelDir is returned by Open when an explicitly requested level
// directory does not exist.
var ErrNoLevelDir = errors.New("level directory not found")

// Source is a maze.LevelSource that can describe where it reads from.
type Source interface {
	maze.LevelSource
	String() string
}

// Dir reads levels from a directory on disk.
type Dir struct {
	Root string
}

// NewDir creates a directory source.
func NewDir(root string) *Dir {
	return &Dir{Root: root}
}

// Lines reads <root>/<level>.txt.
func (d *Dir) Lines(level int) ([]string, error) {
	return readLines(os.DirFS(d.Root), level)
}

func (d *Dir) String() string {
	return d.Root
}

// Embedded serves the built-in levels.
type Embedded struct{}

// Lines reads a built-in level.
func (Embedded) Lines(level int) ([]string, error) {
	sub, err := fs.Sub(defaultLevels, "defaults")
	if err != nil {
		return nil, err
	}
	return readLines(sub, level)
}

func (Embedded) String() string {
	return "built-in levels"
}

// Open picks the level source for root. A missing directory falls back to
// the built-in levels unless the caller asked for it explicitly.
func Open(root string, explicit bool) (Source, error) {
	info, err := os.Stat(root)
	switch {
	case err == nil && info.IsDir():
		return NewDir(root), nil
	case err == nil:
		return nil, fmt.Errorf("%s is not a directory", root)
	case explicit:
		return nil, fmt.Errorf("%w: %s", ErrNoLevelDir, root)
	default:
		return Embedded{}, nil
	}
}

// FileName returns the file name of a level.
func FileName(level int) string {
	return fmt.Sprintf("%d.txt", level)
}

func readLines(fsys fs.FS, level int) ([]string, error) {
	name := FileName(level)
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading level file %s: %w", name, err)
	}
	text := strings.TrimRight(string(data), "\n")
	return strings.Split(text, "\n"), nil
}

// Info summarises one level for listings.
type Info struct {
	Level   int
	Pellets int
	Powers  int
	Target  int
	Time    int
	Err     error
}

// Inspect parses levels 1..len(times) from src.
func Inspect(src maze.LevelSource, times []int) []Info {
	infos := make([]Info, 0, len(times))
	for i, t := range times {
		info := Info{Level: i + 1, Time: t}
		lines, err := src.Lines(info.Level)
		if err == nil {
			var g *maze.Grid
			g, err = maze.ParseLevel(lines)
			if err == nil {
				info.Pellets = g.Count(maze.CellPellet)
				info.Powers = g.Count(maze.CellPower)
				info.Target = g.TargetScore()
			}
		}
		info.Err = err
		infos = append(infos, info)
	}
	return infos
}

// Clock formats a time budget as mm:ss.
func (i Info) Clock() string {
	return maze.HUD{TimeLeft: i.Time}.Clock()
}

// Path returns where a level file lives inside a directory source.
func Path(root string, level int) string {
	return filepath.Join(root, FileName(level))
}
