package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dotmaze/internal/games/dotmaze/maze"
)

func TestEmbeddedLevelsAreValid(t *testing.T) {
	infos := Inspect(Embedded{}, maze.DefaultRules().LevelTimes)
	if len(infos) != 5 {
		t.Fatalf("Expected 5 levels, got %d", len(infos))
	}
	for _, info := range infos {
		if info.Err != nil {
			t.Errorf("Level %d: %v", info.Level, info.Err)
			continue
		}
		if info.Target != info.Pellets*maze.PelletPoints+info.Powers*maze.PowerPoints {
			t.Errorf("Level %d: target %d does not match contents", info.Level, info.Target)
		}
		if info.Powers == 0 {
			t.Errorf("Level %d has no power pellets", info.Level)
		}
	}
}

func TestEmbeddedLevelsAreFullSize(t *testing.T) {
	for level := 1; level <= 5; level++ {
		lines, err := Embedded{}.Lines(level)
		if err != nil {
			t.Fatalf("Lines(%d) failed: %v", level, err)
		}
		if len(lines) != maze.Rows {
			t.Errorf("Level %d: expected %d rows, got %d", level, maze.Rows, len(lines))
		}
		for i, l := range lines {
			if len(l) != maze.Cols {
				t.Errorf("Level %d row %d: expected %d columns, got %d", level, i, maze.Cols, len(l))
			}
		}
	}
}

func TestEmbeddedMissingLevel(t *testing.T) {
	if _, err := (Embedded{}).Lines(99); err == nil {
		t.Error("Expected error for a level that does not exist")
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	content := "################\r\n#H.R G B A.....#\r\n################\n"
	if err := os.WriteFile(Path(dir, 1), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	src, err := Open(dir, true)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if src.String() != dir {
		t.Errorf("Expected source %s, got %s", dir, src)
	}

	lines, err := src.Lines(1)
	if err != nil {
		t.Fatalf("Lines() failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	g, err := maze.ParseLevel(lines)
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}
	if g.Count(maze.CellPellet) != 6 {
		t.Errorf("Expected 6 pellets, got %d", g.Count(maze.CellPellet))
	}

	if _, err := src.Lines(2); err == nil {
		t.Error("Expected error for missing level file")
	}
}

func TestOpenFallback(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	src, err := Open(missing, false)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, ok := src.(Embedded); !ok {
		t.Errorf("Expected embedded fallback, got %T", src)
	}

	_, err = Open(missing, true)
	if !errors.Is(err, ErrNoLevelDir) {
		t.Errorf("Expected ErrNoLevelDir, got %v", err)
	}
}

func TestOpenRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "level.txt")
	if err := os.WriteFile(file, []byte("#"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Open(file, false); err == nil {
		t.Error("Expected error when the level path is a file")
	}
}

func TestInspectReportsBrokenLevel(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir, 1), []byte("#H..\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	infos := Inspect(NewDir(dir), []int{180, 120})
	if !errors.Is(infos[0].Err, maze.ErrNoEnemySpawn) {
		t.Errorf("Expected missing enemy error, got %v", infos[0].Err)
	}
	if infos[1].Err == nil {
		t.Error("Expected error for missing level 2")
	}
	if infos[1].Clock() != "02:00" {
		t.Errorf("Expected 02:00, got %s", infos[1].Clock())
	}
}
