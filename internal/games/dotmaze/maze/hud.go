package maze

import (
	"fmt"
	"strings"
)

// SummarySep separates the fields of the score line.
const SummarySep = " | "

// HUD is the read-only summary shown around the maze.
type HUD struct {
	Level      int
	MaxLevel   int
	LevelScore int
	Target     int
	GameScore  int
	Powers     int
	TimeLeft   int
	Lives      int
}

// Clock formats the remaining time as mm:ss.
func (h HUD) Clock() string {
	t := max(h.TimeLeft, 0)
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// Fields returns the parts of the score line in display order.
func (h HUD) Fields() []string {
	return []string{
		fmt.Sprintf("Level: %d/%d", h.Level, h.MaxLevel),
		fmt.Sprintf("Level Score: %d", h.LevelScore),
		fmt.Sprintf("Total Game Score: %d", h.GameScore),
		fmt.Sprintf("Power: %d", h.Powers),
	}
}

// Summary is the score line shown under the maze.
func (h HUD) Summary() string {
	return strings.Join(h.Fields(), SummarySep)
}
