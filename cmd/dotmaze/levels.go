package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotmaze/internal/games/dotmaze/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Check the level files",
	Long: `Parse every level and show its pellets, power pellets, target score
and time budget. Exits with status 1 when a level cannot be played.

Examples:
  dotmaze levels
  dotmaze levels --level-dir ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) {
	a, err := newApp(cmd, appOptions{stderr: true, silent: true})
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	infos := levels.Inspect(a.source, a.cfg.Gameplay.LevelTimes)

	fmt.Printf("Levels - %s\n", a.source)
	fmt.Println()
	fmt.Printf("  %-5s  %-7s  %-5s  %-6s  %-5s  %s\n", "Level", "Pellets", "Power", "Target", "Time", "Status")
	fmt.Printf("  %-5s  %-7s  %-5s  %-6s  %-5s  %s\n", "-----", "-------", "-----", "------", "----", "------")

	broken := 0
	for _, info := range infos {
		if info.Err != nil {
			broken++
			fmt.Printf("  %-5d  %-7s  %-5s  %-6s  %-5s  %v\n", info.Level, "-", "-", "-", info.Clock(), info.Err)
			continue
		}
		fmt.Printf("  %-5d  %-7d  %-5d  %-6d  %-5s  ok\n", info.Level, info.Pellets, info.Powers, info.Target, info.Clock())
	}

	if broken > 0 {
		fmt.Println()
		fatal("%d of %d levels cannot be loaded", broken, len(infos))
	}
}
