package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotmaze/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play dot maze",
	Long: `Start a game straight away, skipping the menu.

Controls:
  Arrows/WASD  - Move
  Space/P      - Pause
  Esc          - Back to the shell (while paused or after game over)
  Ctrl+S       - Save a text screenshot to ~/.dotmaze/screenshots
  Q/Ctrl+C     - Quit

Any key dismisses a message box.

Examples:
  dotmaze play
  dotmaze play --seed 42 --mute
  dotmaze play --level-dir ./levels --config ./dotmaze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := terminalConfig()
	if err != nil {
		fatal("%v", err)
	}

	a, err := newApp(cmd, appOptions{})
	if err != nil {
		fatal("%v", err)
	}

	store := a.openStore()

	_, runErr := tui.Run(a.newGame(), store, cfg, playerName())

	// Close before potential exit
	if store != nil {
		store.Close()
	}
	a.Close()

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
