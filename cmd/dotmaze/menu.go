package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotmaze/internal/games/dotmaze"
	"github.com/vovakirdan/dotmaze/internal/games/dotmaze/levels"
	"github.com/vovakirdan/dotmaze/internal/platform/tui"
)

// runMenu is the default command: menu, then game, scores or levels, then
// back to the menu until the user quits.
func runMenu(cmd *cobra.Command, _ []string) {
	cfg, err := terminalConfig()
	if err != nil {
		fatal("%v", err)
	}

	a, err := newApp(cmd, appOptions{})
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	game := a.newGame()
	player := playerName()

	for {
		menuResult, err := tui.RunMenu(store, dotmaze.GameID, cfg)
		if err != nil {
			a.logger.Error("menu failed", "err", err)
			fatal("%v", err)
		}
		cfg = menuResult.Config

		var goBack bool
		switch menuResult.Choice {
		case tui.ChoicePlay:
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			goBack, err = tui.Run(game, store, cfg, player)

		case tui.ChoiceScores:
			goBack, err = tui.RunScoreboard(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH)

		case tui.ChoiceLevels:
			infos := levels.Inspect(a.source, a.cfg.Gameplay.LevelTimes)
			goBack, err = tui.RunLevels(a.source.String(), infos, cfg.ScreenW, cfg.ScreenH)

		default:
			return
		}

		if err != nil {
			fatal("%v", err)
		}
		if !goBack {
			return
		}
	}
}
