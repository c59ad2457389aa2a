// dotmaze is a dot-maze arcade game for the terminal.
//
// Usage:
//
//	dotmaze                  - Start the menu
//	dotmaze play             - Play straight away
//	dotmaze levels           - Check the level files
//	dotmaze scores           - Show high scores
//	dotmaze serve            - Start SSH server for remote play
//
// Global flags:
//
//	--trace <path>        - Append log output to a file
//	--debug-level <0..9>  - Log verbosity (default: 3)
//	--img-dir <dir>       - Sprite theme directory
//	--level-dir <dir>     - Level files directory
//	--font-dir <dir>      - Font directory
//	--audio-dir <dir>     - Sound directory
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path|dsn>       - Scores database (default: ~/.dotmaze/scores.db)
//	--config <path>       - Custom config YAML
//	--mute                - Disable music and sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotmaze/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagTrace      string
	flagDebugLevel int
	flagImgDir     string
	flagLevelDir   string
	flagFontDir    string
	flagAudioDir   string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "dotmaze",
	Short:   "Dot maze - eat the pellets, dodge the ghosts",
	Version: version,
	Long: `Dot maze is a terminal arcade game: clear every pellet of a 16x16 maze
before the clock runs out while four ghosts roam the corridors. Power
pellets let you eat the ghosts.

Available commands:
  play     - Start a game directly
  levels   - Check the level files
  scores   - View high scores
  serve    - Start SSH server for remote play

Running dotmaze without a command opens the menu.

Examples:
  dotmaze
  dotmaze play --level-dir ./my-levels
  dotmaze play --trace dotmaze.log --debug-level 5
  dotmaze serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagTrace, "trace", "", "Append log output to this file")
	pf.IntVar(&flagDebugLevel, "debug-level", logging.DefaultDebugLevel, "Log verbosity 0..9 (0 = silent, 5+ = debug)")
	pf.StringVar(&flagImgDir, "img-dir", "", "Directory with sprites.yaml (default from config)")
	pf.StringVar(&flagLevelDir, "level-dir", "", "Directory with level files 1.txt..N.txt (default from config)")
	pf.StringVar(&flagFontDir, "font-dir", "", "Font directory (default from config)")
	pf.StringVar(&flagAudioDir, "audio-dir", "", "Directory with music/ and sfx/ (default from config)")
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Scores database path or postgres:// DSN (default from config)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.BoolVar(&flagMute, "mute", false, "Disable music and sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// fatal prints an error and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
