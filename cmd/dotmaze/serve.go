package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotmaze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dot maze SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session and game with the menu.
Scores are stored per-server (all users share the same leaderboard).
Remote sessions have no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dotmaze/host_key

Examples:
  dotmaze serve                           # Listen on :23234 with auto-generated key
  dotmaze serve --ssh :2222               # Listen on port 2222
  dotmaze serve --host-key ./my_host_key  # Use specific host key
  dotmaze serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	a, err := newApp(cmd, appOptions{logPrefix: "dotmaze-ssh", stderr: true, silent: true})
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	if flagFPS <= 0 {
		fatal("--fps must be positive, got %d", flagFPS)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      a.cfg.Storage.DB,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		NewGame:     a.newGame,
		Levels:      a.source,
		Times:       a.cfg.Gameplay.LevelTimes,
		Logger:      a.logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting dot maze SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh -t localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}

// port extracts the port from a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
