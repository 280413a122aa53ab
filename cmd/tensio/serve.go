package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tensio/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tensio SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own run. The high score is stored
per-server, so all players chase the same number.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key from the config (generated if missing)

Examples:
  tensio serve                           # Listen on the configured address
  tensio serve --ssh :2222               # Listen on port 2222
  tensio serve --host-key ./my_host_key  # Use specific host key
  tensio serve --db ./tensio.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}

	logger := newLogger(cfg, os.Stderr, "tensio-ssh")
	scores, closeScores := openScores(cfg, logger)
	defer closeScores()

	server, err := tui.NewSSHServer(cfg, scores, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		closeScores()
		os.Exit(1)
	}

	fmt.Printf("Starting Tensio SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		closeScores()
		os.Exit(1)
	}
}
