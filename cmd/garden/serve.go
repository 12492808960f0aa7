package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-garden/internal/platform/httpapi"
	"github.com/vovakirdan/tui-garden/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the garden SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own garden on --difficulty. Results are stored
per-server (all users share the same leaderboard).

With --http, an HTTP listener also serves:
  /healthz                          - liveness probe
  /metrics                          - Prometheus metrics
  /api/v1/leaderboard/{difficulty}  - top results as JSON (?limit=N)
  /api/v1/stats                     - lifetime totals as JSON

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.garden/host_key

Examples:
  garden serve                           # Listen on :23234 with auto-generated key
  garden serve --ssh :2222               # Listen on port 2222
  garden serve --http :8080              # Also serve metrics and the leaderboard API
  garden serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP address for health, metrics and API (disabled if empty)")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg, d, err := loadGarden()
	if err != nil {
		return err
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Garden:      cfg,
		Difficulty:  d,
		TickRate:    flagFPS,
		Store:       store,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	running := 1
	if flagHTTPAddr != "" {
		// A nil *Store inside the interface would look like a live store
		var results httpapi.Results
		if store != nil {
			results = store
		}
		api := httpapi.New(flagHTTPAddr, httpapi.NewRouter(results, cfg.Leaderboard.Count, logger), logger)
		running++
		go func() { errCh <- api.Start(ctx) }()
	}
	go func() { errCh <- server.ListenAndServe(ctx) }()

	fmt.Printf("Starting garden SSH server on %s\n", flagSSHAddr)
	fmt.Println("Press Ctrl+C to stop")

	// The first failure stops the other listener too
	var firstErr error
	for range running {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}
	return firstErr
}
