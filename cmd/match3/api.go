package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/web"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the leaderboard over HTTP",
	Long: `Start a read-only JSON API over the scores database.

Endpoints:
  GET /health
  GET /api/v1/games
  GET /api/v1/scores/{mode}?limit=N
  GET /api/v1/stats/{mode}
  GET /api/v1/rounds/{mode}?limit=N
  GET /api/v1/sessions/{id}/rounds

Examples:
  match3 api
  match3 api --addr :9000 --db postgres://match3@localhost/match3?sslmode=disable`,
	SilenceUsage: true,
	RunE:         runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "match3-api")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()
	logger.Info("scores database ready", "dialect", store.Dialect())

	cfg := web.DefaultServerConfig()
	cfg.Address = flagAPIAddr
	if err := web.NewServer(cfg, store, logger).ListenAndServe(); err != nil {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}
