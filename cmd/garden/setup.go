package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/garden"
	"github.com/vovakirdan/tui-garden/internal/storage"
)

// newLogger builds the process logger from --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "garden",
		Level:           level,
	}), nil
}

// loadGarden loads and checks the garden config and resolves --difficulty.
func loadGarden() (config.GardenConfig, config.Difficulty, error) {
	cfg, err := config.LoadGarden(flagConfig)
	if err != nil {
		return config.GardenConfig{}, "", err
	}
	if err := garden.CheckConfig(cfg); err != nil {
		return config.GardenConfig{}, "", err
	}
	d, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.GardenConfig{}, "", err
	}
	return cfg, d, nil
}

// openStore opens the results database. The game still works without it,
// so failures are logged and a nil store is returned.
func openStore(cfg config.GardenConfig, logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath, storage.WithMaxGamesStored(cfg.Leaderboard.MaxGamesStored))
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
