package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a garden in the terminal.

Controls:
  ←/→ or h/l      - Select plant
  1-9, 0, -, =    - Select tool
  Space/Enter     - Use tool on the selected plant
  X               - Use tool on the selected plant's hazard
  N               - Next tutorial tip
  M               - Toggle sound
  P/Esc           - Pause
  R               - Retry (after game over)
  ?               - More keys
  Q/Ctrl+C        - Quit

Examples:
  garden play
  garden play --difficulty hard
  garden play --difficulty tutorial
  garden play --config ./my-garden.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var flagLogFile string

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alt screen owns the terminal, so logs only go to --log-file
	out := io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	cfg, d, err := loadGarden()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Garden:     cfg,
		Difficulty: d,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	})
}
