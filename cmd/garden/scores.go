package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/platform/tui"
	"github.com/vovakirdan/tui-garden/internal/storage"
)

var flagScoresInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the leaderboard and lifetime stats",
	Long: `Display the top results for a difficulty (default: --difficulty) and the
totals of every game ever saved.

Examples:
  garden scores
  garden scores hard
  garden scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse the leaderboard in a TUI")
}

func runScores(_ *cobra.Command, args []string) error {
	name := flagDifficulty
	if len(args) == 1 {
		name = args[0]
	}
	d, err := config.ParseDifficulty(name)
	if err != nil {
		return err
	}
	cfg, err := config.LoadGarden(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath, storage.WithMaxGamesStored(cfg.Leaderboard.MaxGamesStored))
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunLeaderboard(store, d, cfg.Leaderboard.Count, width, height)
	}

	return printScores(os.Stdout, store, d, cfg.Leaderboard.Count)
}

func printScores(w io.Writer, store *storage.Store, d config.Difficulty, limit int) error {
	results, err := store.TopResults(d, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Leaderboard - %s\n\n", d.Title())
	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintf(w, "\nPlay 'garden play --difficulty %s' to set the first result!\n", d)
	} else {
		fmt.Fprintf(w, "  %-4s  %-7s  %-7s  %-5s  %-6s  %s\n", "Rank", "Score", "Hazards", "Fruit", "Deaths", "Date")
		fmt.Fprintf(w, "  %-4s  %-7s  %-7s  %-5s  %-6s  %s\n", "----", "-----", "-------", "-----", "------", "----")
		for i, e := range results {
			fmt.Fprintf(w, "  %-4d  %-7d  %-7d  %-5d  %-6d  %s\n",
				i+1, e.Score, e.HazardsDefeated, e.FruitHarvested, e.Deaths,
				e.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.LifetimeStats()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nLifetime: %d games, %d points, %d hazards defeated, %d fruit harvested, %d plants lost\n",
		stats.Games, stats.Score, stats.HazardsDefeated, stats.FruitHarvested, stats.Deaths)
	return nil
}
