// garden is a terminal gardening game: keep plants watered, lit and safe
// from hazards while the weather changes.
//
// Usage:
//
//	garden play              - Play in the terminal
//	garden sim               - Let the automatic gardener play headless
//	garden scores [level]    - Show the leaderboard and lifetime stats
//	garden tools [name]      - List or describe tools
//	garden serve             - Start the SSH server (and optional HTTP API)
//
// Global flags:
//
//	--difficulty <name>  - easy, normal, hard or tutorial (default: normal)
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.garden/results.db)
//	--config <path>      - Use a custom garden.yaml
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "garden",
	Short: "TUI Garden - grow plants in your terminal",
	Long: `TUI Garden is a terminal gardening game. Keep your plants watered and
lit, fend off bugs, birds, weeds, bunnies, moles and meteors, and harvest
fruit while the weather changes.

Available commands:
  play     - Play a game
  sim      - Watch the automatic gardener play headless
  scores   - View the leaderboard and lifetime stats
  tools    - List the tools and what they do
  serve    - Start SSH server for remote play

Examples:
  garden play
  garden play --difficulty tutorial
  garden sim --duration 5m --skill 0.9
  garden scores hard
  garden tools scarecrow
  garden serve --ssh :2222 --http :8080`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.garden/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom garden config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty: easy, normal, hard, tutorial")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(serveCmd)
}
