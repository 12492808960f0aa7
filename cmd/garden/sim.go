package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-garden/internal/bot"
	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/garden"
	"github.com/vovakirdan/tui-garden/internal/metrics"
)

var (
	flagSimDuration time.Duration
	flagSimStep     time.Duration
	flagSimSkill    float64
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the automatic gardener play headless",
	Long: `Run a game without a terminal UI. The automatic gardener clears hazards,
harvests fruit and keeps water and light out of the warning zones, hesitating
according to --skill. Every game event is logged; use --log-level info or
debug to see them.

The run stops when the duration elapses or every plant has died.

Examples:
  garden sim
  garden sim --duration 10m --skill 0.6 --difficulty hard
  garden sim --seed 7 --log-level debug
  garden sim --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 5*time.Minute, "Simulated play time")
	simCmd.Flags().DurationVar(&flagSimStep, "step", 100*time.Millisecond, "Simulation step")
	simCmd.Flags().Float64Var(&flagSimSkill, "skill", bot.DefaultSkill, "Gardener skill (0-1)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the result to the leaderboard")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg, d, err := loadGarden()
	if err != nil {
		return err
	}
	if flagSimStep <= 0 {
		return fmt.Errorf("--step must be positive")
	}

	s := garden.NewSession(cfg, d, garden.WithSeed(flagSeed), garden.WithLogger(logger))
	logEvents(s, logger)
	metrics.Observe(s)
	g := bot.New(flagSimSkill, flagSeed)

	result, elapsed := simulate(s, g, ms(flagSimDuration), ms(flagSimStep))
	printResult(os.Stdout, d, result, elapsed)

	if !flagSimSave {
		return nil
	}
	store := openStore(cfg, logger)
	if store == nil {
		return fmt.Errorf("cannot save: results database unavailable")
	}
	defer store.Close()

	placement, err := store.SaveResult(d, result)
	if err != nil {
		return err
	}
	if placement.Rank > 0 {
		fmt.Printf("Saved as #%d on the %s leaderboard\n", placement.Rank, d.Title())
	} else {
		fmt.Println("Saved (not a top result)")
	}
	return nil
}

// simulate plays a session until durationMs have passed or the game is over.
// It returns the result and the simulated time in milliseconds.
func simulate(s *garden.Session, g *bot.Gardener, durationMs, stepMs float64) (garden.GameResult, float64) {
	metrics.SessionStarted()
	s.AddPlants()

	var elapsed float64
	for elapsed < durationMs && !s.GameOver() {
		g.Step(s, stepMs)
		s.Update(stepMs)
		elapsed += stepMs
	}
	// Removes plants that died on the final step
	s.Update(0)

	result := s.Result()
	metrics.SessionFinished(s.Difficulty(), result)
	return result, elapsed
}

// logEvents reports every session event through the logger.
func logEvents(s *garden.Session, logger *log.Logger) {
	bus := s.Bus()
	bus.HazardCreated.Subscribe(s, func(ctx any, id int) {
		if h, ok := ctx.(*garden.Session).Hazard(id); ok {
			logger.Info("hazard appeared", "hazard", h.Hazard, "plant", h.TargetPlantID)
		}
	})
	bus.HazardImpact.Subscribe(s, func(ctx any, id int) {
		if h, ok := ctx.(*garden.Session).Hazard(id); ok {
			logger.Info("hazard impact", "hazard", h.Hazard, "plant", h.TargetPlantID)
		}
	})
	bus.HazardDestroyed.Subscribe(nil, func(_ any, id int) {
		logger.Debug("hazard gone", "id", id)
	})
	bus.FruitGrowth.Subscribe(nil, func(_ any, p *garden.Plant) {
		logger.Debug("fruit grew", "plant", p.ID, "stage", p.FruitStage)
	})
	bus.FruitHarvest.Subscribe(nil, func(_ any, p *garden.Plant) {
		logger.Info("fruit harvested", "plant", p.ID)
	})
	bus.PlantDestroy.Subscribe(nil, func(_ any, p *garden.Plant) {
		logger.Warn("plant died", "plant", p.ID)
	})
	bus.WeatherUpdate.Subscribe(nil, func(_ any, u garden.WeatherUpdate) {
		logger.Info("weather changed", "weather", u.Current, "next", u.Queue)
	})
	bus.WrongTool.Subscribe(nil, func(_ any, _ struct{}) {
		logger.Debug("tool had no effect")
	})
	bus.ScoreUpdate.Subscribe(nil, func(_ any, score int) {
		logger.Debug("score", "score", score)
	})
}

func printResult(w io.Writer, d config.Difficulty, r garden.GameResult, elapsedMs float64) {
	fmt.Fprintf(w, "Simulated %s on %s\n", time.Duration(elapsedMs*float64(time.Millisecond)).Round(time.Second), d.Title())
	fmt.Fprintf(w, "  Score:            %d\n", r.Score)
	fmt.Fprintf(w, "  Hazards defeated: %d\n", r.HazardsDefeated)
	fmt.Fprintf(w, "  Fruit harvested:  %d\n", r.FruitHarvested)
	fmt.Fprintf(w, "  Plants lost:      %d\n", r.Deaths)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
