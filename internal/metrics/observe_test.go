package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/garden"
)

func TestObserveCountsSessionEvents(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	require.NoError(t, garden.CheckConfig(cfg))
	s := garden.NewSession(cfg, config.DifficultyTutorial, garden.WithSeed(7))
	Observe(s)

	meteor := string(garden.HazardMeteor)
	spawned := testutil.ToFloat64(HazardsSpawned.WithLabelValues(meteor))
	impacts := testutil.ToFloat64(HazardImpacts.WithLabelValues(meteor))
	destroyed := testutil.ToFloat64(HazardsDestroyed)
	wrong := testutil.ToFloat64(WrongToolUses)

	p := s.AddPlant(nil)
	for s.Tutorial().Step < 10 {
		s.AdvanceTutorial()
	}
	s.Update(16) // scripted meteor
	s.Update(s.TimeToActive(garden.HazardMeteor))

	assert.Equal(t, spawned+1, testutil.ToFloat64(HazardsSpawned.WithLabelValues(meteor)))
	assert.Equal(t, impacts+1, testutil.ToFloat64(HazardImpacts.WithLabelValues(meteor)))
	assert.Equal(t, destroyed+1, testutil.ToFloat64(HazardsDestroyed))

	require.True(t, s.SelectTool(garden.ToolBasket))
	assert.Equal(t, garden.ToolNone, s.UseSelectedTool(p))
	assert.Equal(t, wrong+1, testutil.ToFloat64(WrongToolUses))
}

func TestObserveCountsPlantDeaths(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	s := garden.NewSession(cfg, config.DifficultyNormal, garden.WithSeed(7))
	Observe(s)
	before := testutil.ToFloat64(PlantsDestroyed)

	p := s.AddPlant(nil)
	s.UpdateStatusLevel(p, garden.StatusHealth, -cfg.Levels.Max)
	s.Update(16)

	assert.Equal(t, before+1, testutil.ToFloat64(PlantsDestroyed))
}

func TestSessionGauge(t *testing.T) {
	before := testutil.ToFloat64(ActiveSessions)

	SessionStarted()
	assert.Equal(t, before+1, testutil.ToFloat64(ActiveSessions))

	SessionFinished(config.DifficultyEasy, garden.GameResult{Score: 120})
	assert.Equal(t, before, testutil.ToFloat64(ActiveSessions))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(FinalScore, MetricNameFinalScore), 1)
}
