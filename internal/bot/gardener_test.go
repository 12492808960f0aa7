package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/garden"
)

func newSession(t *testing.T, d config.Difficulty) *garden.Session {
	t.Helper()
	cfg := config.DefaultGardenConfig()
	require.NoError(t, garden.CheckConfig(cfg))
	return garden.NewSession(cfg, d, garden.WithSeed(2024))
}

func TestDecideNothingWithoutPlants(t *testing.T) {
	s := newSession(t, config.DifficultyNormal)
	_, ok := New(1, 1).Decide(s)
	assert.False(t, ok)
}

func TestDecideHarvestsBeforeFertilizing(t *testing.T) {
	s := newSession(t, config.DifficultyNormal)
	p := s.AddPlant(nil)
	s.Update(16)

	g := New(1, 1)
	a, ok := g.Decide(s)
	require.True(t, ok)
	assert.Equal(t, garden.ToolFertilizer, a.Tool)

	s.SetFruitProgress(p, s.MaxLevel())
	a, ok = g.Decide(s)
	require.True(t, ok)
	assert.Equal(t, Action{Tool: garden.ToolBasket, PlantID: p.ID}, a)
	assert.Equal(t, garden.ToolBasket, Apply(s, a))
	assert.Equal(t, 1, s.Result().FruitHarvested)
}

func TestDecideCorrectsLevels(t *testing.T) {
	tests := []struct {
		name     string
		water    float64
		light    float64
		expected garden.Tool
	}{
		{"dry plant gets water", 15, 50, garden.ToolWateringCan},
		{"dark plant gets light", 50, 22, garden.ToolLamp},
		{"flooded plant is drained", 90, 50, garden.ToolDrain},
		{"bright plant gets shade", 50, 85, garden.ToolBlackHole},
		{"driest level wins", 25, 12, garden.ToolLamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, config.DifficultyNormal)
			p := s.AddPlant(nil)
			s.Update(16)
			p.Levels[garden.StatusWater] = tt.water
			p.Levels[garden.StatusLight] = tt.light

			a, ok := New(1, 1).Decide(s)
			require.True(t, ok)
			assert.Equal(t, tt.expected, a.Tool)
			assert.Equal(t, p.ID, a.PlantID)
		})
	}
}

func TestDecideClearsActiveHazard(t *testing.T) {
	s := newSession(t, config.DifficultyTutorial)
	p := s.AddPlant(nil)
	for s.Tutorial().Step < 5 {
		s.AdvanceTutorial()
	}
	s.Update(16) // scripted bird arrives
	require.Len(t, p.ActiveHazardIDs, 1)
	g := New(1, 1)

	// Constant hazards are left alone while approaching
	a, ok := g.Decide(s)
	require.True(t, ok)
	assert.NotEqual(t, garden.ToolScarecrow, a.Tool)

	s.Update(s.TimeToActive(garden.HazardBird))
	a, ok = g.Decide(s)
	require.True(t, ok)
	assert.Equal(t, Action{Tool: garden.ToolScarecrow, PlantID: p.ID}, a)
	assert.Equal(t, garden.ToolScarecrow, Apply(s, a))
	assert.Equal(t, 1, s.NumHazardsDefeated())
	assert.Empty(t, p.ActiveHazardIDs)
}

func TestDecideClicksApproachingMeteor(t *testing.T) {
	s := newSession(t, config.DifficultyTutorial)
	p := s.AddPlant(nil)
	for s.Tutorial().Step < 10 {
		s.AdvanceTutorial()
	}
	s.Update(16) // scripted meteor arrives
	require.Len(t, p.ActiveHazardIDs, 1)
	id := p.ActiveHazardIDs[0]

	a, ok := New(1, 1).Decide(s)
	require.True(t, ok)
	assert.Equal(t, Action{Tool: garden.ToolMissile, HazardID: id}, a)
	assert.Equal(t, garden.ToolMissile, Apply(s, a))
	_, exists := s.Hazard(id)
	assert.False(t, exists)
}

func TestSkillZeroNeverActs(t *testing.T) {
	s := newSession(t, config.DifficultyNormal)
	s.AddPlants()
	g := New(0, 1)

	for range 100 {
		assert.Equal(t, garden.ToolNone, g.Step(s, 500))
		s.Update(500)
	}
}

func TestStepWaitsForDecisionInterval(t *testing.T) {
	s := newSession(t, config.DifficultyNormal)
	s.AddPlant(nil)
	s.Update(16)
	g := New(1, 1)

	assert.Equal(t, garden.ToolNone, g.Step(s, DefaultDecisionMs/2))
	assert.Equal(t, garden.ToolFertilizer, g.Step(s, DefaultDecisionMs/2))
}

func TestSkilledGardenerKeepsPlantsAlive(t *testing.T) {
	play := func(skill float64) garden.GameResult {
		s := newSession(t, config.DifficultyNormal)
		s.AddPlants()
		g := New(skill, 99)
		for range 6000 { // 300 seconds
			g.Step(s, 50)
			s.Update(50)
			if s.GameOver() {
				break
			}
		}
		return s.Result()
	}

	idle := play(0)
	skilled := play(1)

	assert.Equal(t, 2, idle.Deaths, "an untended garden dies")
	assert.Zero(t, skilled.Deaths)
	assert.Greater(t, skilled.Score, idle.Score)
	assert.Positive(t, skilled.HazardsDefeated)
	assert.Positive(t, skilled.FruitHarvested)
}
