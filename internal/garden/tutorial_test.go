package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-garden/internal/config"
)

func TestDisabledTutorialEnablesEverything(t *testing.T) {
	tut := DisabledTutorial()

	assert.True(t, tut.ToolsEnabled())
	assert.True(t, tut.WaterEnabled())
	assert.True(t, tut.LightEnabled())
	assert.True(t, tut.FruitEnabled())
	assert.True(t, tut.HealthEnabled())
	assert.True(t, tut.WeatherEnabled())
	assert.True(t, tut.ScoreEnabled())
	_, ok := tut.PendingHazard()
	assert.False(t, ok)
	assert.Len(t, EnabledTools(tut), len(AllTools()))
}

func TestTutorialGates(t *testing.T) {
	tut := NewTutorial(config.DefaultGardenConfig().Tutorial)

	assert.False(t, tut.ToolsEnabled())
	assert.Empty(t, EnabledTools(tut))

	tut.Advance() // step 1
	assert.True(t, tut.ToolsEnabled())
	assert.True(t, tut.WaterEnabled())
	assert.False(t, tut.LightEnabled())

	for tut.Step < 11 {
		tut.Advance()
	}
	assert.True(t, tut.WeatherEnabled())
	assert.False(t, tut.ScoreEnabled())
	tut.Advance()
	assert.True(t, tut.ScoreEnabled())
}

func TestTutorialScriptedHazards(t *testing.T) {
	tut := NewTutorial(config.DefaultGardenConfig().Tutorial)
	expected := map[int]Hazard{
		5:  HazardBird,
		6:  HazardWeeds,
		7:  HazardBugs,
		8:  HazardBunny,
		9:  HazardMole,
		10: HazardMeteor,
	}

	for step := 0; step <= 12; step++ {
		h, ok := tut.PendingHazard()
		want, scripted := expected[step]
		assert.Equal(t, scripted, ok, "step %d", step)
		if scripted {
			assert.Equal(t, want, h, "step %d", step)
			tut.HazardSpawned = true
			_, ok = tut.PendingHazard()
			assert.False(t, ok, "hazard fires once per step")
		}
		tut.Advance()
	}
}

func TestTutorialSession(t *testing.T) {
	s := newTestSession(t, config.DifficultyTutorial, nil)
	p := s.AddPlant(nil)

	assert.False(t, s.SelectTool(ToolLamp), "tools locked at step 0")

	s.Update(25000)
	assert.Equal(t, 60.0, p.Level(StatusWater), "water decay locked at step 0")
	assert.Equal(t, WeatherPartlyCloudy, s.Weather().Current, "weather locked")
	assert.Zero(t, s.Score(), "score locked")
	assert.Empty(t, s.HazardIDs(), "no unscripted hazards in tutorial")

	s.AdvanceTutorial()
	assert.True(t, s.SelectTool(ToolLamp))

	for s.Tutorial().Step < 5 {
		s.AdvanceTutorial()
	}
	created := 0
	s.Bus().HazardCreated.Subscribe(nil, func(_ any, _ int) { created++ })

	s.Update(16)
	s.Update(16)
	require.Equal(t, 1, created)
	h, ok := s.Hazard(s.HazardIDs()[0])
	require.True(t, ok)
	assert.Equal(t, HazardBird, h.Hazard)

	s.AdvanceTutorial()
	s.Update(16)
	assert.Equal(t, 2, created)
}

func TestTutorialHazardWaitsForPlant(t *testing.T) {
	s := newTestSession(t, config.DifficultyTutorial, nil)
	for s.Tutorial().Step < 5 {
		s.AdvanceTutorial()
	}

	s.Update(16)
	assert.False(t, s.Tutorial().HazardSpawned)

	s.AddPlant(nil)
	s.Update(16)
	assert.True(t, s.Tutorial().HazardSpawned)
	assert.Len(t, s.HazardIDs(), 1)
}
