package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-garden/internal/bot"
	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/garden"
	"github.com/vovakirdan/tui-garden/internal/storage"
)

func TestSimulateStopsAtDuration(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	s := garden.NewSession(cfg, config.DifficultyEasy, garden.WithSeed(3))
	g := bot.New(1, 3)

	result, elapsed := simulate(s, g, 60_000, 100)

	assert.Equal(t, 60_000.0, elapsed)
	assert.Zero(t, result.Deaths, "a perfect gardener keeps the easy plant alive for a minute")
	assert.Positive(t, result.Score)
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	s := garden.NewSession(cfg, config.DifficultyNormal, garden.WithSeed(3))

	result, elapsed := simulate(s, bot.New(0, 3), 3_600_000, 250)

	assert.Less(t, elapsed, 3_600_000.0)
	assert.True(t, s.GameOver())
	assert.Equal(t, 2, result.Deaths)
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	defer store.Close()

	var out bytes.Buffer
	require.NoError(t, printScores(&out, store, config.DifficultyHard, 5))
	assert.Contains(t, out.String(), "No games recorded yet.")

	_, err = store.SaveResult(config.DifficultyHard, garden.GameResult{Score: 321, HazardsDefeated: 4})
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, printScores(&out, store, config.DifficultyHard, 5))
	assert.Contains(t, out.String(), "Leaderboard - Hard")
	assert.Contains(t, out.String(), "321")
	assert.Contains(t, out.String(), "Lifetime: 1 games, 321 points, 4 hazards defeated")
}

func TestDescribeTool(t *testing.T) {
	rules := garden.NewRules(config.DefaultGardenConfig())

	var out bytes.Buffer
	describeTool(&out, rules, garden.ToolScarecrow)
	assert.Contains(t, out.String(), "Scarecrow (key 7)")
	assert.Contains(t, out.String(), "Removes: Bird")

	out.Reset()
	describeTool(&out, rules, garden.ToolWateringCan)
	assert.Contains(t, out.String(), "Change: +25")
}

func TestLoadGardenRejectsUnknownDifficulty(t *testing.T) {
	flagConfig = ""
	flagDifficulty = "nightmare"
	t.Cleanup(func() { flagDifficulty = "normal" })
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")

	_, _, err := loadGarden()
	assert.ErrorIs(t, err, config.ErrUnknownDifficulty)
}
