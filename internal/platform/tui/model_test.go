package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/garden"
	"github.com/vovakirdan/tui-garden/internal/storage"
)

func newTestModel(t *testing.T, d config.Difficulty, store *storage.Store) GameModel {
	t.Helper()
	return NewGameModel(Options{
		Garden:     config.DefaultGardenConfig(),
		Difficulty: d,
		Runtime:    core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 42},
		Store:      store,
	})
}

func send(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(m GameModel) GameModel {
	return send(m, TickMsg(time.Now()))
}

func TestToolForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected garden.Tool
		ok       bool
	}{
		{"1", garden.ToolBasket, true},
		{"4", garden.ToolWateringCan, true},
		{"0", garden.ToolDog, true},
		{"=", garden.ToolMissile, true},
		{"a", garden.ToolNone, false},
	}

	for _, tc := range tests {
		tool, ok := ToolForKey(runes(tc.key))
		if tool != tc.expected || ok != tc.ok {
			t.Errorf("ToolForKey(%q) = (%q, %v), expected (%q, %v)", tc.key, tool, ok, tc.expected, tc.ok)
		}
		if ok && ToolKeyLabel(tool) != tc.key {
			t.Errorf("ToolKeyLabel(%q) = %q, expected %q", tool, ToolKeyLabel(tool), tc.key)
		}
	}
}

func TestGameModelWatersSelectedPlant(t *testing.T) {
	m := newTestModel(t, config.DifficultyNormal, nil)
	m = tick(m) // plants become active

	if got := len(m.Session().PlantIDs()); got != 2 {
		t.Fatalf("Expected 2 plants on normal, got %d", got)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(m, runes("4"))
	if m.Session().SelectedTool() != garden.ToolWateringCan {
		t.Fatalf("Expected watering can selected, got %q", m.Session().SelectedTool())
	}

	p := m.selectedPlant()
	if p.ID != m.Session().PlantIDs()[1] {
		t.Errorf("Expected the second plant to be selected")
	}
	before := p.Levels[garden.StatusWater]
	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	if after := p.Levels[garden.StatusWater]; after <= before {
		t.Errorf("Expected water to rise from %.1f, got %.1f", before, after)
	}
}

func TestGameModelPauseStopsTime(t *testing.T) {
	m := newTestModel(t, config.DifficultyNormal, nil)
	m = tick(m)
	p := m.selectedPlant()

	m = send(m, runes("p"))
	level := p.Levels[garden.StatusWater]
	for range 30 {
		m = tick(m)
	}
	if p.Levels[garden.StatusWater] != level {
		t.Error("Paused game should not advance")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("Paused view should say so")
	}

	m = send(m, runes("p"))
	m = tick(m)
	if p.Levels[garden.StatusWater] >= level {
		t.Error("Resumed game should drain water again")
	}
}

func TestGameModelTutorialLocksTools(t *testing.T) {
	m := newTestModel(t, config.DifficultyTutorial, nil)
	m = send(m, runes("4"))
	if m.Session().SelectedTool() != garden.ToolNone {
		t.Error("Tools should be locked at the first tutorial step")
	}

	m = send(m, runes("n"))
	m = send(m, runes("4"))
	if m.Session().SelectedTool() != garden.ToolWateringCan {
		t.Error("Tools should unlock after advancing the tutorial")
	}
}

func TestGameModelGameOverSavesResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, config.DifficultyEasy, store)
	m = tick(m)
	for _, p := range m.Session().Plants() {
		m.Session().UpdateStatusLevel(p, garden.StatusHealth, -1000)
	}
	m = tick(m)

	if !m.Finished() {
		t.Fatal("Expected game over after every plant died")
	}
	if m.Placement().Rank != 1 {
		t.Errorf("Expected first place, got rank %d", m.Placement().Rank)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("Game over view should show the title")
	}

	results, err := store.TopResults(config.DifficultyEasy, 5)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 || results[0].Deaths != 1 {
		t.Errorf("Expected one saved result with one death, got %+v", results)
	}

	m = send(m, runes("r"))
	if m.Finished() {
		t.Error("Retry should start a new game")
	}
	if len(m.Session().PlantIDs()) != 1 {
		t.Errorf("Expected a fresh plant after retry, got %d", len(m.Session().PlantIDs()))
	}
}

func TestGameModelWithoutStore(t *testing.T) {
	m := newTestModel(t, config.DifficultyEasy, nil)
	m = tick(m)
	for _, p := range m.Session().Plants() {
		m.Session().UpdateStatusLevel(p, garden.StatusHealth, -1000)
	}
	m = tick(m)

	if !m.Finished() {
		t.Fatal("Expected game over")
	}
	if !strings.Contains(m.View(), "not being saved") {
		t.Error("Expected a note that results are not saved")
	}
}

func TestGameModelSoundToggle(t *testing.T) {
	m := newTestModel(t, config.DifficultyNormal, nil)

	m = send(m, runes("m"))
	if !m.scene.settings.Muted() {
		t.Error("Expected sound to be muted")
	}
	m = send(m, runes("m"))
	if m.scene.settings.Muted() {
		t.Error("Expected sound to be back on")
	}
}

func TestSceneDrawsPlantsAndBars(t *testing.T) {
	m := newTestModel(t, config.DifficultyHard, nil)
	m = tick(m)
	m.View()

	text := m.canvas.String()
	if got := strings.Count(text, `\|/`); got != 3 {
		t.Errorf("Expected 3 plant sprites on hard, got %d", got)
	}
	if !strings.Contains(text, "Score") {
		t.Error("Expected the score in the HUD")
	}
	if !strings.Contains(text, "Basket") {
		t.Error("Expected the toolbar")
	}
}
