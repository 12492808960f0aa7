package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/garden"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	// Reopening runs migrations again without error
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	store.Close()
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveResult(config.DifficultyNormal, garden.GameResult{Score: score}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	// Different difficulty
	if _, err := store.SaveResult(config.DifficultyHard, garden.GameResult{Score: 500}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.TopResults(config.DifficultyNormal, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if results[i].Score != want {
			t.Errorf("Expected result %d to be %d, got %d", i, want, results[i].Score)
		}
		if results[i].Difficulty != config.DifficultyNormal {
			t.Errorf("Expected difficulty normal, got %s", results[i].Difficulty)
		}
		if results[i].ID == "" {
			t.Error("Expected result to have an ID")
		}
	}

	hard, err := store.TopResults(config.DifficultyHard, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(hard) != 1 || hard[0].Score != 500 {
		t.Errorf("Expected one hard result of 500, got %v", hard)
	}
}

func TestStorePlacement(t *testing.T) {
	store := openTestStore(t, WithMaxGamesStored(3))

	tests := []struct {
		score    int
		expected int
	}{
		{100, 1},
		{50, 2},
		{100, 1}, // ties rank the newer game first
		{10, 0},  // fourth best is outside the stored three
		{75, 3},
	}

	for _, tc := range tests {
		p, err := store.SaveResult(config.DifficultyEasy, garden.GameResult{Score: tc.score})
		if err != nil {
			t.Fatalf("SaveResult(%d) failed: %v", tc.score, err)
		}
		if p.Rank != tc.expected {
			t.Errorf("SaveResult(%d) rank = %d, expected %d", tc.score, p.Rank, tc.expected)
		}
	}

	results, err := store.TopResults(config.DifficultyEasy, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected leaderboard trimmed to 3, got %d", len(results))
	}
	if results[2].Score != 75 {
		t.Errorf("Expected last stored score 75, got %d", results[2].Score)
	}
}

func TestStoreTieOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveResult(config.DifficultyNormal, garden.GameResult{Score: 10})
	second, _ := store.SaveResult(config.DifficultyNormal, garden.GameResult{Score: 10})

	results, err := store.TopResults(config.DifficultyNormal, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if results[0].ID != second.ID || results[1].ID != first.ID {
		t.Error("Expected newer result first on equal scores")
	}
}

func TestStoreCacheInvalidatedOnWrite(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(config.DifficultyNormal, garden.GameResult{Score: 10})
	before, _ := store.TopResults(config.DifficultyNormal, 5)
	if len(before) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(before))
	}

	store.SaveResult(config.DifficultyNormal, garden.GameResult{Score: 20})
	after, _ := store.TopResults(config.DifficultyNormal, 5)
	if len(after) != 2 {
		t.Errorf("Expected cache to be purged after save, got %d results", len(after))
	}

	if err := store.ClearResults(config.DifficultyNormal); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	cleared, _ := store.TopResults(config.DifficultyNormal, 5)
	if len(cleared) != 0 {
		t.Errorf("Expected no results after clear, got %d", len(cleared))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	high, err := store.HighScore(config.DifficultyNormal)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty leaderboard, got %d", high)
	}

	store.SaveResult(config.DifficultyNormal, garden.GameResult{Score: 100})
	store.SaveResult(config.DifficultyNormal, garden.GameResult{Score: 300})

	high, err = store.HighScore(config.DifficultyNormal)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreLifetimeStats(t *testing.T) {
	store := openTestStore(t, WithMaxGamesStored(1))

	stats, err := store.LifetimeStats()
	if err != nil {
		t.Fatalf("LifetimeStats() failed: %v", err)
	}
	if stats.Games != 0 {
		t.Errorf("Expected no games, got %d", stats.Games)
	}

	store.SaveResult(config.DifficultyNormal, garden.GameResult{Score: 100, HazardsDefeated: 3, FruitHarvested: 2, Deaths: 2})
	store.SaveResult(config.DifficultyHard, garden.GameResult{Score: 50, HazardsDefeated: 1, Deaths: 3})
	// Trimmed from the leaderboard but still counted
	store.SaveResult(config.DifficultyHard, garden.GameResult{Score: 10, FruitHarvested: 1, Deaths: 3})
	store.ClearResults(config.DifficultyNormal)

	stats, err = store.LifetimeStats()
	if err != nil {
		t.Fatalf("LifetimeStats() failed: %v", err)
	}
	expected := LifetimeStats{
		Games: 3,
		GameResult: garden.GameResult{
			Score:           160,
			HazardsDefeated: 4,
			FruitHarvested:  3,
			Deaths:          8,
		},
	}
	if stats != expected {
		t.Errorf("Expected lifetime stats %+v, got %+v", expected, stats)
	}
}
