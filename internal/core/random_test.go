package core

import "testing"

func TestShuffleDeterminism(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := []int{1, 2, 3, 4, 5, 6, 7, 8}

	Shuffle(NewRand(42), a)
	Shuffle(NewRand(42), b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed produced different orders: %v vs %v", a, b)
		}
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	Shuffle(NewRand(7), items)

	seen := make(map[string]bool)
	for _, it := range items {
		seen[it] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected 4 distinct elements after shuffle, got %v", items)
	}
}

func TestRandomInRange(t *testing.T) {
	rng := NewRand(1)
	for i := 0; i < 1000; i++ {
		v := RandomInRange(rng, 5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("RandomInRange(5, 10) = %v, out of range", v)
		}
	}

	if v := RandomInRange(rng, 3, 3); v != 3 {
		t.Errorf("Expected empty range to return low, got %v", v)
	}
}

func TestTickMs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 50
	if got := cfg.TickMs(); got != 20 {
		t.Errorf("Expected 20ms per tick at 50 TPS, got %v", got)
	}
}
