package core

import "testing"

func TestBoxEdges(t *testing.T) {
	b := NewBox(10, 20, 4, 6)

	if c := b.Center(); c != (Vec{X: 10, Y: 20}) {
		t.Errorf("Expected center (10, 20), got %v", c)
	}
	if top := b.TopCenter(); top != (Vec{X: 10, Y: 17}) {
		t.Errorf("Expected top center (10, 17), got %v", top)
	}
	if bottom := b.BottomCenter(); bottom != (Vec{X: 10, Y: 23}) {
		t.Errorf("Expected bottom center (10, 23), got %v", bottom)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{50, 0, 100, 50},
		{-0.5, 0, 100, 0},
		{100.1, 0, 100, 100},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	a := Vec{0, 0}
	b := Vec{10, 20}

	if got := Lerp(a, b, 0.5); got != (Vec{5, 10}) {
		t.Errorf("Expected midpoint (5, 10), got %v", got)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Expected t > 1 to clamp to end, got %v", got)
	}
}
