package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name cannot be parsed.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Difficulty represents a named difficulty level. It is fixed for the
// lifetime of a game session.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyNormal   Difficulty = "normal"
	DifficultyHard     Difficulty = "hard"
	DifficultyTutorial Difficulty = "tutorial"
)

// AllDifficulties returns every difficulty in menu order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyTutorial}
}

// ParseDifficulty converts a user-supplied name into a Difficulty.
// An empty name selects normal.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal":
		return DifficultyNormal, nil
	case "easy":
		return DifficultyEasy, nil
	case "hard", "chaos":
		return DifficultyHard, nil
	case "tutorial":
		return DifficultyTutorial, nil
	default:
		return "", fmt.Errorf("%w %q (expected easy, normal, hard or tutorial)", ErrUnknownDifficulty, name)
	}
}

// Title returns a human-readable name for the difficulty.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	case DifficultyTutorial:
		return "Tutorial"
	default:
		return "Unknown"
	}
}

// IsTutorial reports whether the difficulty runs the scripted tutorial.
func (d Difficulty) IsTutorial() bool {
	return d == DifficultyTutorial
}

// HazardGapRange returns the [low, high] range, in milliseconds, from which
// the next gap between hazards is drawn. The gap shrinks exponentially with
// the number of hazards defeated and never drops below the configured minimum.
func (c DifficultyConfig) HazardGapRange(numHazardsDefeated int) (low, high float64) {
	factor := math.Pow(c.HazardGapMultiplier, float64(numHazardsDefeated))
	low = math.Max(c.HazardGap.Base.Low*factor, c.HazardGap.Minimum.Low)
	high = math.Max(c.HazardGap.Base.High*factor, c.HazardGap.Minimum.High)
	return low, high
}
