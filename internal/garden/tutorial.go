package garden

import "github.com/vovakirdan/tui-garden/internal/config"

// Tutorial gates simulation subsystems behind a step counter.
// When disabled every subsystem is on.
type Tutorial struct {
	Enabled       bool
	Step          int
	HazardSpawned bool // The scripted hazard of the current step already fired

	points  config.TutorialStartPoints
	hazards map[string]int
}

// DisabledTutorial returns a gate with every subsystem enabled.
func DisabledTutorial() Tutorial {
	return Tutorial{Step: -1}
}

// NewTutorial returns an enabled gate at step 0.
func NewTutorial(cfg config.TutorialConfig) Tutorial {
	return Tutorial{
		Enabled: true,
		points:  cfg.StartPoints,
		hazards: cfg.Hazards,
	}
}

// Advance moves to the next step and re-arms the scripted hazard.
func (t *Tutorial) Advance() {
	t.Step++
	t.HazardSpawned = false
}

func (t Tutorial) reached(step int) bool {
	return !t.Enabled || t.Step >= step
}

// ToolsEnabled reports whether the toolbar is available.
func (t Tutorial) ToolsEnabled() bool { return t.reached(t.points.Tools) }

// WaterEnabled reports whether water decays.
func (t Tutorial) WaterEnabled() bool { return t.reached(t.points.Water) }

// LightEnabled reports whether light decays.
func (t Tutorial) LightEnabled() bool { return t.reached(t.points.Light) }

// FruitEnabled reports whether fruit grows.
func (t Tutorial) FruitEnabled() bool { return t.reached(t.points.Fruit) }

// HealthEnabled reports whether health reacts to warnings and hazards.
func (t Tutorial) HealthEnabled() bool { return t.reached(t.points.Health) }

// WeatherEnabled reports whether the weather rotates.
func (t Tutorial) WeatherEnabled() bool { return t.reached(t.points.Weather) }

// ScoreEnabled reports whether the periodic score bump runs.
func (t Tutorial) ScoreEnabled() bool { return t.reached(t.points.Score) }

// PendingHazard returns the scripted hazard of the current step, if it has
// not fired yet. It does not mark the hazard as spawned.
func (t Tutorial) PendingHazard() (Hazard, bool) {
	if !t.Enabled || t.HazardSpawned {
		return "", false
	}
	for _, h := range AllHazards() {
		if step, ok := t.hazards[string(h)]; ok && step == t.Step {
			return h, true
		}
	}
	return "", false
}
