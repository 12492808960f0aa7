// Package bot implements an automatic gardener that plays a garden session
// through the same commands a player uses.
package bot

import (
	"math/rand"

	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/garden"
)

const (
	DefaultSkill      = 0.85 // Chance of acting on a decision (0-1, 1 = never hesitates)
	DefaultDecisionMs = 400  // Time between decisions
	levelMargin       = 10   // How close to a warning threshold the gardener reacts
)

// Action is one command the gardener decided to issue.
type Action struct {
	Tool     garden.Tool
	PlantID  int // Target plant, 0 for hazard clicks
	HazardID int // Clicked hazard, 0 for plant actions
}

// Gardener plays a session with skill-based imperfection.
type Gardener struct {
	Skill      float64
	DecisionMs float64

	rng     *rand.Rand
	elapsed float64
}

// New creates a gardener. A zero seed uses the current time.
func New(skill float64, seed int64) *Gardener {
	return &Gardener{
		Skill:      core.ClampF(skill, 0, 1),
		DecisionMs: DefaultDecisionMs,
		rng:        core.NewRand(seed),
	}
}

// Step advances the gardener's clock and issues at most one command when a
// decision is due. It returns the tool that had an effect, if any.
func (g *Gardener) Step(s *garden.Session, deltaMs float64) garden.Tool {
	g.elapsed += deltaMs
	if g.elapsed < g.DecisionMs {
		return garden.ToolNone
	}
	g.elapsed = 0

	// Hesitate like a human would
	if g.rng.Float64() >= g.Skill {
		return garden.ToolNone
	}
	a, ok := g.Decide(s)
	if !ok {
		return garden.ToolNone
	}
	return Apply(s, a)
}

// Decide picks the most urgent action without touching the session.
// Priority: hazards, harvest, warnings, then fertilizing.
func (g *Gardener) Decide(s *garden.Session) (Action, bool) {
	plants := s.Plants()
	if len(plants) == 0 {
		return Action{}, false
	}

	for _, p := range plants {
		if p.Inactive {
			continue
		}
		for _, h := range s.HazardsOn(p) {
			tool, ok := s.RemovalToolFor(h.Hazard)
			if !ok {
				continue
			}
			if h.IsActive() {
				return Action{Tool: tool, PlantID: p.ID}, true
			}
			// Impact hazards never sit active, so catch them on approach
			if s.HazardType(h.Hazard) == garden.HazardImpact {
				return Action{Tool: tool, HazardID: h.ID}, true
			}
		}
	}

	for _, p := range plants {
		if !p.Inactive && p.FruitStage == garden.FruitFullyGrown {
			return Action{Tool: garden.ToolBasket, PlantID: p.ID}, true
		}
	}

	if a, ok := g.mostUrgentLevel(s, plants); ok {
		return a, true
	}

	for _, p := range plants {
		if !p.Inactive && !s.IsFruitGrowthPaused(p) && p.FruitProgress < s.MaxLevel() {
			return Action{Tool: garden.ToolFertilizer, PlantID: p.ID}, true
		}
	}
	return Action{}, false
}

// mostUrgentLevel finds the water or light level closest to (or deepest
// into) a warning zone and the tool that corrects it.
func (g *Gardener) mostUrgentLevel(s *garden.Session, plants []*garden.Plant) (Action, bool) {
	cfg := s.Config()
	best := Action{}
	bestUrgency := 0.0

	type fix struct {
		status      garden.Status
		raise, drop garden.Tool
	}
	fixes := []fix{
		{garden.StatusWater, garden.ToolWateringCan, garden.ToolDrain},
		{garden.StatusLight, garden.ToolLamp, garden.ToolBlackHole},
	}

	for _, p := range plants {
		if p.Inactive {
			continue
		}
		for _, f := range fixes {
			sc := cfg.Statuses[string(f.status)]
			level := p.Level(f.status)

			if low := sc.LowWarning + levelMargin; level <= low {
				// Don't overshoot into the high warning zone
				if sc.WarnHigh && level+s.ToolDelta(f.raise) >= sc.HighWarning {
					continue
				}
				if urgency := low - level; urgency >= bestUrgency {
					best, bestUrgency = Action{Tool: f.raise, PlantID: p.ID}, urgency
				}
			}
			if !sc.WarnHigh {
				continue
			}
			if high := sc.HighWarning - levelMargin/2; level >= high {
				if level+s.ToolDelta(f.drop) <= sc.LowWarning {
					continue
				}
				if urgency := level - high; urgency >= bestUrgency {
					best, bestUrgency = Action{Tool: f.drop, PlantID: p.ID}, urgency
				}
			}
		}
	}
	return best, best.Tool != garden.ToolNone
}

// Apply issues the action through the session's command surface.
func Apply(s *garden.Session, a Action) garden.Tool {
	if !s.SelectTool(a.Tool) {
		return garden.ToolNone
	}
	if a.HazardID != 0 {
		if s.RemoveHazardIfRightToolSelected(a.HazardID) {
			return a.Tool
		}
		return garden.ToolNone
	}
	p, ok := s.Plant(a.PlantID)
	if !ok {
		return garden.ToolNone
	}
	return s.UseSelectedTool(p)
}
