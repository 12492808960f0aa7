package garden

import (
	"math"

	"github.com/vovakirdan/tui-garden/internal/core"
)

// Plant is the vital-sign state of one living plant.
type Plant struct {
	ID              int
	Levels          map[Status]float64
	FruitProgress   float64
	FruitStage      FruitGrowthStage
	ActiveHazardIDs []int // Spawn order
	ShouldDestroy   bool  // Health collapsed; removed on the next tick
	Inactive        bool  // Until the first full tick, tools have no effect
	Handle          any   // Frontend handle supplied to AddPlant
}

// Level returns the current value of a status.
func (p *Plant) Level(status Status) float64 {
	return p.Levels[status]
}

// UpdateStatusLevel adds delta to a level and clamps it. Health reaching the
// minimum marks the plant for destruction; other statuses never kill.
func (s *Session) UpdateStatusLevel(p *Plant, status Status, delta float64) {
	level := core.ClampF(p.Levels[status]+delta, s.MinLevel(), s.MaxLevel())
	p.Levels[status] = level
	if status == StatusHealth && level <= s.MinLevel() {
		p.ShouldDestroy = true
	}
}

// SetFruitProgress clamps and stores fruit progress. A fruit-growth event is
// published only when the growth stage changes.
func (s *Session) SetFruitProgress(p *Plant, value float64) {
	p.FruitProgress = core.ClampF(value, s.MinLevel(), s.MaxLevel())
	stage := s.fruitStageFor(p.FruitProgress)
	if stage != p.FruitStage {
		p.FruitStage = stage
		s.bus.FruitGrowth.Publish(p)
	}
}

func (s *Session) fruitStageFor(progress float64) FruitGrowthStage {
	th := s.cfg.Fruit.StageThresholds
	limit := func(i int) float64 {
		return s.MaxLevel() * float64(th[i]) / 100
	}
	switch {
	case progress >= limit(2):
		return FruitFullyGrown
	case progress >= limit(1):
		return FruitMedium
	case progress >= limit(0):
		return FruitSmall
	default:
		return FruitNone
	}
}

// HarvestFruit resets the fruit unconditionally. Callers check the stage.
func (s *Session) HarvestFruit(p *Plant) {
	p.FruitProgress = s.MinLevel()
	p.FruitStage = FruitNone
	s.bus.FruitHarvest.Publish(p)
}

// NumWarningStatus counts how many of water and light are in their warning
// zone. Health is a consequence of warnings and never counts.
func (s *Session) NumWarningStatus(p *Plant) int {
	n := 0
	for _, status := range []Status{StatusWater, StatusLight} {
		if s.IsInWarningZone(status, p.Levels[status]) {
			n++
		}
	}
	return n
}

// IsFruitGrowthPaused reports whether fruit cannot grow: a status is warning,
// the fruit is fully grown, or an active hazard sits on the plant.
func (s *Session) IsFruitGrowthPaused(p *Plant) bool {
	if s.NumWarningStatus(p) > 0 || p.FruitStage == FruitFullyGrown {
		return true
	}
	return s.hasActiveHazard(p)
}

// FruitProgressRate returns fruit progress per second. Full health doubles it.
func (s *Session) FruitProgressRate(p *Plant) float64 {
	rate := s.cfg.Fruit.ProgressRate
	if p.Levels[StatusHealth] >= s.MaxLevel() {
		rate *= 2
	}
	return rate
}

// updatePlant advances one plant by dt milliseconds.
func (s *Session) updatePlant(p *Plant, dt float64) {
	secs := dt / 1000.0

	if s.tutorial.WaterEnabled() {
		s.UpdateStatusLevel(p, StatusWater, -s.WaterDecayRate()*secs)
	}
	if s.tutorial.LightEnabled() {
		s.UpdateStatusLevel(p, StatusLight, -s.LightDecayRate()*secs)
	}

	if s.tutorial.HealthEnabled() {
		warnings := s.NumWarningStatus(p)
		delta := -s.constantHazardDamage(p) * secs
		delta -= s.cfg.Health.DecayRateBase * float64(warnings) * secs
		// Health only regenerates while nothing is hurting the plant
		if warnings == 0 && !s.hasActiveHazard(p) {
			delta += s.cfg.Health.RegenRate * secs
		}
		if delta != 0 {
			s.UpdateStatusLevel(p, StatusHealth, delta)
		}
	}

	if s.tutorial.FruitEnabled() && !s.IsFruitGrowthPaused(p) {
		s.SetFruitProgress(p, p.FruitProgress+s.FruitProgressRate(p)*secs)
	}

	p.Inactive = false
}

// scoreBump returns the periodic score gain for the live plants.
func (s *Session) scoreBump() int {
	total := 0.0
	for _, id := range s.PlantIDs() {
		p := s.plants[id]
		total += s.cfg.Scoring.MaxBumpPerPlant * p.Levels[StatusHealth] / s.MaxLevel()
	}
	return int(math.Floor(total))
}
