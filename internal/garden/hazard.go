package garden

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-garden/internal/core"
)

// ActiveHazard is a spawned hazard attached to one plant.
// It is approaching while TimeUntilActiveMs > 0 and active afterwards.
type ActiveHazard struct {
	ID                int
	Hazard            Hazard
	TimeUntilActiveMs float64
	TargetPlantID     int
}

// IsActive reports whether the hazard finished its approach.
func (h *ActiveHazard) IsActive() bool {
	return h.TimeUntilActiveMs <= 0
}

// nextHazardDuration draws the gap until the next hazard. The range shrinks
// with every hazard defeated down to the difficulty's minimum.
func (s *Session) nextHazardDuration() float64 {
	low, high := s.diff.HazardGapRange(s.numHazardsDefeated)
	return core.RandomInRange(s.rng, low, high)
}

// spawnHazards runs the spawn check for one tick.
func (s *Session) spawnHazards(dt float64) {
	// Tutorial mode only spawns its scripted hazards, immediately
	if s.tutorial.Enabled {
		kind, ok := s.tutorial.PendingHazard()
		if !ok || len(s.plants) == 0 {
			return
		}
		s.tutorial.HazardSpawned = true
		target := s.randomPlant()
		if s.plantHasHazard(target, kind) {
			s.logger.Debug("tutorial hazard already on plant", "hazard", kind, "plant", target.ID)
			return
		}
		s.spawnHazard(kind, target)
		return
	}

	s.currentHazardDurationMs += dt
	if s.currentHazardDurationMs < s.nextHazardDurationMs || len(s.plants) == 0 {
		return
	}
	s.currentHazardDurationMs = 0
	s.nextHazardDurationMs = s.nextHazardDuration()

	target := s.randomPlant()
	kinds := AllHazards()
	core.Shuffle(s.rng, kinds)
	for _, kind := range kinds {
		if !s.plantHasHazard(target, kind) {
			s.spawnHazard(kind, target)
			return
		}
	}
	// Every kind is already on the target; skip this spawn
	s.logger.Debug("no eligible hazard", "plant", target.ID)
}

// randomPlant picks a live plant uniformly. There must be at least one.
func (s *Session) randomPlant() *Plant {
	ids := s.PlantIDs()
	core.Shuffle(s.rng, ids)
	return s.plants[ids[0]]
}

func (s *Session) plantHasHazard(p *Plant, kind Hazard) bool {
	for _, id := range p.ActiveHazardIDs {
		if h, ok := s.hazards[id]; ok && h.Hazard == kind {
			return true
		}
	}
	return false
}

func (s *Session) spawnHazard(kind Hazard, target *Plant) *ActiveHazard {
	h := &ActiveHazard{
		ID:                s.newID(),
		Hazard:            kind,
		TimeUntilActiveMs: s.TimeToActive(kind),
		TargetPlantID:     target.ID,
	}
	s.hazards[h.ID] = h
	target.ActiveHazardIDs = append(target.ActiveHazardIDs, h.ID)
	s.logger.Debug("hazard spawned", "id", h.ID, "hazard", kind, "plant", target.ID,
		"next_in_ms", int(s.nextHazardDurationMs))
	s.bus.HazardCreated.Publish(h.ID)
	return h
}

// updateHazards counts down approaching hazards and resolves impacts.
func (s *Session) updateHazards(dt float64) {
	for _, id := range s.HazardIDs() {
		h, ok := s.hazards[id]
		if !ok {
			continue
		}
		if h.TimeUntilActiveMs > 0 {
			h.TimeUntilActiveMs -= dt
		}
		if !h.IsActive() || s.HazardType(h.Hazard) != HazardImpact {
			continue
		}
		s.bus.HazardImpact.Publish(h.ID)
		if p, ok := s.plants[h.TargetPlantID]; ok {
			s.UpdateStatusLevel(p, StatusHealth, -s.HazardDamage(h.Hazard))
		}
		s.RemoveHazardByID(h.ID)
	}
}

// hasActiveHazard reports whether any hazard on the plant finished its approach.
func (s *Session) hasActiveHazard(p *Plant) bool {
	for _, id := range p.ActiveHazardIDs {
		if h, ok := s.hazards[id]; ok && h.IsActive() {
			return true
		}
	}
	return false
}

// constantHazardDamage sums the per-second damage of active constant hazards.
func (s *Session) constantHazardDamage(p *Plant) float64 {
	total := 0.0
	for _, id := range p.ActiveHazardIDs {
		h, ok := s.hazards[id]
		if ok && h.IsActive() && s.HazardType(h.Hazard) == HazardConstant {
			total += s.HazardDamage(h.Hazard)
		}
	}
	return total
}

// RemoveHazardByType removes every active hazard of the kind from the plant.
// Approaching hazards are untouched. When nothing matched but the plant has
// hazards, a wrong-tool event is published. Returns the number removed.
func (s *Session) RemoveHazardByType(p *Plant, kind Hazard) int {
	removed := 0
	for _, id := range slices.Clone(p.ActiveHazardIDs) {
		h, ok := s.hazards[id]
		if ok && h.Hazard == kind && h.IsActive() {
			s.RemoveHazardByID(id)
			removed++
		}
	}
	if removed == 0 && len(p.ActiveHazardIDs) > 0 {
		s.bus.WrongTool.Publish(struct{}{})
	}
	return removed
}

// RemoveHazardByID removes one hazard from both the session and its plant.
// Returns false if the hazard no longer exists.
func (s *Session) RemoveHazardByID(id int) bool {
	h, ok := s.hazards[id]
	if !ok {
		return false
	}
	if p, ok := s.plants[h.TargetPlantID]; ok {
		p.ActiveHazardIDs = slices.DeleteFunc(p.ActiveHazardIDs, func(x int) bool { return x == id })
	}
	delete(s.hazards, id)
	s.logger.Debug("hazard removed", "id", id, "hazard", h.Hazard, "plant", h.TargetPlantID)
	s.bus.HazardDestroyed.Publish(id)
	return true
}

// HazardPath is the straight line a frontend animates a hazard along.
type HazardPath struct {
	Start core.Vec
	End   core.Vec
}

// NewHazardPath returns the approach path of a hazard toward a plant. Points
// are jittered by up to spread/2 around the plant. Walkers come in from the
// left edge, swoopers dive from the top-left corner, growers rise from below.
func NewHazardPath(plant core.Box, motion HazardMotion, spread float64, rng *rand.Rand) HazardPath {
	jitter := func() float64 {
		return core.RandomInRange(rng, -spread/2, spread/2)
	}
	path := HazardPath{End: plant.Center()}

	switch motion {
	case MotionWalk:
		path.Start.Y = plant.Y + jitter()
		path.End.Y = path.Start.Y
		path.End.X = plant.X + jitter()
	case MotionSwoop:
		path.End.Y = plant.TopCenter().Y
		path.End.X = plant.X + jitter()
	case MotionGrow:
		bottom := plant.BottomCenter().Y
		path.Start.X = plant.X + jitter()
		path.End.X = path.Start.X
		path.Start.Y = bottom + plant.H
		path.End.Y = bottom - plant.H*0.3
	}
	return path
}

// Progress returns how far along its path the hazard is, from 0 to 1.
func (s *Session) Progress(h *ActiveHazard) float64 {
	total := s.TimeToActive(h.Hazard)
	if total <= 0 {
		return 1
	}
	return core.ClampF(1-h.TimeUntilActiveMs/total, 0, 1)
}
