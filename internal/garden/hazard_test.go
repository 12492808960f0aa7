package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
)

func TestHazardPathGeometry(t *testing.T) {
	plant := core.NewBox(40, 10, 6, 4)
	rng := core.NewRand(3)
	spread := 6.0

	walk := NewHazardPath(plant, MotionWalk, spread, rng)
	assert.Equal(t, 0.0, walk.Start.X)
	assert.Equal(t, walk.Start.Y, walk.End.Y, "walkers move horizontally")
	assert.InDelta(t, plant.Y, walk.Start.Y, spread/2)
	assert.InDelta(t, plant.X, walk.End.X, spread/2)

	swoop := NewHazardPath(plant, MotionSwoop, spread, rng)
	assert.Equal(t, core.Vec{}, swoop.Start)
	assert.Equal(t, plant.TopCenter().Y, swoop.End.Y)

	grow := NewHazardPath(plant, MotionGrow, spread, rng)
	assert.Equal(t, grow.Start.X, grow.End.X, "growers move vertically")
	assert.Greater(t, grow.Start.Y, grow.End.Y)
}

func TestHazardProgress(t *testing.T) {
	s := newTestSession(t, config.DifficultyNormal, nil)
	p := s.AddPlant(nil)
	h := s.spawnHazard(HazardBugs, p)

	assert.Equal(t, 0.0, s.Progress(h))
	s.Update(1500)
	assert.InDelta(t, 0.5, s.Progress(h), 1e-9)
	s.Update(5000)
	assert.Equal(t, 1.0, s.Progress(h))
	assert.True(t, h.IsActive())
}

func TestRemoveHazardByIDKeepsListsConsistent(t *testing.T) {
	s := newTestSession(t, config.DifficultyNormal, nil)
	p := s.AddPlant(nil)
	a := s.spawnHazard(HazardBugs, p)
	b := s.spawnHazard(HazardBird, p)
	c := s.spawnHazard(HazardMole, p)

	assert.True(t, s.RemoveHazardByID(b.ID))
	assert.Equal(t, []int{a.ID, c.ID}, p.ActiveHazardIDs)
	_, ok := s.Hazard(b.ID)
	assert.False(t, ok)

	assert.False(t, s.RemoveHazardByID(b.ID))
	checkHazardConsistency(t, s)
}
