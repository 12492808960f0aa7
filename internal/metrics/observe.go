package metrics

import (
	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/garden"
)

// Observe subscribes the collectors to the session's bus. Hazard events
// only carry an id, so the kind is looked up on the session while the
// hazard still exists.
func Observe(s *garden.Session) {
	bus := s.Bus()

	bus.HazardCreated.Subscribe(s, func(ctx any, id int) {
		if h, ok := ctx.(*garden.Session).Hazard(id); ok {
			HazardsSpawned.WithLabelValues(string(h.Hazard)).Inc()
		}
	})
	bus.HazardImpact.Subscribe(s, func(ctx any, id int) {
		if h, ok := ctx.(*garden.Session).Hazard(id); ok {
			HazardImpacts.WithLabelValues(string(h.Hazard)).Inc()
		}
	})
	bus.HazardDestroyed.Subscribe(nil, func(_ any, _ int) {
		HazardsDestroyed.Inc()
	})
	bus.WrongTool.Subscribe(nil, func(_ any, _ struct{}) {
		WrongToolUses.Inc()
	})
	bus.PlantDestroy.Subscribe(nil, func(_ any, _ *garden.Plant) {
		PlantsDestroyed.Inc()
	})
	bus.FruitHarvest.Subscribe(nil, func(_ any, _ *garden.Plant) {
		FruitHarvested.Inc()
	})
	bus.WeatherUpdate.Subscribe(nil, func(_ any, u garden.WeatherUpdate) {
		WeatherChanges.WithLabelValues(string(u.Current)).Inc()
	})
}

// SessionStarted counts a running game.
func SessionStarted() {
	ActiveSessions.Inc()
}

// SessionFinished records the final score and releases the running game.
func SessionFinished(d config.Difficulty, r garden.GameResult) {
	ActiveSessions.Dec()
	FinalScore.WithLabelValues(string(d)).Observe(float64(r.Score))
}

// SessionAbandoned releases a running game that ended without a result.
func SessionAbandoned() {
	ActiveSessions.Dec()
}
