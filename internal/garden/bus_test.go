package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-garden/internal/config"
)

func TestClearListenersKeepsSettings(t *testing.T) {
	bus := NewBus()
	var settings []config.Settings
	bus.Settings.Subscribe("background", func(ctx any, s config.Settings) {
		assert.Equal(t, "background", ctx)
		settings = append(settings, s)
	})
	bus.ScoreUpdate.Subscribe(nil, func(_ any, _ int) { t.Fatal("cleared listener called") })

	bus.ClearListeners()
	bus.ScoreUpdate.Publish(10)
	bus.PublishSettings(config.DefaultSettings())

	assert.Len(t, settings, 1)
	assert.Zero(t, bus.ScoreUpdate.Len())
}

func TestSessionUsesProvidedBus(t *testing.T) {
	bus := NewBus()
	resets := &counter{}
	bus.GameReset.Subscribe(nil, resets.inc)

	s := NewSession(config.DefaultGardenConfig(), config.DifficultyEasy, WithBus(bus), WithSeed(1))

	assert.Same(t, bus, s.Bus())
	assert.Equal(t, 1, resets.n, "NewSession resets once")
}
