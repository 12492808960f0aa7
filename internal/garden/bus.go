package garden

import (
	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/events"
)

// Event kinds published on the Bus.
const (
	EventGameReset       events.Type = "game-reset"
	EventScoreUpdate     events.Type = "score-update"
	EventFruitGrowth     events.Type = "fruit-growth"
	EventFruitHarvest    events.Type = "fruit-harvest"
	EventPlantDestroy    events.Type = "plant-destroy"
	EventWeatherUpdate   events.Type = "weather-update"
	EventHazardCreated   events.Type = "hazard-created"
	EventHazardDestroyed events.Type = "hazard-destroyed"
	EventHazardImpact    events.Type = "hazard-impact"
	EventWrongTool       events.Type = "wrong-tool-used"
	EventSettings        events.Type = "settings-changed"
)

// WeatherUpdate is the payload of a weather change.
type WeatherUpdate struct {
	Current Weather
	Queue   []Weather // Copy of the lookahead queue
}

// Bus holds one typed topic per event kind a Session publishes.
type Bus struct {
	GameReset       *events.Signal
	ScoreUpdate     *events.Topic[int]
	FruitGrowth     *events.Topic[*Plant]
	FruitHarvest    *events.Topic[*Plant]
	PlantDestroy    *events.Topic[*Plant]
	WeatherUpdate   *events.Topic[WeatherUpdate]
	HazardCreated   *events.Topic[int]
	HazardDestroyed *events.Topic[int]
	HazardImpact    *events.Topic[int]
	WrongTool       *events.Signal

	// Settings listeners belong to long-lived frontends and survive ClearListeners.
	Settings *events.Topic[config.Settings]
}

// NewBus creates a bus with empty topics.
func NewBus() *Bus {
	return &Bus{
		GameReset:       events.NewSignal(EventGameReset),
		ScoreUpdate:     events.NewTopic[int](EventScoreUpdate),
		FruitGrowth:     events.NewTopic[*Plant](EventFruitGrowth),
		FruitHarvest:    events.NewTopic[*Plant](EventFruitHarvest),
		PlantDestroy:    events.NewTopic[*Plant](EventPlantDestroy),
		WeatherUpdate:   events.NewTopic[WeatherUpdate](EventWeatherUpdate),
		HazardCreated:   events.NewTopic[int](EventHazardCreated),
		HazardDestroyed: events.NewTopic[int](EventHazardDestroyed),
		HazardImpact:    events.NewTopic[int](EventHazardImpact),
		WrongTool:       events.NewSignal(EventWrongTool),
		Settings:        events.NewTopic[config.Settings](EventSettings),
	}
}

// ClearListeners removes every per-session listener. Settings listeners are kept.
func (b *Bus) ClearListeners() {
	b.GameReset.Clear()
	b.ScoreUpdate.Clear()
	b.FruitGrowth.Clear()
	b.FruitHarvest.Clear()
	b.PlantDestroy.Clear()
	b.WeatherUpdate.Clear()
	b.HazardCreated.Clear()
	b.HazardDestroyed.Clear()
	b.HazardImpact.Clear()
	b.WrongTool.Clear()
}

// PublishSettings broadcasts changed player settings.
func (b *Bus) PublishSettings(s config.Settings) {
	b.Settings.Publish(s)
}
