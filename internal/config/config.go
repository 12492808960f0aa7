// Package config provides YAML-based garden configuration loading, validation
// and difficulty presets.
package config

// GardenConfig contains every tunable parameter of the garden simulation.
// It is loaded once at startup and treated as immutable afterwards.
type GardenConfig struct {
	Levels       LevelsConfig                    `yaml:"levels"`
	Statuses     map[string]StatusConfig         `yaml:"statuses" validate:"required,dive"`
	Fruit        FruitConfig                     `yaml:"fruit"`
	Health       HealthConfig                    `yaml:"health"`
	Weather      WeatherConfig                   `yaml:"weather"`
	Hazards      map[string]HazardConfig         `yaml:"hazards" validate:"required,dive"`
	HazardRange  float64                         `yaml:"hazard_position_range" validate:"gte=0"` // Spread of hazard start/end points around a plant
	Tools        map[string]ToolConfig           `yaml:"tools" validate:"required,dive"`
	Difficulties map[Difficulty]DifficultyConfig `yaml:"difficulties" validate:"required,dive"`
	Scoring      ScoringConfig                   `yaml:"scoring"`
	Tutorial     TutorialConfig                  `yaml:"tutorial"`
	Leaderboard  LeaderboardConfig               `yaml:"leaderboard"`
	Invincible   bool                            `yaml:"invincible"` // Plants never die (debugging)
}

// LevelsConfig defines the clamped range of every plant level and the
// values a new plant starts with.
type LevelsConfig struct {
	Min           float64 `yaml:"min" validate:"gte=0"`
	Max           float64 `yaml:"max" validate:"gtfield=Min"`
	DefaultWater  float64 `yaml:"default_water" validate:"gtefield=Min,ltefield=Max"`
	DefaultLight  float64 `yaml:"default_light" validate:"gtefield=Min,ltefield=Max"`
	DefaultHealth float64 `yaml:"default_health" validate:"gtfield=Min,ltefield=Max"`
}

// StatusConfig defines the warning zone of a single status.
type StatusConfig struct {
	LowWarning  float64 `yaml:"low_warning" validate:"gte=0"`
	HighWarning float64 `yaml:"high_warning" validate:"gte=0"`
	WarnHigh    bool    `yaml:"warn_high"` // Whether exceeding HighWarning counts as a warning
}

// FruitConfig defines fruit growth parameters.
type FruitConfig struct {
	StageThresholds []int   `yaml:"stage_thresholds" validate:"len=3,dive,gt=0,lte=100"` // Percent of max for small, medium, fully grown
	ProgressRate    float64 `yaml:"progress_rate" validate:"gt=0"`                       // Progress per second
	HarvestBonus    int     `yaml:"harvest_bonus" validate:"gte=0"`                      // Points granted per harvest
}

// HealthConfig defines how health reacts to warnings.
type HealthConfig struct {
	DecayRateBase float64 `yaml:"decay_rate_base" validate:"gte=0"` // Health lost per second per warning
	RegenRate     float64 `yaml:"regen_rate" validate:"gte=0"`      // Health gained per second while healthy
}

// WeatherConfig defines the weather rotation.
type WeatherConfig struct {
	DurationMs   float64               `yaml:"duration_ms" validate:"gt=0"`
	QueueLength  int                   `yaml:"queue_length" validate:"gte=1"`
	Default      string                `yaml:"default" validate:"required"`
	AvoidRepeats bool                  `yaml:"avoid_repeats"`
	DecayRates   map[string]DecayRates `yaml:"decay_rates" validate:"required,dive"`
}

// DecayRates is the per-second decay of water and light for a weather.
// Negative values make the level rise.
type DecayRates struct {
	Water float64 `yaml:"water"`
	Light float64 `yaml:"light"`
}

// HazardConfig defines the static properties of a hazard kind.
type HazardConfig struct {
	Motion               string  `yaml:"motion" validate:"oneof=walk swoop grow"`
	Type                 string  `yaml:"type" validate:"oneof=constant impact"`
	TimeToActiveMs       float64 `yaml:"time_to_active_ms" validate:"gte=0"`
	Damage               float64 `yaml:"damage" validate:"gte=0"` // Per second for constant hazards, once for impact hazards
	HasApproachAnimation bool    `yaml:"has_approach_animation"`
}

// ToolConfig defines the static properties of a tool.
type ToolConfig struct {
	Category string  `yaml:"category" validate:"oneof=water light growth harvest hazardremoval"`
	Delta    float64 `yaml:"delta"`
	Target   string  `yaml:"target" validate:"required_if=Category hazardremoval"`
}

// DifficultyConfig holds the per-difficulty multipliers.
type DifficultyConfig struct {
	DecayMultiplier     float64   `yaml:"decay_multiplier" validate:"gt=0"`
	HazardGapMultiplier float64   `yaml:"hazard_gap_multiplier" validate:"gt=0,lte=1"`
	HazardGap           GapConfig `yaml:"hazard_gap"`
	Plants              int       `yaml:"plants" validate:"gte=1"`
}

// GapConfig is the range of time between hazards, and the floor it shrinks to.
type GapConfig struct {
	Base    RangeConfig `yaml:"base"`
	Minimum RangeConfig `yaml:"minimum"`
}

// RangeConfig is a [Low, High] millisecond range.
type RangeConfig struct {
	Low  float64 `yaml:"low" validate:"gt=0"`
	High float64 `yaml:"high" validate:"gtefield=Low"`
}

// ScoringConfig defines the periodic score bump.
type ScoringConfig struct {
	BumpIntervalMs  float64 `yaml:"bump_interval_ms" validate:"gt=0"`
	MaxBumpPerPlant float64 `yaml:"max_bump_per_plant" validate:"gte=0"`
}

// TutorialConfig defines at which tutorial step each subsystem turns on.
type TutorialConfig struct {
	StartPoints TutorialStartPoints `yaml:"start_points"`
	Hazards     map[string]int      `yaml:"hazards" validate:"required,dive,gte=0"` // Hazard kind -> step that scripts it
}

// TutorialStartPoints lists the first tutorial step of each subsystem.
type TutorialStartPoints struct {
	Tools   int `yaml:"tools" validate:"gte=0"`
	Water   int `yaml:"water" validate:"gte=0"`
	Light   int `yaml:"light" validate:"gte=0"`
	Fruit   int `yaml:"fruit" validate:"gte=0"`
	Health  int `yaml:"health" validate:"gte=0"`
	Weather int `yaml:"weather" validate:"gte=0"`
	Score   int `yaml:"score" validate:"gte=0"`
}

// LeaderboardConfig defines how many results are shown and ranked.
type LeaderboardConfig struct {
	Count          int `yaml:"count" validate:"gte=1"`
	MaxGamesStored int `yaml:"max_games_stored" validate:"gtefield=Count"`
}

// Settings are player preferences broadcast through the settings-changed event.
type Settings struct {
	MusicVolume  float64 `yaml:"music_volume"`
	SfxVolume    float64 `yaml:"sfx_volume"`
	ShowControls bool    `yaml:"show_controls"`
}

// DefaultSettings returns the settings a new player starts with.
func DefaultSettings() Settings {
	return Settings{
		MusicVolume:  0.5,
		SfxVolume:    0.8,
		ShowControls: true,
	}
}

// Muted reports whether every sound is turned off.
func (s Settings) Muted() bool {
	return s.MusicVolume == 0 && s.SfxVolume == 0
}
