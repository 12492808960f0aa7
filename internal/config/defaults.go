package config

import (
	_ "embed"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultGardenConfig returns the default garden configuration.
// It mirrors defaults/garden.yaml and is used when the embedded file cannot be parsed.
func DefaultGardenConfig() GardenConfig {
	return GardenConfig{
		Levels: LevelsConfig{
			Min:           0,
			Max:           100,
			DefaultWater:  60,
			DefaultLight:  60,
			DefaultHealth: 100,
		},
		Statuses: map[string]StatusConfig{
			"water":  {LowWarning: 20, HighWarning: 80, WarnHigh: true},
			"light":  {LowWarning: 20, HighWarning: 80, WarnHigh: true},
			"health": {LowWarning: 30, HighWarning: 100, WarnHigh: false},
		},
		Fruit: FruitConfig{
			StageThresholds: []int{33, 66, 100},
			ProgressRate:    2.0,
			HarvestBonus:    100,
		},
		Health: HealthConfig{
			DecayRateBase: 2.0,
			RegenRate:     1.0,
		},
		Weather: WeatherConfig{
			DurationMs:   20000,
			QueueLength:  3,
			Default:      "partlyCloudy",
			AvoidRepeats: true,
			DecayRates: map[string]DecayRates{
				"partlyCloudy": {Water: 1.0, Light: 1.0},
				"cloudy":       {Water: 0.5, Light: 2.0},
				"heat":         {Water: 2.5, Light: -1.0},
				"rain":         {Water: -2.0, Light: 1.5},
			},
		},
		Hazards: map[string]HazardConfig{
			"bugs":   {Motion: "walk", Type: "constant", TimeToActiveMs: 3000, Damage: 1.5, HasApproachAnimation: true},
			"bird":   {Motion: "swoop", Type: "constant", TimeToActiveMs: 2500, Damage: 1.5, HasApproachAnimation: true},
			"weeds":  {Motion: "grow", Type: "constant", TimeToActiveMs: 4000, Damage: 1.0, HasApproachAnimation: true},
			"bunny":  {Motion: "walk", Type: "constant", TimeToActiveMs: 3500, Damage: 2.0, HasApproachAnimation: true},
			"meteor": {Motion: "swoop", Type: "impact", TimeToActiveMs: 5000, Damage: 40, HasApproachAnimation: true},
			"mole":   {Motion: "grow", Type: "constant", TimeToActiveMs: 3000, Damage: 2.0, HasApproachAnimation: false},
		},
		HazardRange: 6,
		Tools: map[string]ToolConfig{
			"wateringcan": {Category: "water", Delta: 25},
			"drain":       {Category: "water", Delta: -25},
			"lamp":        {Category: "light", Delta: 25},
			"blackhole":   {Category: "light", Delta: -25},
			"fertilizer":  {Category: "growth", Delta: 20},
			"basket":      {Category: "harvest"},
			"scarecrow":   {Category: "hazardremoval", Target: "bird"},
			"weedkiller":  {Category: "hazardremoval", Target: "weeds"},
			"pesticide":   {Category: "hazardremoval", Target: "bugs"},
			"dog":         {Category: "hazardremoval", Target: "bunny"},
			"missile":     {Category: "hazardremoval", Target: "meteor"},
			"hammer":      {Category: "hazardremoval", Target: "mole"},
		},
		Difficulties: map[Difficulty]DifficultyConfig{
			DifficultyEasy: {
				DecayMultiplier:     0.75,
				HazardGapMultiplier: 0.97,
				HazardGap: GapConfig{
					Base:    RangeConfig{Low: 20000, High: 30000},
					Minimum: RangeConfig{Low: 9000, High: 14000},
				},
				Plants: 1,
			},
			DifficultyNormal: {
				DecayMultiplier:     1.0,
				HazardGapMultiplier: 0.95,
				HazardGap: GapConfig{
					Base:    RangeConfig{Low: 15000, High: 25000},
					Minimum: RangeConfig{Low: 6000, High: 10000},
				},
				Plants: 2,
			},
			DifficultyHard: {
				DecayMultiplier:     1.4,
				HazardGapMultiplier: 0.92,
				HazardGap: GapConfig{
					Base:    RangeConfig{Low: 10000, High: 18000},
					Minimum: RangeConfig{Low: 4000, High: 7000},
				},
				Plants: 3,
			},
			DifficultyTutorial: {
				DecayMultiplier:     0.75,
				HazardGapMultiplier: 1.0,
				HazardGap: GapConfig{
					Base:    RangeConfig{Low: 5000, High: 5000},
					Minimum: RangeConfig{Low: 5000, High: 5000},
				},
				Plants: 1,
			},
		},
		Scoring: ScoringConfig{
			BumpIntervalMs:  1000,
			MaxBumpPerPlant: 10,
		},
		Tutorial: TutorialConfig{
			StartPoints: TutorialStartPoints{
				Tools:   1,
				Water:   1,
				Light:   2,
				Fruit:   3,
				Health:  4,
				Weather: 11,
				Score:   12,
			},
			Hazards: map[string]int{
				"bird":   5,
				"weeds":  6,
				"bugs":   7,
				"bunny":  8,
				"mole":   9,
				"meteor": 10,
			},
		},
		Leaderboard: LeaderboardConfig{
			Count:          5,
			MaxGamesStored: 25,
		},
		Invincible: false,
	}
}

// DefaultGardenYAML returns the embedded default configuration file.
func DefaultGardenYAML() []byte {
	return defaultGardenYAML
}
