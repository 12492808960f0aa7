package metrics

// Metric names
const (
	MetricNameHazardsSpawned   = "garden_hazards_spawned_total"
	MetricNameHazardsDestroyed = "garden_hazards_destroyed_total"
	MetricNameHazardImpacts    = "garden_hazard_impacts_total"
	MetricNameWrongTool        = "garden_wrong_tool_total"
	MetricNamePlantsDestroyed  = "garden_plants_destroyed_total"
	MetricNameFruitHarvested   = "garden_fruit_harvested_total"
	MetricNameWeatherChanges   = "garden_weather_changes_total"
	MetricNameActiveSessions   = "garden_active_sessions"
	MetricNameFinalScore       = "garden_final_score"
)

// Help text
const (
	HelpTextHazardsSpawned   = "Number of hazards spawned by kind"
	HelpTextHazardsDestroyed = "Number of hazards removed before or after becoming active"
	HelpTextHazardImpacts    = "Number of impact hazards that hit a plant by kind"
	HelpTextWrongTool        = "Number of tool uses that had no effect"
	HelpTextPlantsDestroyed  = "Number of plants that died"
	HelpTextFruitHarvested   = "Number of fully grown fruit harvested"
	HelpTextWeatherChanges   = "Number of weather changes by new weather"
	HelpTextActiveSessions   = "Number of games currently running"
	HelpTextFinalScore       = "Score at the end of a game by difficulty"
)

// Labels
const (
	LabelHazard     = "hazard"
	LabelWeather    = "weather"
	LabelDifficulty = "difficulty"
)

// FinalScoreBuckets covers a short tutorial up to a long hard game.
var FinalScoreBuckets = []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000}
