// Package garden implements the garden simulation: plant vitals, the hazard
// engine, the weather cycle, tool effects, scoring and the tutorial gate.
//
// A Session is driven by a single loop calling Update once per frame. Player
// commands are plain method calls made between ticks. Nothing in this package
// is safe for concurrent use.
package garden

// Status is one of the clamped vital levels of a plant.
type Status string

const (
	StatusWater  Status = "water"
	StatusLight  Status = "light"
	StatusHealth Status = "health"
)

// AllStatuses returns every status in display order.
func AllStatuses() []Status {
	return []Status{StatusWater, StatusLight, StatusHealth}
}

// FruitGrowthStage is derived from fruit progress. Stages are ordered.
type FruitGrowthStage int

const (
	FruitNone FruitGrowthStage = iota
	FruitSmall
	FruitMedium
	FruitFullyGrown
)

// String returns the stage name.
func (s FruitGrowthStage) String() string {
	switch s {
	case FruitSmall:
		return "small"
	case FruitMedium:
		return "medium"
	case FruitFullyGrown:
		return "fully grown"
	default:
		return "none"
	}
}

// Hazard is a kind of threat that can target a plant.
type Hazard string

const (
	HazardBugs   Hazard = "bugs"
	HazardBird   Hazard = "bird"
	HazardWeeds  Hazard = "weeds"
	HazardBunny  Hazard = "bunny"
	HazardMeteor Hazard = "meteor"
	HazardMole   Hazard = "mole"
)

// AllHazards returns every hazard kind in a stable order.
func AllHazards() []Hazard {
	return []Hazard{HazardBird, HazardBugs, HazardWeeds, HazardBunny, HazardMeteor, HazardMole}
}

// Title returns a display name for the hazard.
func (h Hazard) Title() string {
	switch h {
	case HazardBugs:
		return "Bugs"
	case HazardBird:
		return "Bird"
	case HazardWeeds:
		return "Weeds"
	case HazardBunny:
		return "Bunny"
	case HazardMeteor:
		return "Meteor"
	case HazardMole:
		return "Mole"
	default:
		return string(h)
	}
}

// HazardMotion describes how a hazard approaches its plant.
type HazardMotion string

const (
	MotionWalk  HazardMotion = "walk"
	MotionSwoop HazardMotion = "swoop"
	MotionGrow  HazardMotion = "grow"
)

// HazardType describes how a hazard deals damage.
type HazardType string

const (
	// HazardConstant drains health every second while active.
	HazardConstant HazardType = "constant"
	// HazardImpact deals its damage once on activation and disappears.
	HazardImpact HazardType = "impact"
)

// Weather changes how fast water and light decay.
type Weather string

const (
	WeatherPartlyCloudy Weather = "partlyCloudy"
	WeatherCloudy       Weather = "cloudy"
	WeatherHeat         Weather = "heat"
	WeatherRain         Weather = "rain"
)

// AllWeathers returns every weather in a stable order.
func AllWeathers() []Weather {
	return []Weather{WeatherPartlyCloudy, WeatherCloudy, WeatherHeat, WeatherRain}
}

// Title returns a display name for the weather.
func (w Weather) Title() string {
	switch w {
	case WeatherPartlyCloudy:
		return "Partly Cloudy"
	case WeatherCloudy:
		return "Cloudy"
	case WeatherHeat:
		return "Heat"
	case WeatherRain:
		return "Rain"
	default:
		return string(w)
	}
}

// ToolCategory groups tools by the effect they have on a plant.
type ToolCategory string

const (
	CategoryWater         ToolCategory = "water"
	CategoryLight         ToolCategory = "light"
	CategoryGrowth        ToolCategory = "growth"
	CategoryHarvest       ToolCategory = "harvest"
	CategoryHazardRemoval ToolCategory = "hazardremoval"
)
