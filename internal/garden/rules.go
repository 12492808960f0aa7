package garden

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-garden/internal/config"
)

// Rules answers static lookups against the loaded configuration.
// Missing entries are a config-authoring defect caught by CheckConfig.
type Rules struct {
	cfg config.GardenConfig
}

// NewRules wraps a configuration for lookups.
func NewRules(cfg config.GardenConfig) Rules {
	return Rules{cfg: cfg}
}

// Config returns the underlying configuration.
func (r Rules) Config() config.GardenConfig {
	return r.cfg
}

// MinLevel returns the lowest value any level can take.
func (r Rules) MinLevel() float64 { return r.cfg.Levels.Min }

// MaxLevel returns the highest value any level can take.
func (r Rules) MaxLevel() float64 { return r.cfg.Levels.Max }

// HazardMotion returns how the hazard approaches its plant.
func (r Rules) HazardMotion(h Hazard) HazardMotion {
	return HazardMotion(r.cfg.Hazards[string(h)].Motion)
}

// HazardType returns how the hazard deals damage.
func (r Rules) HazardType(h Hazard) HazardType {
	return HazardType(r.cfg.Hazards[string(h)].Type)
}

// TimeToActive returns the approach time of the hazard in milliseconds.
func (r Rules) TimeToActive(h Hazard) float64 {
	return r.cfg.Hazards[string(h)].TimeToActiveMs
}

// HazardDamage returns health lost per second (constant) or once (impact).
func (r Rules) HazardDamage(h Hazard) float64 {
	return r.cfg.Hazards[string(h)].Damage
}

// HasApproachAnimation reports whether frontends should animate the approach.
func (r Rules) HasApproachAnimation(h Hazard) bool {
	return r.cfg.Hazards[string(h)].HasApproachAnimation
}

// ToolCategory returns the category of the tool.
func (r Rules) ToolCategory(t Tool) ToolCategory {
	return ToolCategory(r.cfg.Tools[string(t)].Category)
}

// ToolDelta returns the signed level change applied by the tool.
func (r Rules) ToolDelta(t Tool) float64 {
	return r.cfg.Tools[string(t)].Delta
}

// ToolTarget returns the hazard a removal tool defeats, or "" for other tools.
func (r Rules) ToolTarget(t Tool) Hazard {
	return Hazard(r.cfg.Tools[string(t)].Target)
}

// RemovalToolFor returns the tool that defeats the hazard.
func (r Rules) RemovalToolFor(h Hazard) (Tool, bool) {
	for _, t := range AllTools() {
		if r.ToolCategory(t) == CategoryHazardRemoval && r.ToolTarget(t) == h {
			return t, true
		}
	}
	return ToolNone, false
}

// DecayRate returns the per-second decay of a status under the weather at the
// given difficulty. Health has no weather decay.
func (r Rules) DecayRate(w Weather, status Status, d config.Difficulty) float64 {
	rates := r.cfg.Weather.DecayRates[string(w)]
	mult := r.cfg.Difficulties[d].DecayMultiplier
	switch status {
	case StatusWater:
		return rates.Water * mult
	case StatusLight:
		return rates.Light * mult
	default:
		return 0
	}
}

// IsInWarningZone reports whether a level is in the warning zone of a status.
// Reaching the low threshold always warns; reaching the high threshold warns
// only for statuses configured to warn high.
func (r Rules) IsInWarningZone(status Status, level float64) bool {
	sc := r.cfg.Statuses[string(status)]
	if level <= sc.LowWarning {
		return true
	}
	return sc.WarnHigh && level >= sc.HighWarning
}

// CheckConfig verifies that the configuration has an entry for every status,
// hazard, tool, weather and difficulty the simulation knows about.
func CheckConfig(cfg config.GardenConfig) error {
	var missing []string
	for _, s := range AllStatuses() {
		if _, ok := cfg.Statuses[string(s)]; !ok {
			missing = append(missing, fmt.Sprintf("statuses.%s", s))
		}
	}
	for _, h := range AllHazards() {
		if _, ok := cfg.Hazards[string(h)]; !ok {
			missing = append(missing, fmt.Sprintf("hazards.%s", h))
		}
		if _, ok := cfg.Tutorial.Hazards[string(h)]; !ok {
			missing = append(missing, fmt.Sprintf("tutorial.hazards.%s", h))
		}
	}
	for _, t := range AllTools() {
		if _, ok := cfg.Tools[string(t)]; !ok {
			missing = append(missing, fmt.Sprintf("tools.%s", t))
		}
	}
	for _, w := range AllWeathers() {
		if _, ok := cfg.Weather.DecayRates[string(w)]; !ok {
			missing = append(missing, fmt.Sprintf("weather.decay_rates.%s", w))
		}
	}
	for _, d := range config.AllDifficulties() {
		if _, ok := cfg.Difficulties[d]; !ok {
			missing = append(missing, fmt.Sprintf("difficulties.%s", d))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("garden: config missing %v", missing)
	}

	if _, ok := cfg.Weather.DecayRates[cfg.Weather.Default]; !ok {
		return fmt.Errorf("garden: default weather %q has no decay rates", cfg.Weather.Default)
	}
	for name, tc := range cfg.Tools {
		if tc.Target == "" {
			continue
		}
		if _, ok := cfg.Hazards[tc.Target]; !ok {
			return fmt.Errorf("garden: tool %q targets unknown hazard %q", name, tc.Target)
		}
	}
	th := cfg.Fruit.StageThresholds
	if len(th) != 3 || th[0] >= th[1] || th[1] >= th[2] {
		return fmt.Errorf("garden: fruit stage thresholds must be 3 ascending values, got %v", th)
	}
	return nil
}
