package garden

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownTool is returned when a tool name cannot be parsed.
var ErrUnknownTool = errors.New("garden: unknown tool")

// Tool is an item the player applies to a plant or a hazard.
type Tool string

const (
	ToolNone        Tool = ""
	ToolLamp        Tool = "lamp"
	ToolBlackHole   Tool = "blackhole"
	ToolDrain       Tool = "drain"
	ToolWateringCan Tool = "wateringcan"
	ToolBasket      Tool = "basket"
	ToolScarecrow   Tool = "scarecrow"
	ToolWeedkiller  Tool = "weedkiller"
	ToolPesticide   Tool = "pesticide"
	ToolFertilizer  Tool = "fertilizer"
	ToolDog         Tool = "dog"
	ToolMissile     Tool = "missile"
	ToolHammer      Tool = "hammer"
)

// AllTools returns every tool in toolbar order.
func AllTools() []Tool {
	return []Tool{
		ToolBasket,
		ToolFertilizer,
		ToolDrain,
		ToolWateringCan,
		ToolBlackHole,
		ToolLamp,
		ToolScarecrow,
		ToolWeedkiller,
		ToolPesticide,
		ToolDog,
		ToolHammer,
		ToolMissile,
	}
}

// Name returns the display name of the tool.
func (t Tool) Name() string {
	switch t {
	case ToolLamp:
		return "Lamp"
	case ToolBlackHole:
		return "Black Hole"
	case ToolDrain:
		return "Drain"
	case ToolWateringCan:
		return "Watering Can"
	case ToolBasket:
		return "Basket"
	case ToolScarecrow:
		return "Scarecrow"
	case ToolWeedkiller:
		return "Weedkiller"
	case ToolPesticide:
		return "Pesticide"
	case ToolFertilizer:
		return "Fertilizer"
	case ToolDog:
		return "Dog"
	case ToolMissile:
		return "Missile"
	case ToolHammer:
		return "Hammer"
	default:
		return ""
	}
}

// Description returns a one-line help text for the tool.
func (t Tool) Description() string {
	switch t {
	case ToolLamp:
		return "Increase plant's light level"
	case ToolBlackHole:
		return "Decrease plant's light level"
	case ToolDrain:
		return "Decrease plant's water level"
	case ToolWateringCan:
		return "Increase plant's water level"
	case ToolBasket:
		return "Harvest fruit when fully grown"
	case ToolScarecrow:
		return "Defeat Bird hazards"
	case ToolWeedkiller:
		return "Defeat Weed hazards"
	case ToolPesticide:
		return "Defeat Bug hazards"
	case ToolFertilizer:
		return "Accelerate fruit growth"
	case ToolDog:
		return "Defeat Bunny hazards"
	case ToolMissile:
		return "Defeat Meteor hazards"
	case ToolHammer:
		return "Defeat Mole hazards"
	default:
		return ""
	}
}

// ParseTool resolves a tool id or display name, ignoring case and spaces.
// Unknown names return ErrUnknownTool with the closest matches.
func ParseTool(name string) (Tool, error) {
	needle := normalizeToolName(name)
	if needle == "" {
		return ToolNone, fmt.Errorf("%w: empty name", ErrUnknownTool)
	}

	type candidate struct {
		tool Tool
		dist int
	}
	var candidates []candidate
	for _, t := range AllTools() {
		id := string(t)
		display := normalizeToolName(t.Name())
		if needle == id || needle == display {
			return t, nil
		}
		d := min(levenshtein.ComputeDistance(needle, id), levenshtein.ComputeDistance(needle, display))
		// Only suggest names that share at least half their letters
		if d <= max(2, len(id)/2) {
			candidates = append(candidates, candidate{tool: t, dist: d})
		}
	}

	if len(candidates) == 0 {
		return ToolNone, fmt.Errorf("%w %q", ErrUnknownTool, name)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = string(c.tool)
	}
	return ToolNone, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownTool, name, strings.Join(names, ", "))
}

func normalizeToolName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}

// EnabledTools returns the tools the player may select at this tutorial step.
func EnabledTools(tutorial Tutorial) []Tool {
	if tutorial.ToolsEnabled() {
		return AllTools()
	}
	return nil
}
