package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-garden/internal/config"
)

func TestToolMetadata(t *testing.T) {
	for _, tool := range AllTools() {
		assert.NotEmpty(t, tool.Name(), "tool %s", tool)
		assert.NotEmpty(t, tool.Description(), "tool %s", tool)
	}
	assert.Empty(t, ToolNone.Name())
}

func TestParseTool(t *testing.T) {
	tests := []struct {
		in       string
		expected Tool
	}{
		{"wateringcan", ToolWateringCan},
		{"Watering Can", ToolWateringCan},
		{"  BLACK HOLE ", ToolBlackHole},
		{"hammer", ToolHammer},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tool, err := ParseTool(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tool)
		})
	}
}

func TestParseToolSuggestions(t *testing.T) {
	_, err := ParseTool("wateringcn")
	require.ErrorIs(t, err, ErrUnknownTool)
	assert.Contains(t, err.Error(), "did you mean wateringcan")

	_, err = ParseTool("qqqqqqqqqqqqqqqq")
	require.ErrorIs(t, err, ErrUnknownTool)
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = ParseTool("")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestRemovalToolsCoverEveryHazard(t *testing.T) {
	r := NewRules(config.DefaultGardenConfig())
	for _, h := range AllHazards() {
		tool, ok := r.RemovalToolFor(h)
		require.True(t, ok, "no tool for %s", h)
		assert.Equal(t, CategoryHazardRemoval, r.ToolCategory(tool))
		assert.Equal(t, h, r.ToolTarget(tool))
	}
}

func TestHazardLookups(t *testing.T) {
	r := NewRules(config.DefaultGardenConfig())

	assert.Equal(t, MotionSwoop, r.HazardMotion(HazardBird))
	assert.Equal(t, HazardImpact, r.HazardType(HazardMeteor))
	assert.Equal(t, HazardConstant, r.HazardType(HazardBugs))
	assert.Equal(t, 4000.0, r.TimeToActive(HazardWeeds))
	assert.False(t, r.HasApproachAnimation(HazardMole))
	assert.Equal(t, 40.0, r.HazardDamage(HazardMeteor))
}

func TestIsInWarningZone(t *testing.T) {
	r := NewRules(config.DefaultGardenConfig())

	tests := []struct {
		name   string
		status Status
		level  float64
		want   bool
	}{
		{"water low", StatusWater, 20, true},
		{"water ok", StatusWater, 50, false},
		{"water high", StatusWater, 80, true},
		{"light high", StatusLight, 95, true},
		{"health low", StatusHealth, 30, true},
		{"health full", StatusHealth, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsInWarningZone(tt.status, tt.level))
		})
	}
}
