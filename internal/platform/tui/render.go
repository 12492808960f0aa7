package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-garden/internal/garden"
)

// colorStyles maps canvas colors to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:     lipgloss.NewStyle(),
	ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	ColorBrown:       lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// statusColors maps the engine's bar classification to canvas colors.
var statusColors = map[garden.StatusColor]Color{
	garden.ColorHealthy:   ColorGreen,
	garden.ColorWarning:   ColorRed,
	garden.ColorHighlight: ColorCyan,
}

// RenderCanvas converts a canvas to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func RenderCanvas(c *Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			start := c.Get(x, y).Color

			var run strings.Builder
			for x < c.Width() {
				cell := c.Get(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
