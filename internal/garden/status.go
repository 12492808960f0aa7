package garden

// StatusColor classifies a status bar for display.
type StatusColor int

const (
	ColorHealthy StatusColor = iota
	ColorWarning
	ColorHighlight
)

// StatusColor returns how the status bar of a plant should be drawn.
// Full health is highlighted.
func (s *Session) StatusColor(p *Plant, status Status) StatusColor {
	level := p.Levels[status]
	if s.IsInWarningZone(status, level) {
		return ColorWarning
	}
	if status == StatusHealth && level >= s.MaxLevel() {
		return ColorHighlight
	}
	return ColorHealthy
}

// FruitColor returns how the fruit bar of a plant should be drawn.
func (s *Session) FruitColor(p *Plant) StatusColor {
	switch {
	case p.FruitStage == FruitFullyGrown:
		return ColorHighlight
	case s.IsFruitGrowthPaused(p):
		return ColorWarning
	default:
		return ColorHealthy
	}
}
