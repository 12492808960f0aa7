package garden

// GameResult summarizes a finished game.
type GameResult struct {
	Score           int `json:"score"`
	HazardsDefeated int `json:"hazards_defeated"`
	FruitHarvested  int `json:"fruit_harvested"`
	Deaths          int `json:"deaths"`
}

// Add returns the field-wise sum of two results.
func (r GameResult) Add(o GameResult) GameResult {
	return GameResult{
		Score:           r.Score + o.Score,
		HazardsDefeated: r.HazardsDefeated + o.HazardsDefeated,
		FruitHarvested:  r.FruitHarvested + o.FruitHarvested,
		Deaths:          r.Deaths + o.Deaths,
	}
}

// Result snapshots the session counters.
func (s *Session) Result() GameResult {
	return GameResult{
		Score:           s.score,
		HazardsDefeated: s.numHazardsDefeated,
		FruitHarvested:  s.fruitHarvested,
		Deaths:          s.deaths,
	}
}

// GameOver reports whether every plant that was added has died.
func (s *Session) GameOver() bool {
	return s.plantsAdded > 0 && len(s.plants) == 0
}
