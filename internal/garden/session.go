package garden

import (
	"io"
	"maps"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
)

// Session is one game: the plants, the hazards in flight, the weather and
// the counters. Update advances everything synchronously.
type Session struct {
	Rules

	difficulty config.Difficulty
	diff       config.DifficultyConfig
	rng        *rand.Rand
	logger     *log.Logger
	bus        *Bus
	tutorial   Tutorial

	plants       map[int]*Plant
	hazards      map[int]*ActiveHazard
	weather      WeatherState
	selectedTool Tool
	nextID       int
	plantsAdded  int

	numHazardsDefeated      int
	fruitHarvested          int
	deaths                  int
	score                   int
	timeSinceLastScoreBump  float64
	currentHazardDurationMs float64
	nextHazardDurationMs    float64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the session's random source. Zero uses the current time.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = core.NewRand(seed)
	}
}

// WithBus publishes events on an existing bus, so listeners can be wired
// before the first reset.
func WithBus(b *Bus) Option {
	return func(s *Session) {
		if b != nil {
			s.bus = b
		}
	}
}

// NewSession creates a game for the difficulty and resets it.
// The configuration must have passed CheckConfig.
func NewSession(cfg config.GardenConfig, difficulty config.Difficulty, opts ...Option) *Session {
	s := &Session{
		Rules:      NewRules(cfg),
		difficulty: difficulty,
		diff:       cfg.ForDifficulty(difficulty),
		logger:     log.New(io.Discard),
		bus:        NewBus(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = core.NewRand(0)
	}
	s.Reset()
	return s
}

// Reset clears all session state and publishes game-reset.
func (s *Session) Reset() {
	s.plants = make(map[int]*Plant)
	s.hazards = make(map[int]*ActiveHazard)
	s.selectedTool = ToolNone
	s.plantsAdded = 0
	s.numHazardsDefeated = 0
	s.fruitHarvested = 0
	s.deaths = 0
	s.score = 0
	s.timeSinceLastScoreBump = 0
	s.currentHazardDurationMs = 0
	s.nextHazardDurationMs = s.nextHazardDuration()

	if s.difficulty.IsTutorial() {
		s.tutorial = NewTutorial(s.cfg.Tutorial)
	} else {
		s.tutorial = DisabledTutorial()
	}

	current := Weather(s.cfg.Weather.Default)
	s.weather = WeatherState{
		Current: current,
		Queue:   s.initialWeatherQueue(current),
	}

	s.logger.Info("session reset", "difficulty", s.difficulty)
	s.bus.GameReset.Publish(struct{}{})
}

// AddPlant creates a plant with default levels. The handle is stored for the
// frontend and never read by the simulation.
func (s *Session) AddPlant(handle any) *Plant {
	p := &Plant{
		ID: s.newID(),
		Levels: map[Status]float64{
			StatusWater:  s.cfg.Levels.DefaultWater,
			StatusLight:  s.cfg.Levels.DefaultLight,
			StatusHealth: s.cfg.Levels.DefaultHealth,
		},
		FruitProgress: s.MinLevel(),
		FruitStage:    FruitNone,
		Inactive:      true,
		Handle:        handle,
	}
	s.plants[p.ID] = p
	s.plantsAdded++
	return p
}

// AddPlants adds as many plants as the difficulty asks for.
func (s *Session) AddPlants() []*Plant {
	plants := make([]*Plant, 0, s.diff.Plants)
	for range s.diff.Plants {
		plants = append(plants, s.AddPlant(nil))
	}
	return plants
}

func (s *Session) newID() int {
	s.nextID++
	return s.nextID
}

// Update advances the simulation by deltaMs milliseconds. Plants marked for
// destruction on the previous tick are removed first. A non-positive delta
// only runs that removal pass.
func (s *Session) Update(deltaMs float64) {
	s.removeDestroyedPlants()
	if deltaMs <= 0 {
		return
	}

	if s.tutorial.WeatherEnabled() {
		s.updateWeather(deltaMs)
	}
	s.spawnHazards(deltaMs)
	s.updateHazards(deltaMs)

	for _, id := range s.PlantIDs() {
		s.updatePlant(s.plants[id], deltaMs)
	}

	if s.tutorial.ScoreEnabled() {
		s.updateScore(deltaMs)
	}
}

func (s *Session) removeDestroyedPlants() {
	for _, id := range s.PlantIDs() {
		p := s.plants[id]
		if !p.ShouldDestroy {
			continue
		}
		if s.cfg.Invincible {
			p.ShouldDestroy = false
			continue
		}
		for _, hid := range slices.Clone(p.ActiveHazardIDs) {
			s.RemoveHazardByID(hid)
		}
		delete(s.plants, id)
		s.deaths++
		s.logger.Debug("plant destroyed", "plant", id, "deaths", s.deaths)
		s.bus.PlantDestroy.Publish(p)
	}
}

func (s *Session) updateScore(dt float64) {
	s.timeSinceLastScoreBump += dt
	if s.timeSinceLastScoreBump < s.cfg.Scoring.BumpIntervalMs {
		return
	}
	s.timeSinceLastScoreBump = 0
	bump := s.scoreBump()
	s.score += bump
	s.logger.Debug("score bump", "bump", bump, "score", s.score)
	s.bus.ScoreUpdate.Publish(s.score)
}

// SelectTool selects a tool. ToolNone clears the selection. Tools the
// tutorial has not unlocked are refused.
func (s *Session) SelectTool(t Tool) bool {
	if t != ToolNone && !slices.Contains(EnabledTools(s.tutorial), t) {
		return false
	}
	s.selectedTool = t
	return true
}

// SelectedTool returns the selected tool.
func (s *Session) SelectedTool() Tool {
	return s.selectedTool
}

// UseSelectedTool applies the selected tool to the plant. It returns the tool
// when it had an effect and ToolNone otherwise.
func (s *Session) UseSelectedTool(p *Plant) Tool {
	t := s.selectedTool
	if t == ToolNone || p == nil || p.Inactive || s.plants[p.ID] != p {
		return ToolNone
	}

	switch s.ToolCategory(t) {
	case CategoryHarvest:
		if p.FruitStage != FruitFullyGrown {
			s.bus.WrongTool.Publish(struct{}{})
			return ToolNone
		}
		s.HarvestFruit(p)
		s.fruitHarvested++
		s.score += s.cfg.Fruit.HarvestBonus
		s.bus.ScoreUpdate.Publish(s.score)
		return t

	case CategoryHazardRemoval:
		n := s.RemoveHazardByType(p, s.ToolTarget(t))
		if n == 0 {
			return ToolNone
		}
		s.numHazardsDefeated += n
		return t

	case CategoryWater:
		s.UpdateStatusLevel(p, StatusWater, s.ToolDelta(t))
		return t

	case CategoryLight:
		s.UpdateStatusLevel(p, StatusLight, s.ToolDelta(t))
		return t

	case CategoryGrowth:
		if p.FruitProgress >= s.MaxLevel() {
			s.bus.WrongTool.Publish(struct{}{})
			return ToolNone
		}
		s.SetFruitProgress(p, p.FruitProgress+s.ToolDelta(t))
		return t
	}
	return ToolNone
}

// RemoveHazardIfRightToolSelected removes a hazard clicked directly when the
// selected tool targets its kind. Approaching hazards count too.
func (s *Session) RemoveHazardIfRightToolSelected(hazardID int) bool {
	h, ok := s.hazards[hazardID]
	if !ok {
		return false
	}
	t := s.selectedTool
	if t == ToolNone || s.ToolCategory(t) != CategoryHazardRemoval || s.ToolTarget(t) != h.Hazard {
		s.bus.WrongTool.Publish(struct{}{})
		return false
	}
	s.RemoveHazardByID(hazardID)
	s.numHazardsDefeated++
	return true
}

// AdvanceTutorial moves the tutorial to its next step.
func (s *Session) AdvanceTutorial() {
	if !s.tutorial.Enabled {
		return
	}
	s.tutorial.Advance()
	s.logger.Debug("tutorial advanced", "step", s.tutorial.Step)
}

// Tutorial returns a copy of the tutorial gate.
func (s *Session) Tutorial() Tutorial {
	return s.tutorial
}

// Bus returns the event bus of the session.
func (s *Session) Bus() *Bus {
	return s.bus
}

// Difficulty returns the difficulty, fixed for the session's lifetime.
func (s *Session) Difficulty() config.Difficulty {
	return s.difficulty
}

// Plant returns a live plant by id.
func (s *Session) Plant(id int) (*Plant, bool) {
	p, ok := s.plants[id]
	return p, ok
}

// PlantIDs returns the live plant ids in ascending order.
func (s *Session) PlantIDs() []int {
	return slices.Sorted(maps.Keys(s.plants))
}

// Plants returns the live plants in id order.
func (s *Session) Plants() []*Plant {
	ids := s.PlantIDs()
	plants := make([]*Plant, len(ids))
	for i, id := range ids {
		plants[i] = s.plants[id]
	}
	return plants
}

// Hazard returns an active hazard by id.
func (s *Session) Hazard(id int) (*ActiveHazard, bool) {
	h, ok := s.hazards[id]
	return h, ok
}

// HazardIDs returns the active hazard ids in ascending order.
func (s *Session) HazardIDs() []int {
	return slices.Sorted(maps.Keys(s.hazards))
}

// HazardsOn returns the hazards targeting the plant in spawn order.
func (s *Session) HazardsOn(p *Plant) []*ActiveHazard {
	out := make([]*ActiveHazard, 0, len(p.ActiveHazardIDs))
	for _, id := range p.ActiveHazardIDs {
		if h, ok := s.hazards[id]; ok {
			out = append(out, h)
		}
	}
	return out
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// NumHazardsDefeated returns how many hazards the player removed.
func (s *Session) NumHazardsDefeated() int { return s.numHazardsDefeated }

// NextHazardInMs returns the time left until the next regular hazard spawn.
func (s *Session) NextHazardInMs() float64 {
	return max(s.nextHazardDurationMs-s.currentHazardDurationMs, 0)
}
