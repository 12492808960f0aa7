package tui

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/garden"
)

// Scene layout
const (
	hudRows     = 2 // Score line + message line
	barRows     = 4 // Water, light, health, fruit
	toolbarRows = 3 // Two rows of tools + description
	plantW      = 9
	plantH      = 5
	barWidth    = 10
	minCanvasW  = 40
	minCanvasH  = hudRows + plantH + 1 + barRows + toolbarRows + 2
)

var hazardGlyphs = map[garden.Hazard]rune{
	garden.HazardBugs:   '*',
	garden.HazardBird:   'V',
	garden.HazardWeeds:  '¥',
	garden.HazardBunny:  '&',
	garden.HazardMeteor: '●',
	garden.HazardMole:   'm',
}

var fruitGlyphs = map[garden.FruitGrowthStage]rune{
	garden.FruitNone:       ' ',
	garden.FruitSmall:      '.',
	garden.FruitMedium:     'o',
	garden.FruitFullyGrown: '@',
}

var tutorialTips = []string{
	"Welcome to the garden! Press n for the next tip.",
	"Select the watering can with {wateringcan} and press space to water.",
	"Plants need light too. The lamp ({lamp}) adds it, the black hole ({blackhole}) removes it.",
	"Fertilizer ({fertilizer}) grows fruit. Harvest full fruit with the basket ({basket}).",
	"Health drops while water or light is in the red zone.",
	"A bird! Wait until it lands, then use the scarecrow ({scarecrow}).",
	"Weeds are growing. Use the weedkiller ({weedkiller}).",
	"Bugs! Use the pesticide ({pesticide}).",
	"A bunny! Send the dog ({dog}).",
	"A mole! Use the hammer ({hammer}).",
	"A meteor! Select the missile ({missile}) and press x before it lands.",
	"The weather changes the way water and light drain.",
	"Your score grows with healthy plants. Good luck!",
}

// tutorialTip fills in the key of every tool named in the tip.
func tutorialTip(step int) string {
	tip := tutorialTips[step]
	for _, t := range garden.AllTools() {
		tip = strings.ReplaceAll(tip, "{"+string(t)+"}", ToolKeyLabel(t))
	}
	return tip
}

// scene is the frontend state that lives alongside a session: where plants
// stand, the paths hazards follow and the transient message line. Bus
// listeners update it while the session ticks.
type scene struct {
	session  *garden.Session
	rng      *rand.Rand
	spread   float64
	slots    map[int]int
	numSlots int
	width    int
	height   int
	paths    map[int]garden.HazardPath
	flash    string
	flashMs  float64
	settings config.Settings
}

func newScene(seed int64, spread float64, width, height int) *scene {
	return &scene{
		rng:      core.NewRand(seed),
		spread:   spread,
		slots:    make(map[int]int),
		paths:    make(map[int]garden.HazardPath),
		width:    max(width, minCanvasW),
		height:   max(height, minCanvasH),
		settings: config.DefaultSettings(),
	}
}

// subscribe wires the scene to a session's events.
func (sc *scene) subscribe(bus *garden.Bus) {
	bus.GameReset.Subscribe(sc, func(ctx any, _ struct{}) {
		s := ctx.(*scene)
		clear(s.paths)
		clear(s.slots)
		s.numSlots = 0
		s.flash = ""
	})
	bus.HazardCreated.Subscribe(sc, func(ctx any, id int) {
		ctx.(*scene).addPath(id)
	})
	bus.HazardDestroyed.Subscribe(sc, func(ctx any, id int) {
		delete(ctx.(*scene).paths, id)
	})
	bus.HazardImpact.Subscribe(sc, func(ctx any, id int) {
		s := ctx.(*scene)
		if h, ok := s.session.Hazard(id); ok {
			s.say(h.Hazard.Title() + " hit a plant!")
		}
	})
	bus.WrongTool.Subscribe(sc, func(ctx any, _ struct{}) {
		ctx.(*scene).say("That does nothing here")
	})
	bus.FruitGrowth.Subscribe(sc, func(ctx any, p *garden.Plant) {
		if p.FruitStage == garden.FruitFullyGrown {
			ctx.(*scene).say("Fruit is ready to harvest")
		}
	})
	bus.FruitHarvest.Subscribe(sc, func(ctx any, _ *garden.Plant) {
		s := ctx.(*scene)
		s.say(fmt.Sprintf("Harvested! +%d", s.session.Config().Fruit.HarvestBonus))
	})
	bus.PlantDestroy.Subscribe(sc, func(ctx any, p *garden.Plant) {
		s := ctx.(*scene)
		delete(s.slots, p.ID)
		s.say("A plant has died")
	})
	bus.WeatherUpdate.Subscribe(sc, func(ctx any, u garden.WeatherUpdate) {
		ctx.(*scene).say("The weather turns " + strings.ToLower(u.Current.Title()))
	})
	bus.Settings.Subscribe(sc, func(ctx any, st config.Settings) {
		s := ctx.(*scene)
		s.settings = st
		if st.Muted() {
			s.say("Sound off")
		} else {
			s.say("Sound on")
		}
	})
}

// placePlants assigns every current plant a fixed column slot.
func (sc *scene) placePlants() {
	ids := sc.session.PlantIDs()
	sc.numSlots = len(ids)
	for i, id := range ids {
		sc.slots[id] = i
	}
}

func (sc *scene) resize(width, height int) {
	sc.width = max(width, minCanvasW)
	sc.height = max(height, minCanvasH)
}

func (sc *scene) groundY() int {
	return sc.height - toolbarRows - barRows - 1
}

func (sc *scene) plantBox(id int) core.Box {
	slot := sc.slots[id]
	x := float64(sc.width*(slot+1)) / float64(sc.numSlots+1)
	y := float64(sc.groundY()) - plantH/2.0
	return core.NewBox(x, y, plantW, plantH)
}

func (sc *scene) addPath(id int) {
	h, ok := sc.session.Hazard(id)
	if !ok {
		return
	}
	if _, ok := sc.session.Plant(h.TargetPlantID); !ok {
		return
	}
	box := sc.plantBox(h.TargetPlantID)
	sc.paths[id] = garden.NewHazardPath(box, sc.session.HazardMotion(h.Hazard), sc.spread, sc.rng)
}

func (sc *scene) say(msg string) {
	sc.flash = msg
	sc.flashMs = flashDurationMs
}

// advance ages the message line.
func (sc *scene) advance(deltaMs float64) {
	if sc.flashMs <= 0 {
		return
	}
	sc.flashMs -= deltaMs
	if sc.flashMs <= 0 {
		sc.flash = ""
	}
}

// draw renders the whole garden into the canvas.
func (sc *scene) draw(c *Canvas, selected int, paused bool) {
	c.Resize(sc.width, sc.height)
	c.Clear()

	sc.drawHUD(c)
	ground := sc.groundY()
	c.DrawHLine(0, ground, c.Width(), '▀', ColorBrown)

	for _, p := range sc.session.Plants() {
		sc.drawPlant(c, p, p.ID == selected)
	}
	sc.drawHazards(c)
	sc.drawToolbar(c)

	if paused {
		c.DrawTextCentered(c.Height()/2, "  PAUSED  ", ColorBrightWhite)
	}
}

func (sc *scene) drawHUD(c *Canvas) {
	s := sc.session
	tut := s.Tutorial()

	left := s.Difficulty().Title()
	if tut.ScoreEnabled() {
		left += fmt.Sprintf("  Score %d  Defeated %d", s.Score(), s.NumHazardsDefeated())
	}
	if !tut.Enabled {
		left += fmt.Sprintf("  Next hazard %.0fs", math.Ceil(s.NextHazardInMs()/1000))
	}
	c.DrawText(1, 0, left, ColorBrightWhite)

	if tut.WeatherEnabled() {
		w := s.Weather()
		upcoming := make([]string, len(w.Queue))
		for i, q := range w.Queue {
			upcoming[i] = q.Title()
		}
		right := fmt.Sprintf("%s → %s", w.Current.Title(), strings.Join(upcoming, ", "))
		c.DrawText(c.Width()-len([]rune(right))-1, 0, right, ColorCyan)
	}

	switch {
	case sc.flash != "":
		c.DrawTextCentered(1, sc.flash, ColorYellow)
	case tut.Enabled && tut.Step < len(tutorialTips):
		c.DrawTextCentered(1, tutorialTip(tut.Step), ColorGray)
	}
}

func (sc *scene) drawPlant(c *Canvas, p *garden.Plant, selected bool) {
	s := sc.session
	tut := s.Tutorial()
	box := sc.plantBox(p.ID)
	cx := int(box.X)
	top := sc.groundY() - plantH

	leaf := ColorGreen
	if s.NumWarningStatus(p) > 0 {
		leaf = ColorYellow
	}

	fruit := fruitGlyphs[p.FruitStage]
	c.Set(cx, top+1, fruit, statusColors[s.FruitColor(p)])
	c.DrawText(cx-1, top+2, `\|/`, leaf)
	c.DrawText(cx-1, top+3, `-+-`, leaf)
	c.Set(cx, top+4, '|', ColorGreen)

	if selected {
		c.Set(cx-plantW/2, top+3, '[', ColorBrightWhite)
		c.Set(cx+plantW/2, top+3, ']', ColorBrightWhite)
		c.Set(cx, sc.groundY(), '▲', ColorBrightWhite)
	}

	x := cx - (barWidth+2)/2
	y := sc.groundY() + 1
	bars := []struct {
		label   string
		enabled bool
		status  garden.Status
	}{
		{"W", tut.WaterEnabled(), garden.StatusWater},
		{"L", tut.LightEnabled(), garden.StatusLight},
		{"H", tut.HealthEnabled(), garden.StatusHealth},
	}
	span := s.MaxLevel() - s.MinLevel()
	for i, b := range bars {
		if !b.enabled {
			continue
		}
		c.DrawText(x, y+i, b.label, ColorGray)
		frac := (p.Levels[b.status] - s.MinLevel()) / span
		c.DrawBar(x+2, y+i, barWidth, frac, statusColors[s.StatusColor(p, b.status)])
	}
	if tut.FruitEnabled() {
		c.DrawText(x, y+3, "F", ColorGray)
		c.DrawBar(x+2, y+3, barWidth, (p.FruitProgress-s.MinLevel())/span, statusColors[s.FruitColor(p)])
	}
}

func (sc *scene) drawHazards(c *Canvas) {
	s := sc.session
	for _, id := range s.HazardIDs() {
		h, _ := s.Hazard(id)
		path, ok := sc.paths[id]
		if !ok {
			continue
		}
		progress := s.Progress(h)
		if !s.HasApproachAnimation(h.Hazard) {
			progress = 1
		}
		pos := core.Lerp(path.Start, path.End, progress)

		color := ColorYellow
		if h.IsActive() {
			color = ColorRed
		}
		c.Set(int(math.Round(pos.X)), int(math.Round(pos.Y)), hazardGlyphs[h.Hazard], color)
	}
}

func (sc *scene) drawToolbar(c *Canvas) {
	s := sc.session
	enabled := garden.EnabledTools(s.Tutorial())
	if len(enabled) == 0 {
		return
	}

	perRow := (len(enabled) + 1) / 2
	colW := c.Width() / perRow
	top := c.Height() - toolbarRows
	for i, t := range enabled {
		label := fmt.Sprintf("%s %s", ToolKeyLabel(t), t.Name())
		color := ColorGray
		if t == s.SelectedTool() {
			label = "[" + label + "]"
			color = ColorBrightWhite
		}
		if len([]rune(label)) > colW-1 {
			label = string([]rune(label)[:colW-1])
		}
		c.DrawText((i%perRow)*colW+1, top+i/perRow, label, color)
	}

	if t := s.SelectedTool(); t != garden.ToolNone {
		c.DrawText(1, top+2, t.Description(), ColorDefault)
	}
}
