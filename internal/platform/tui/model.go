package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/garden"
	"github.com/vovakirdan/tui-garden/internal/metrics"
	"github.com/vovakirdan/tui-garden/internal/storage"
)

// Options configures a game screen.
type Options struct {
	Garden     config.GardenConfig
	Difficulty config.Difficulty
	Runtime    core.RuntimeConfig
	Store      *storage.Store // nil disables saving
	Logger     *log.Logger
}

// GameModel is the Bubble Tea model for one player's garden.
type GameModel struct {
	opts        Options
	session     *garden.Session
	scene       *scene
	canvas      *Canvas
	keys        KeyMap
	help        help.Model
	cursor      int
	paused      bool
	finished    bool
	quitting    bool
	placement   storage.Placement
	leaderboard LeaderboardModel
}

// NewGameModel creates a session and the screen that drives it.
func NewGameModel(opts Options) GameModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	bus := garden.NewBus()
	sc := newScene(opts.Runtime.Seed, opts.Garden.HazardRange, opts.Runtime.ScreenW, opts.Runtime.ScreenH-1)
	sc.subscribe(bus)

	session := garden.NewSession(opts.Garden, opts.Difficulty,
		garden.WithSeed(opts.Runtime.Seed),
		garden.WithLogger(opts.Logger),
		garden.WithBus(bus),
	)
	sc.session = session
	metrics.Observe(session)

	m := GameModel{
		opts:    opts,
		session: session,
		scene:   sc,
		canvas:  NewCanvas(sc.width, sc.height),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.start()
	return m
}

func (m *GameModel) start() {
	m.session.AddPlants()
	m.scene.placePlants()
	m.cursor = 0
	metrics.SessionStarted()
}

// Session returns the running session.
func (m GameModel) Session() *garden.Session {
	return m.session
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.scene.resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		if m.finished {
			m.leaderboard = m.leaderboard.Resize(msg.Width, msg.Height-4)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if !m.finished {
			metrics.SessionAbandoned()
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.finished {
		if key.Matches(msg, m.keys.Retry) {
			m.retry()
			return m, nil
		}
		m.leaderboard = m.leaderboard.Navigate(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Sound):
		m.toggleSound()
	}
	if m.paused {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevPlant):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.NextPlant):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Tool):
		if t, ok := ToolForKey(msg); ok && !m.session.SelectTool(t) {
			m.scene.say(t.Name() + " is not unlocked yet")
		}
	case key.Matches(msg, m.keys.Use):
		if p := m.selectedPlant(); p != nil {
			m.session.UseSelectedTool(p)
		}
	case key.Matches(msg, m.keys.Click):
		if p := m.selectedPlant(); p != nil {
			if hs := m.session.HazardsOn(p); len(hs) > 0 {
				m.session.RemoveHazardIfRightToolSelected(hs[0].ID)
			}
		}
	case key.Matches(msg, m.keys.Tutorial):
		m.session.AdvanceTutorial()
	}
	return m, nil
}

func (m *GameModel) moveCursor(delta int) {
	n := len(m.session.PlantIDs())
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m GameModel) selectedPlant() *garden.Plant {
	ids := m.session.PlantIDs()
	if len(ids) == 0 {
		return nil
	}
	p, _ := m.session.Plant(ids[core.Clamp(m.cursor, 0, len(ids)-1)])
	return p
}

func (m *GameModel) toggleSound() {
	st := m.scene.settings
	if st.Muted() {
		defaults := config.DefaultSettings()
		st.MusicVolume = defaults.MusicVolume
		st.SfxVolume = defaults.SfxVolume
	} else {
		st.MusicVolume = 0
		st.SfxVolume = 0
	}
	m.session.Bus().PublishSettings(st)
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.finished {
		dt := m.opts.Runtime.TickMs()
		m.session.Update(dt)
		m.scene.advance(dt)

		// Keep the cursor on a living plant
		if n := len(m.session.PlantIDs()); n > 0 && m.cursor >= n {
			m.cursor = n - 1
		}

		if m.session.GameOver() {
			m.finish()
		}
	}
	return m, tickCmd(m.opts.Runtime)
}

// finish records the result once and opens the leaderboard.
func (m *GameModel) finish() {
	m.finished = true
	result := m.session.Result()
	metrics.SessionFinished(m.opts.Difficulty, result)
	m.opts.Logger.Info("game over",
		"difficulty", m.opts.Difficulty,
		"score", result.Score,
		"hazards", result.HazardsDefeated,
		"fruit", result.FruitHarvested,
	)

	m.placement = storage.Placement{}
	if m.opts.Store != nil {
		placement, err := m.opts.Store.SaveResult(m.opts.Difficulty, result)
		if err != nil {
			m.opts.Logger.Warn("could not save result", "error", err)
		} else {
			m.placement = placement
		}
	}

	m.leaderboard = NewLeaderboardModel(
		m.opts.Store,
		m.opts.Difficulty,
		m.opts.Garden.Leaderboard.Count,
		m.placement.ID,
		m.opts.Runtime.ScreenW,
		m.opts.Runtime.ScreenH-4,
	)
}

func (m *GameModel) retry() {
	m.session.Reset()
	m.finished = false
	m.paused = false
	m.start()
}

// Finished reports whether the game is over.
func (m GameModel) Finished() bool {
	return m.finished
}

// Placement returns where the last finished game landed on the leaderboard.
func (m GameModel) Placement() storage.Placement {
	return m.placement
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.finished {
		return m.gameOverView()
	}

	var selected int
	if p := m.selectedPlant(); p != nil {
		selected = p.ID
	}
	m.scene.draw(m.canvas, selected, m.paused)

	out := RenderCanvas(m.canvas)
	if m.scene.settings.ShowControls {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

func (m GameModel) gameOverView() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	width := m.opts.Runtime.ScreenW

	r := m.session.Result()
	summary := fmt.Sprintf("Score %d   Hazards defeated %d   Fruit harvested %d", r.Score, r.HazardsDefeated, r.FruitHarvested)

	var rank string
	switch {
	case m.opts.Store == nil:
		rank = "Results are not being saved."
	case m.placement.Rank > 0:
		rank = fmt.Sprintf("You placed #%d on the %s leaderboard!", m.placement.Rank, m.opts.Difficulty.Title())
	default:
		rank = "Not quite a top score this time."
	}

	return centerText(titleStyle.Render("GAME OVER"), width) + "\n\n" +
		centerText(summary, width) + "\n" +
		centerText(rank, width) + "\n\n" +
		m.leaderboard.Body() + "\n" +
		dimStyle.Render(m.help.ShortHelpView([]key.Binding{
			m.keys.Retry, m.leaderboard.keys.Prev, m.leaderboard.keys.Next, m.keys.Quit,
		}))
}

// Run starts the Bubble Tea program for a single local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewGameModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
