package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/storage"
)

// LeaderboardKeyMap defines the key bindings for the leaderboard.
type LeaderboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Prev, k.Next, k.Quit}}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev difficulty"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next difficulty"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LeaderboardModel shows the top results of each difficulty. The result
// with the highlight id, usually the game just played, is selected.
type LeaderboardModel struct {
	difficulties []config.Difficulty
	cursor       int
	store        *storage.Store
	limit        int
	highlightID  string
	entries      []storage.ResultEntry
	table        table.Model
	help         help.Model
	keys         LeaderboardKeyMap
	width        int
	height       int
	quitting     bool
}

// NewLeaderboardModel creates a leaderboard opened on the given difficulty.
func NewLeaderboardModel(store *storage.Store, d config.Difficulty, limit int, highlightID string, width, height int) LeaderboardModel {
	difficulties := config.AllDifficulties()
	cursor := max(slices.Index(difficulties, d), 0)

	m := LeaderboardModel{
		difficulties: difficulties,
		cursor:       cursor,
		store:        store,
		limit:        max(limit, 1),
		highlightID:  highlightID,
		help:         help.New(),
		keys:         DefaultLeaderboardKeyMap(),
		width:        width,
		height:       height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *LeaderboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Hazards", Width: 8},
		{Title: "Fruit", Width: 6},
		{Title: "Deaths", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(min(m.limit, m.height-10), 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the current difficulty's results and selects the highlighted one.
func (m *LeaderboardModel) load() {
	m.entries = nil
	if m.store != nil {
		entries, err := m.store.TopResults(m.Difficulty(), m.limit)
		if err == nil {
			m.entries = entries
		}
	}

	rows := make([]table.Row, len(m.entries))
	selected := 0
	for i, e := range m.entries {
		rank := fmt.Sprintf("#%d", i+1)
		if e.ID == m.highlightID {
			rank = "▶" + rank
			selected = i
		}
		rows[i] = table.Row{
			rank,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.HazardsDefeated),
			fmt.Sprintf("%d", e.FruitHarvested),
			fmt.Sprintf("%d", e.Deaths),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(selected)
}

// Difficulty returns the difficulty being shown.
func (m LeaderboardModel) Difficulty() config.Difficulty {
	return m.difficulties[m.cursor]
}

// Entries returns the rows being shown.
func (m LeaderboardModel) Entries() []storage.ResultEntry {
	return m.entries
}

// Init initializes the leaderboard model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Navigate handles the browsing keys. It is shared with the game-over
// screen, which owns the quit and retry keys itself.
func (m LeaderboardModel) Navigate(msg tea.KeyMsg) LeaderboardModel {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.cursor = (m.cursor + 1) % len(m.difficulties)
		m.load()
	case key.Matches(msg, m.keys.Prev):
		m.cursor = (m.cursor - 1 + len(m.difficulties)) % len(m.difficulties)
		m.load()
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.table, _ = m.table.Update(msg)
	}
	return m
}

// Resize adapts the table to a new terminal size.
func (m LeaderboardModel) Resize(width, height int) LeaderboardModel {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.createTable()
	m.load()
	return m
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.Navigate(msg), nil

	case tea.WindowSizeMsg:
		return m.Resize(msg.Width, msg.Height), nil
	}
	return m, nil
}

// View renders the leaderboard with its help line.
func (m LeaderboardModel) View() string {
	if m.quitting {
		return ""
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.Body() + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Body renders the difficulty tabs and the table.
func (m LeaderboardModel) Body() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.difficulties))
	for i, d := range m.difficulties {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(d.Title())
		} else {
			tabs[i] = tabStyle.Render(d.Title())
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.tableContent()), m.width))

	return b.String()
}

func (m LeaderboardModel) tableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		if m.store == nil {
			return emptyStyle.Render("Results are not being saved.")
		}
		return emptyStyle.Render("No games recorded yet.\nGrow something!")
	}
	return m.table.View()
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunLeaderboard runs the leaderboard as a standalone screen.
func RunLeaderboard(store *storage.Store, d config.Difficulty, limit, width, height int) error {
	p := tea.NewProgram(
		NewLeaderboardModel(store, d, limit, "", width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
