package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-garden/internal/garden"
)

// toolKeys selects the tools in toolbar order.
var toolKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

// KeyMap defines the key bindings of the garden screen.
type KeyMap struct {
	PrevPlant key.Binding
	NextPlant key.Binding
	Tool      key.Binding
	Use       key.Binding
	Click     key.Binding
	Tutorial  key.Binding
	Sound     key.Binding
	Pause     key.Binding
	Retry     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPlant, k.NextPlant, k.Tool, k.Use, k.Click, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPlant, k.NextPlant, k.Tool, k.Use, k.Click},
		{k.Tutorial, k.Sound, k.Pause, k.Retry},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevPlant: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev plant"),
		),
		NextPlant: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next plant"),
		),
		Tool: key.NewBinding(
			key.WithKeys(toolKeys...),
			key.WithHelp("1-0,-,=", "select tool"),
		),
		Use: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "use tool"),
		),
		Click: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "hit hazard"),
		),
		Tutorial: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next tip"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ToolForKey returns the tool a number key selects.
func ToolForKey(msg tea.KeyMsg) (garden.Tool, bool) {
	tools := garden.AllTools()
	k := msg.String()
	for i, tk := range toolKeys {
		if tk == k && i < len(tools) {
			return tools[i], true
		}
	}
	return garden.ToolNone, false
}

// ToolKeyLabel returns the key label shown next to a tool in the toolbar.
func ToolKeyLabel(t garden.Tool) string {
	for i, tool := range garden.AllTools() {
		if tool == t && i < len(toolKeys) {
			return toolKeys[i]
		}
	}
	return "?"
}
