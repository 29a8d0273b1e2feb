package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines every keyboard shortcut the dashboard responds to.
// The Help tab renders directly from these bindings.
type keyMap struct {
	Overview   key.Binding
	Processes  key.Binding
	Network    key.Binding
	Help       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Refresh    key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Overview: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "overview tab"),
		),
		Processes: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "processes tab"),
		),
		Network: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "network tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("4", "h", "?"),
			key.WithHelp("4/h/?", "help tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll processes up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll processes down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "force refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// handleKey routes one key event through the state machine. Unrecognized
// keys are a no-op, never an error.
func (m *Model) handleKey(msg tea.KeyMsg, now time.Time) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state.Quit()
		return tea.Quit

	case key.Matches(msg, m.keys.Overview):
		m.state.JumpTo(TabOverview, now)

	case key.Matches(msg, m.keys.Processes):
		m.state.JumpTo(TabProcesses, now)

	case key.Matches(msg, m.keys.Network):
		m.state.JumpTo(TabNetwork, now)

	case key.Matches(msg, m.keys.Help):
		m.state.JumpTo(TabHelp, now)

	case key.Matches(msg, m.keys.NextTab):
		m.state.NextTab(now)

	case key.Matches(msg, m.keys.PrevTab):
		m.state.PrevTab(now)

	case key.Matches(msg, m.keys.ScrollUp):
		m.state.ScrollUp()

	case key.Matches(msg, m.keys.ScrollDown):
		m.state.ScrollDown(MaxScrollOffset(len(m.snap.Processes), m.processViewportHeight()))

	case key.Matches(msg, m.keys.Refresh):
		m.state.RequestRefresh()
	}

	return nil
}
