package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var helpKeyStyle = lipgloss.NewStyle().
	Foreground(ColorTextPrimary).
	Bold(true).
	Width(14)

// renderHelp renders the Help tab: keyboard shortcuts straight from the
// keymap plus a short description of each tab.
func (m Model) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Overview,
		m.keys.Processes,
		m.keys.Network,
		m.keys.Help,
		m.keys.NextTab,
		m.keys.PrevTab,
		m.keys.ScrollUp,
		m.keys.ScrollDown,
		m.keys.Refresh,
		m.keys.Quit,
	}

	var lines []string
	lines = append(lines, PanelTitleStyle.Render("Navigation"))
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, helpKeyStyle.Render(h.Key)+LabelStyle.Render(h.Desc))
	}

	lines = append(lines, "")
	lines = append(lines, PanelTitleStyle.Render("Tabs"))
	for _, tab := range []struct {
		name Tab
		desc string
	}{
		{TabOverview, "CPU, memory, disk usage with history charts"},
		{TabProcesses, "Running processes sorted by CPU usage"},
		{TabNetwork, "Per-interface network counters"},
		{TabHelp, "This screen"},
	} {
		lines = append(lines, helpKeyStyle.Render(tab.name.String())+LabelStyle.Render(tab.desc))
	}

	return m.panel("Help", strings.Join(lines, "\n"), m.contentWidth())
}
