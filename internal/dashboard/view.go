package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkendall/sysdash/internal/store"
)

// processViewChromeHeight is the number of terminal rows the Processes tab
// spends on everything except process rows: tab strip, summary gauges,
// table borders and header, and the status bar.
const processViewChromeHeight = 9

// renderDashboard renders the complete frame for the active tab.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	switch m.state.ActiveTab {
	case TabOverview:
		b.WriteString(m.renderOverview())
	case TabProcesses:
		b.WriteString(m.renderProcesses())
	case TabNetwork:
		b.WriteString(m.renderNetwork())
	case TabHelp:
		b.WriteString(m.renderHelp())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

// renderTabBar renders the title and the tab strip with the active tab
// highlighted.
func (m Model) renderTabBar() string {
	title := TitleStyle.Render(m.cfg.Dashboard.Title)

	var tabs []string
	for _, tab := range []Tab{TabOverview, TabProcesses, TabNetwork, TabHelp} {
		label := fmt.Sprintf("%d:%s", int(tab)+1, tab)
		if tab == m.state.ActiveTab {
			tabs = append(tabs, TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Join(tabs, ""))
}

// renderOverview renders gauges, history charts, system info, and disks.
func (m Model) renderOverview() string {
	half := m.halfWidth()

	var rows []string

	gauges := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCPUGauge(half),
		m.renderMemoryGauge(half),
	)
	rows = append(rows, gauges)

	var charts []string
	if m.cfg.Display.ShowCPUGraph {
		charts = append(charts, m.renderChartPanel("CPU History", m.snap.CPUHistory, half))
	}
	if m.cfg.Display.ShowMemoryGraph {
		charts = append(charts, m.renderChartPanel("Memory History", m.snap.MemoryHistory, half))
	}
	if len(charts) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, charts...))
	}

	bottom := []string{m.renderSystemInfo(half)}
	if m.cfg.Display.ShowDiskInfo {
		bottom = append(bottom, m.renderDiskTable(half))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, bottom...))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderProcesses renders summary gauges and the scrollable process table.
func (m Model) renderProcesses() string {
	half := m.halfWidth()

	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCPUGauge(half),
		m.renderMemoryGauge(half),
	)

	if !m.cfg.Display.ShowProcessList || !m.cfg.System.EnableProcessMonitoring {
		note := MutedStyle.Render("Process monitoring is disabled in the configuration")
		return lipgloss.JoinVertical(lipgloss.Left, summary, note)
	}

	return lipgloss.JoinVertical(lipgloss.Left, summary, m.renderProcessTable())
}

// renderProcessTable renders the process rows visible in the current
// viewport, honoring the scroll offset.
func (m Model) renderProcessTable() string {
	procs := m.snap.Processes
	viewport := m.processViewportHeight()

	header := TableHeaderStyle.Render(fmt.Sprintf("%8s  %7s  %10s  %s", "PID", "CPU%", "MEM", "NAME"))
	lines := []string{header}

	start := m.state.ProcessScroll
	if start > len(procs) {
		start = len(procs)
	}
	end := start + viewport
	if end > len(procs) {
		end = len(procs)
	}

	for _, p := range procs[start:end] {
		cpuStyle := lipgloss.NewStyle().Foreground(MetricColor(p.CPUPercent))
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			ValueStyle.Render(fmt.Sprintf("%8d", p.PID)),
			cpuStyle.Render(fmt.Sprintf("%6.1f%%", p.CPUPercent)),
			LabelStyle.Render(fmt.Sprintf("%10s", formatBytes(p.MemoryBytes))),
			p.Name,
		))
	}

	title := fmt.Sprintf("Processes (%d)", len(procs))
	if m.state.ProcessScroll > 0 {
		title = fmt.Sprintf("Processes (%d, offset %d)", len(procs), m.state.ProcessScroll)
	}
	return m.panel(title, strings.Join(lines, "\n"), m.contentWidth())
}

// renderNetwork renders the summary row and the per-interface counters.
func (m Model) renderNetwork() string {
	third := m.thirdWidth()

	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCPUGauge(third),
		m.renderMemoryGauge(third),
		m.renderSystemInfo(third),
	)

	if !m.cfg.Display.ShowNetworkInfo {
		note := MutedStyle.Render("Network monitoring is disabled in the configuration")
		return lipgloss.JoinVertical(lipgloss.Left, summary, note)
	}

	if len(m.snap.Network) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, summary,
			m.panel("Network", MutedStyle.Render("No network information available"), m.contentWidth()))
	}

	header := TableHeaderStyle.Render(fmt.Sprintf("%-12s  %12s  %12s  %10s  %10s",
		"INTERFACE", "RX BYTES", "TX BYTES", "RX PKTS", "TX PKTS"))
	lines := []string{header}
	for _, iface := range m.snap.Network {
		lines = append(lines, fmt.Sprintf("%-12s  %12s  %12s  %10d  %10d",
			ValueStyle.Render(fmt.Sprintf("%-12s", iface.Name)),
			formatBytes(iface.BytesRecv),
			formatBytes(iface.BytesSent),
			iface.PacketsRecv,
			iface.PacketsSent,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, summary,
		m.panel("Network", strings.Join(lines, "\n"), m.contentWidth()))
}

// renderCPUGauge renders the CPU utilization gauge panel.
func (m Model) renderCPUGauge(width int) string {
	pct := m.snap.CPUPercent
	label := fmt.Sprintf("%.1f%%", pct)
	bar := RenderGaugeBar(gaugeBarWidth(width, label), pct)

	title := "CPU Usage"
	if m.snap.System.CPUCount > 0 {
		title = fmt.Sprintf("CPU Usage (%d cores)", m.snap.System.CPUCount)
	}
	return m.panel(title, bar+" "+ValueStyle.Render(label), width)
}

// renderMemoryGauge renders the memory gauge with a used/total label.
func (m Model) renderMemoryGauge(width int) string {
	pct := m.snap.MemoryPercent
	label := fmt.Sprintf("%.1f%% (%s/%s)", pct,
		formatBytes(m.snap.Memory.UsedBytes), formatBytes(m.snap.Memory.TotalBytes))
	bar := RenderGaugeBar(gaugeBarWidth(width, label), pct)
	return m.panel("Memory Usage", bar+" "+ValueStyle.Render(label), width)
}

// renderChartPanel renders a bounded history as a braille chart.
func (m Model) renderChartPanel(title string, samples []store.Sample, width int) string {
	chartWidth := width - 4
	if chartWidth < 1 {
		chartWidth = 1
	}
	chart := RenderBrailleChart(sampleValues(samples), chartWidth, chartHeight)
	if chart == "" {
		chart = MutedStyle.Render("collecting…")
	}
	return m.panel(title, chart, width)
}

// chartHeight is the braille chart height in rows (4 dot levels per row).
const chartHeight = 5

// renderSystemInfo renders uptime, process count, and load averages.
func (m Model) renderSystemInfo(width int) string {
	sys := m.snap.System

	lines := []string{
		LabelStyle.Render("Host:     ") + ValueStyle.Render(sys.Hostname),
		LabelStyle.Render("Uptime:   ") + ValueStyle.Render(formatUptime(sys.Uptime)),
		LabelStyle.Render("Procs:    ") + ValueStyle.Render(fmt.Sprintf("%d", sys.ProcessCount)),
		LabelStyle.Render("Load Avg: ") + ValueStyle.Render(fmt.Sprintf("%.2f %.2f %.2f",
			sys.LoadAvg[0], sys.LoadAvg[1], sys.LoadAvg[2])),
	}

	return m.panel("System Info", strings.Join(lines, "\n"), width)
}

// renderDiskTable renders one row per mounted filesystem.
func (m Model) renderDiskTable(width int) string {
	if len(m.snap.Disks) == 0 {
		return m.panel("Disk Usage", MutedStyle.Render("No disk information available"), width)
	}

	header := TableHeaderStyle.Render(fmt.Sprintf("%-15s %-8s %9s %9s %6s", "MOUNT", "FS", "TOTAL", "USED", "USE%"))
	lines := []string{header}
	for _, d := range m.snap.Disks {
		useStyle := lipgloss.NewStyle().Foreground(MetricColor(d.UsedPercent))
		lines = append(lines, fmt.Sprintf("%-15s %-8s %9s %9s %s",
			d.Mount, d.Filesystem,
			formatBytes(d.TotalBytes), formatBytes(d.UsedBytes),
			useStyle.Render(fmt.Sprintf("%5.1f%%", d.UsedPercent)),
		))
	}

	return m.panel("Disk Usage", strings.Join(lines, "\n"), width)
}

// renderStatusBar renders per-tab key hints and the snapshot age.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.state.ActiveTab {
	case TabProcesses:
		hints = "↑↓: scroll | tab: switch | r: refresh | q: quit"
	case TabHelp:
		hints = "tab: switch | q: quit"
	default:
		hints = "tab: switch | r: refresh | q: quit"
	}

	age := ""
	if !m.snap.LastUpdate.IsZero() {
		secs := int(time.Since(m.snap.LastUpdate).Seconds())
		switch {
		case secs <= 0:
			age = " | updated just now"
		case secs == 1:
			age = " | updated 1s ago"
		default:
			age = fmt.Sprintf(" | updated %ds ago", secs)
		}
	}

	return StatusBarStyle.Render(hints + age)
}

// panel wraps content in a bordered box with a title line.
func (m Model) panel(title, content string, width int) string {
	inner := PanelTitleStyle.Render(title) + "\n" + content
	style := PanelStyle
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(inner)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func (m Model) halfWidth() int {
	return m.contentWidth() / 2
}

func (m Model) thirdWidth() int {
	return m.contentWidth() / 3
}

// gaugeBarWidth leaves room inside a panel for the gauge's text label.
func gaugeBarWidth(panelWidth int, label string) int {
	w := panelWidth - len(label) - 6
	if w < 4 {
		w = 4
	}
	return w
}

func sampleValues(samples []store.Sample) []float64 {
	if len(samples) == 0 {
		return nil
	}
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	return values
}

// formatBytes formats a byte count as a human-readable string.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	// EB covers the full uint64 range; cumulative network counters get here.
	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// formatUptime formats a duration as days/hours/minutes.
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
