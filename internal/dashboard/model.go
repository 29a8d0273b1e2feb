// Package dashboard implements the interactive rendering loop: a Bubble Tea
// model that alternates between frame-timer ticks and keyboard events. Each
// frame reads one consistent snapshot from the store; key events mutate the
// dashboard state machine synchronously before the next paint. The sampler
// runs independently and is reached only through its force-refresh path.
package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkendall/sysdash/internal/config"
	"github.com/pkendall/sysdash/internal/logger"
	"github.com/pkendall/sysdash/internal/store"
)

// Refresher is the sampler's immediate-trigger path. Forwarding a refresh
// never blocks on a sampling cycle.
type Refresher interface {
	Refresh()
}

// frameMsg signals a redraw-timer tick.
type frameMsg time.Time

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	cfg     *config.Config
	store   *store.Store
	sampler Refresher
	log     logger.Logger

	keys  keyMap
	state State
	snap  store.Snapshot

	width  int
	height int
}

// NewModel creates the dashboard model. The store is read-shared with the
// sampler; all other state is owned by the render loop.
func NewModel(cfg *config.Config, st *store.Store, smp Refresher, log logger.Logger) Model {
	if log == nil {
		log = logger.Default()
	}
	return Model{
		cfg:     cfg,
		store:   st,
		sampler: smp,
		log:     log,
		keys:    newKeyMap(),
		state:   NewState(cfg.TabDebounce()),
	}
}

// Init takes the first snapshot and starts the frame timer.
func (m Model) Init() tea.Cmd {
	return m.frameTick()
}

// Update handles key events and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKey(msg, time.Now())
		if m.state.RefreshRequested {
			// Forward to the sampler's immediate-trigger path, then clear.
			m.log.Debug("force refresh forwarded to sampler")
			m.sampler.Refresh()
			m.state.RefreshRequested = false
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.log.Debug("terminal resized to %dx%d", msg.Width, msg.Height)
		m.width = msg.Width
		m.height = msg.Height
		m.state.ClampScroll(MaxScrollOffset(len(m.snap.Processes), m.processViewportHeight()))

	case frameMsg:
		// One consistent read per frame; the view renders from this copy.
		m.snap = m.store.Snapshot()
		m.state.ClampScroll(MaxScrollOffset(len(m.snap.Processes), m.processViewportHeight()))
		return m, m.frameTick()
	}

	return m, nil
}

// View renders the active tab from the frame's snapshot.
func (m Model) View() string {
	if m.state.ShuttingDown() {
		return ""
	}
	return m.renderDashboard()
}

// frameTick schedules the next redraw. The frame rate bounds repaints and is
// independent of the sampling cadence.
func (m Model) frameTick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// processViewportHeight is the number of process rows that fit in the
// current terminal, after the tab strip, summary gauges, table chrome, and
// status bar.
func (m Model) processViewportHeight() int {
	h := m.height - processViewChromeHeight
	if h < 0 {
		return 0
	}
	return h
}
