package dashboard

import "time"

// Tab identifies one dashboard view. Exactly one is active at a time.
type Tab int

const (
	TabOverview Tab = iota
	TabProcesses
	TabNetwork
	TabHelp
)

// tabCount is the number of cycleable tabs.
const tabCount = 4

// String returns the tab title shown in the tab strip.
func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabProcesses:
		return "Processes"
	case TabNetwork:
		return "Network"
	case TabHelp:
		return "Help"
	default:
		return "Overview"
	}
}

// DefaultTabDebounce is the minimum gap between accepted tab-cycle
// transitions, preventing flicker under key-repeat.
const DefaultTabDebounce = 150 * time.Millisecond

// State is the dashboard state machine: active tab, process scroll offset,
// debounce bookkeeping, and the pending-refresh flag. It is mutated only by
// the render loop's event handling, never by the sampler.
type State struct {
	ActiveTab        Tab
	ProcessScroll    int
	RefreshRequested bool

	lastTabSwitch time.Time
	debounce      time.Duration
	shuttingDown  bool
}

// NewState creates the startup state: Overview tab, zero scroll.
// A negative debounce falls back to the default.
func NewState(debounce time.Duration) State {
	if debounce < 0 {
		debounce = DefaultTabDebounce
	}
	return State{debounce: debounce}
}

// JumpTo activates a tab unconditionally (direct-jump keys), independent of
// the debounce timer. Switching tabs resets the process scroll offset.
func (s *State) JumpTo(tab Tab, now time.Time) {
	if tab == s.ActiveTab {
		return
	}
	s.ActiveTab = tab
	s.ProcessScroll = 0
	s.lastTabSwitch = now
}

// NextTab advances to the following tab, wrapping around. The transition is
// accepted only if the debounce window has elapsed since the last switch;
// rejected transitions are dropped, not queued. Reports whether it switched.
func (s *State) NextTab(now time.Time) bool {
	return s.cycle(1, now)
}

// PrevTab moves to the preceding tab, wrapping around, with the same
// debounce rule as NextTab.
func (s *State) PrevTab(now time.Time) bool {
	return s.cycle(tabCount-1, now)
}

func (s *State) cycle(step int, now time.Time) bool {
	if now.Sub(s.lastTabSwitch) < s.debounce {
		return false
	}
	s.ActiveTab = Tab((int(s.ActiveTab) + step) % tabCount)
	s.ProcessScroll = 0
	s.lastTabSwitch = now
	return true
}

// ScrollUp decrements the process scroll offset, saturating at zero.
// Accepted only on the Processes tab. Reports whether the offset changed.
func (s *State) ScrollUp() bool {
	if s.ActiveTab != TabProcesses || s.ProcessScroll == 0 {
		return false
	}
	s.ProcessScroll--
	return true
}

// ScrollDown increments the process scroll offset up to maxOffset.
// Accepted only on the Processes tab. Reports whether the offset changed.
func (s *State) ScrollDown(maxOffset int) bool {
	if s.ActiveTab != TabProcesses || s.ProcessScroll >= maxOffset {
		return false
	}
	s.ProcessScroll++
	return true
}

// ClampScroll re-bounds the offset after the process count or viewport
// changed between frames.
func (s *State) ClampScroll(maxOffset int) {
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ProcessScroll > maxOffset {
		s.ProcessScroll = maxOffset
	}
	if s.ProcessScroll < 0 {
		s.ProcessScroll = 0
	}
}

// MaxScrollOffset returns the largest valid scroll offset for a process list
// of the given size in the given viewport.
func MaxScrollOffset(processCount, viewportHeight int) int {
	if viewportHeight < 0 {
		viewportHeight = 0
	}
	max := processCount - viewportHeight
	if max < 0 {
		return 0
	}
	return max
}

// RequestRefresh marks a force-refresh as pending; the render loop forwards
// it to the sampler and clears the flag before the next frame.
func (s *State) RequestRefresh() {
	s.RefreshRequested = true
}

// Quit enters the terminal shutting-down state.
func (s *State) Quit() {
	s.shuttingDown = true
}

// ShuttingDown reports whether a quit key was accepted.
func (s *State) ShuttingDown() bool {
	return s.shuttingDown
}
