// Package tui provides the Bubble Tea frontend for the flappy simulation.
// It handles the terminal loop, input mapping, tick scheduling and styling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/tick"
)

// TickMsg is sent when a tick source's interval elapses.
type TickMsg struct {
	Source string
	Gen    uint64
}

// teaSource is a tick.Source backed by tea.Tick. A tea.Tick cannot be
// cancelled, so Start and Stop bump a generation and ticks carrying an older
// generation are dropped on arrival. A dropped tick is never re-armed, which
// releases the timer chain.
type teaSource struct {
	name     string
	interval time.Duration
	fn       func()
	gen      uint64
	active   bool
	pending  bool // Needs a tea.Tick issued for the current generation
}

// Start arms the source. Starting an active source keeps its running chain.
func (s *teaSource) Start() {
	if s.active {
		return
	}
	s.gen++
	s.active = true
	s.pending = true
}

// Stop disarms the source and invalidates any tick in flight.
func (s *teaSource) Stop() {
	if !s.active {
		return
	}
	s.gen++
	s.active = false
	s.pending = false
}

// Active reports whether the source is started.
func (s *teaSource) Active() bool {
	return s.active
}

// arm returns the command for the next tick, or nil when none is needed.
func (s *teaSource) arm() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	name, gen := s.name, s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{Source: name, Gen: gen}
	})
}

// handle runs the step for a current tick and schedules the next one.
// The step may stop the source, in which case nothing is re-armed.
func (s *teaSource) handle(msg TickMsg) bool {
	if !s.active || msg.Gen != s.gen {
		return false
	}
	s.pending = true
	s.fn()
	return true
}

// scheduler owns the tea-backed sources of one program.
type scheduler struct {
	sources map[string]*teaSource
	order   []*teaSource
}

func newScheduler() *scheduler {
	return &scheduler{sources: make(map[string]*teaSource)}
}

// Build implements tick.Factory.
func (s *scheduler) Build(name string, interval time.Duration, fn func()) tick.Source {
	src := &teaSource{name: name, interval: interval, fn: fn}
	s.sources[name] = src
	s.order = append(s.order, src)
	return src
}

// Handle routes a tick to its source. Returns false for stale or unknown ticks.
func (s *scheduler) Handle(msg TickMsg) bool {
	src, ok := s.sources[msg.Source]
	if !ok {
		return false
	}
	return src.handle(msg)
}

// Cmd collects the pending tea.Tick commands of every source.
func (s *scheduler) Cmd() tea.Cmd {
	var cmds []tea.Cmd
	for _, src := range s.order {
		if cmd := src.arm(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
