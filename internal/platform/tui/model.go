package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures a terminal session.
type Options struct {
	Config        config.FlappyConfig
	Width, Height int         // Terminal size in cells
	Logger        *log.Logger // nil discards
	ScreenshotDir string      // Empty means ~/.flappy/screenshots
}

// Model is the Bubble Tea model for the game screen. The last terminal row
// holds the help footer; the rest is the play field.
type Model struct {
	runner   *engine.Runner
	sched    *scheduler
	cfg      config.FlappyConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	shotDir  string
	quitting bool
}

// NewModel creates the model and its runner. The simulation starts stopped
// behind the title overlay.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := newScheduler()
	sim := flappy.New(opts.Config, nil)
	runner := engine.NewRunner(sim, sched.Build, logger)

	h := help.New()
	h.Width = opts.Width

	return Model{
		runner:  runner,
		sched:   sched,
		cfg:     opts.Config,
		screen:  core.NewScreen(opts.Width, fieldRows(opts.Height)),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		shotDir: opts.ScreenshotDir,
	}
}

func fieldRows(height int) int {
	return core.Clamp(height-1, 1, height)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.sched.Cmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.Action(msg))

	case tea.MouseMsg:
		_, button := flappy.OverlayLayout(m.screen.Width(), m.screen.Height())
		return m.apply(MouseAction(msg, m.runner.Running(), button))

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, fieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.sched.Handle(msg)
		return m, m.sched.Cmd()
	}

	return m, nil
}

// apply performs an input action and returns any tick commands it armed.
func (m Model) apply(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.runner.Close()
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.runner.Jump()
	case core.ActionStart:
		m.runner.Start()
	case core.ActionScreenshot:
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
	}
	return m, m.sched.Cmd()
}

// saveScreenshot writes the current play field as plain text.
func (m Model) saveScreenshot() error {
	flappy.Render(m.runner.Snapshot(), m.cfg, m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.runner.Simulation().ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the play field and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flappy.Render(m.runner.Snapshot(), m.cfg, m.screen)

	footer := fmt.Sprintf("best %d  %s", m.runner.Best(), m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap and press the start button
	)

	_, err := p.Run()
	model.runner.Close()
	return err
}
