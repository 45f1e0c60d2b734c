package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magequest/internal/config"
	"github.com/vovakirdan/magequest/internal/core"
	"github.com/vovakirdan/magequest/internal/registry"
)

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig
	Width   int // Initial terminal size, replaced by the first resize
	Height  int
	LatchMs int // Held-key window, DefaultLatchMs if zero
	Clock   core.Clock
	Reloads <-chan config.Reload // Optional config hot reloads
	Logger  *log.Logger
}

// ReloadMsg carries a config reload into the update loop.
type ReloadMsg config.Reload

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	clock    core.Clock
	keys     KeyMap
	help     help.Model
	input    *inputLatch
	reloads  <-chan config.Reload
	logger   *log.Logger
	field    core.Rect
	state    core.GameState
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Width <= 0 || opts.Height <= 1 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.LatchMs <= 0 {
		opts.LatchMs = DefaultLatchMs
	}
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		game:    game,
		screen:  core.NewScreen(opts.Width, opts.Height-1),
		config:  opts.Runtime,
		clock:   opts.Clock,
		keys:    DefaultKeyMap(),
		help:    h,
		input:   newInputLatch(opts.LatchMs),
		reloads: opts.Reloads,
		logger:  opts.Logger,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ReloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.input.quit = true
		return m, nil
	}

	now := m.clock.NowMillis()
	for _, a := range m.keys.Actions(msg) {
		m.input.key(a, now)
	}
	return m, nil
}

// handleMouse queues left clicks in field coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() || m.field.W == 0 {
		return m, nil
	}
	m.input.click(cellToField(msg.X, msg.Y, m.screen.Width(), m.screen.Height(), m.field))
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.NowMillis()
	result := m.game.Step(core.TickContext{Now: now, Input: m.input.frame(now)})
	m.state = result.State
	m.field = m.game.Frame().Field

	if m.state.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	if r.Err != nil {
		m.logger.Warn("config reload failed", "path", r.Path, "err", r.Err)
	} else {
		m.game.Reconfigure(r.Config)
		m.logger.Info("config reloaded", "path", r.Path)
	}
	return m, waitForReload(m.reloads)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Paint(m.screen, m.game.Frame())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)
	model.logger.Info("terminal session started", "game", game.ID())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	model.logger.Info("terminal session ended", "game", game.ID())
	return err
}
