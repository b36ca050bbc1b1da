package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/firewall/internal/config"
	"github.com/vovakirdan/firewall/internal/core"
	"github.com/vovakirdan/firewall/internal/firewall"
)

// Options configure one game session.
type Options struct {
	Runtime  core.RuntimeConfig
	Sound    firewall.SoundSink
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil for the local terminal
}

// Model is the Bubble Tea model for one FIREWALL session.
// The engine and scheduler are shared by pointer, so copies of the Model made
// by Bubble Tea all drive the same game.
type Model struct {
	engine   *firewall.Engine
	sched    *TeaScheduler
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a model on the title screen.
func NewModel(cfg config.Config, opts Options) Model {
	sched := NewTeaScheduler()
	engine := firewall.New(cfg, firewall.Services{
		Random:    firewall.NewSimpleRNG(opts.Runtime.Seed),
		Scheduler: sched,
		Sound:     opts.Sound,
		Logger:    opts.Logger,
	})

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		engine:   engine,
		sched:    sched,
		screen:   core.NewScreen(opts.Runtime.ScreenW, boardRows(opts.Runtime.ScreenH)),
		renderer: NewRenderer(opts.Renderer),
		keys:     DefaultKeyMap(),
		help:     h,
	}
}

// boardRows leaves one terminal row for the help bar.
func boardRows(screenH int) int {
	return max(screenH-1, 1)
}

// Engine returns the game engine.
func (m Model) Engine() *firewall.Engine {
	return m.engine
}

// Init implements tea.Model. Nothing runs until the player begins.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.engine.Begin()
		}
		return m, m.sched.Drain()

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, boardRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FireMsg:
		return m, m.sched.Fire(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg, m.engine.State())
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.engine.Apply(action)

	// Begin and Reset arm a new main loop; hand its first tick to Bubble Tea.
	return m, m.sched.Drain()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg config.Config, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks begin the game
	)

	_, err := p.Run()
	return err
}
