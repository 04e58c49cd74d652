package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/game"
	"github.com/vovakirdan/skyfall/internal/tilt"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// Options configures a game model.
type Options struct {
	Game      config.SkyfallConfig
	Runtime   core.RuntimeConfig // Screen size is the whole terminal
	Logger    *log.Logger
	Observers []game.Observer

	// Autopilot steers with Perlin noise until the first arrow key press.
	Autopilot bool
}

// Model is the Bubble Tea model running one skyfall game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	fixedSeed  bool
	keys       KeyMap
	help       help.Model
	keyboard   *tilt.Keyboard
	sensor     tilt.Sensor
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a model and resets its game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH -= footerHeight

	keyboard := tilt.NewKeyboard(opts.Game.Input)
	var sensor tilt.Sensor = keyboard
	if opts.Autopilot {
		sensor = tilt.Blend{keyboard, tilt.NewPerlin(cfg.Seed, opts.Game.Input)}
	}

	g := game.New(opts.Game, game.Options{
		Logger:    opts.Logger,
		Observers: opts.Observers,
	})
	g.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		fixedSeed:  fixedSeed,
		keys:       DefaultKeyMap(),
		help:       h,
		keyboard:   keyboard,
		sensor:     sensor,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionTiltLeft:
		m.keyboard.Nudge(-1)
	case core.ActionTiltRight:
		m.keyboard.Nudge(1)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns left clicks on the playfield into taps.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.config.ScreenH {
		return m, nil
	}
	m.inputFrame.Tap(m.game.ScreenToWorld(msg.X, msg.Y))
	return m, nil
}

// handleResize starts a new world sized to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - footerHeight
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.keyboard.Level()
	m.inputFrame.Clear()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.keyboard.Level()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.gameState.Paused {
		if accel, ok := m.sensor.Sample(); ok {
			m.inputFrame.SetTilt(accel)
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the state reported by the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
