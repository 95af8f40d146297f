package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sdl-shooter/internal/core"
	"github.com/vovakirdan/sdl-shooter/internal/registry"
)

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	now        func() time.Time
	stopwatch  *core.Stopwatch
	latch      *KeyLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	restart    bool
	quitting   bool
	backToMenu bool
	allowBack  bool // Whether Back returns to a menu
}

// GameOption customises a GameModel.
type GameOption func(*GameModel)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) GameOption {
	return func(m *GameModel) {
		m.now = now
	}
}

// WithBackToMenu lets Back leave the game when it is paused or over.
func WithBackToMenu() GameOption {
	return func(m *GameModel) {
		m.allowBack = true
	}
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultRuntimeConfig().TickRate
	}

	m := GameModel{
		game:       game,
		config:     cfg,
		logger:     logger,
		now:        time.Now,
		latch:      NewKeyLatch(DefaultFirstHold, DefaultRepeatHold),
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	now := m.now
	start := now()
	m.stopwatch = core.NewStopwatch(core.ClockFunc(func() uint64 {
		return uint64(now().Sub(start).Milliseconds())
	}))
	m.screen = core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH))
	return m
}

// playfieldRows leaves the last terminal row for the help line.
func playfieldRows(h int) int {
	return max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is in pixels, so resizing only changes the raster.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeld(action):
		m.inputFrame.Add(m.latch.Press(action, m.now()))
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.restart = true
		}
	case action == core.ActionBack:
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
	default:
		m.inputFrame.Press(action)
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.restart {
		m.restart = false
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.latch.Reset()
		m.stopwatch.Reset()
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.Events = m.latch.Expire(m.now(), m.inputFrame.Events)
	m.inputFrame.Dt = m.stopwatch.Lap()

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
