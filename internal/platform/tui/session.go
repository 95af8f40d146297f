package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sdl-shooter/internal/config"
	"github.com/vovakirdan/sdl-shooter/internal/core"
	"github.com/vovakirdan/sdl-shooter/internal/registry"
)

// SessionModel is the top-level model of one player: the game menu, the
// running game, and the best score per game while the session lasts.
// SSH connections and the local menu command each run one.
type SessionModel struct {
	gameCfg  config.ShooterConfig
	config   core.RuntimeConfig
	logger   *log.Logger
	menu     MenuModel
	game     *GameModel
	best     map[string]int
	quitting bool
}

// NewSessionModel creates a session that starts in the menu.
func NewSessionModel(gameCfg config.ShooterConfig, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	best := make(map[string]int)
	return SessionModel{
		gameCfg: gameCfg,
		config:  cfg,
		logger:  logger,
		menu:    NewMenuModel(cfg, best),
		best:    best,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to the game when one is running, otherwise to the menu.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch id := m.menu.Selected(); {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case id != "":
		return m.startGame(id)
	}
	return m, cmd
}

// startGame builds a fresh game for id with a new seed. The menu's quit
// command is dropped so the program keeps running.
func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id, m.gameCfg)
	if err != nil {
		m.logger.Error("cannot create game", "game", id, "error", err)
		m.menu = NewMenuModel(m.config, m.best)
		return m, nil
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	gm := NewGameModel(game, cfg, m.logger, WithBackToMenu())
	m.game = &gm
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}
	m.recordScore()

	switch {
	case m.game.BackToMenu():
		m.game = nil
		m.menu = NewMenuModel(m.config, m.best)
		return m, m.menu.Init()
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// recordScore keeps the best score the running game has reached.
func (m SessionModel) recordScore() {
	id := m.game.game.ID()
	if score := m.game.State().Score; score > m.best[id] {
		m.best[id] = score
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// Best returns the best score reached in game id during this session.
func (m SessionModel) Best(id string) int {
	return m.best[id]
}

// RunSession runs the menu and game flow in the local terminal.
func RunSession(gameCfg config.ShooterConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(gameCfg, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
