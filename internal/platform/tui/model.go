// Package tui provides the Bubble Tea integration for skyflap.
// It handles the terminal UI loop, input mapping, and screen flow.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/skyflap/skyflap/internal/accounts"
	"github.com/skyflap/skyflap/internal/config"
	"github.com/skyflap/skyflap/internal/core"
	"github.com/skyflap/skyflap/internal/game"
)

// appScreen identifies which screen the app is showing.
type appScreen int

const (
	screenMenu appScreen = iota
	screenLogin
	screenSignup
	screenPlay
	screenScores
)

// AppModel is the top-level Bubble Tea model: menu, account forms, the
// game itself, and the scoreboard.
type AppModel struct {
	store   *accounts.Store
	gameCfg config.GameConfig
	rt      core.RuntimeConfig
	logger  *log.Logger

	username string // Empty for guests

	screen appScreen
	menu   MenuModel
	form   FormModel
	game   *GameModel
	scores ScoreboardModel

	quitting bool
}

// NewAppModel creates the application model. store may be nil, in which
// case only guest play is available.
func NewAppModel(store *accounts.Store, gameCfg config.GameConfig, rt core.RuntimeConfig, username string, logger *log.Logger) AppModel {
	return AppModel{
		store:   store,
		gameCfg: gameCfg,
		rt:      rt,
		logger:  logger,

		username: username,
		screen:   screenMenu,
		menu:     NewMenuModel(username, rt.ScreenW, rt.ScreenH),
	}
}

// Init initializes the application.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track terminal size globally so new screens open at the right size.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.rt.ScreenW = wsm.Width
		m.rt.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenLogin, screenSignup:
		return m.updateForm(msg)
	case screenPlay:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}

	return m, nil
}

// updateMenu handles updates when the menu is active.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuChoicePlay:
		return m.startGame()

	case MenuChoiceLogin:
		m.form = NewFormModel(FormLogin, m.store, m.rt.ScreenW, m.rt.ScreenH)
		m.screen = screenLogin
		return m, m.form.Init()

	case MenuChoiceSignup:
		m.form = NewFormModel(FormSignup, m.store, m.rt.ScreenW, m.rt.ScreenH)
		m.screen = screenSignup
		return m, m.form.Init()

	case MenuChoiceScores:
		m.scores = NewScoreboardModel(m.store, m.rt.ScreenW, m.rt.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case MenuChoiceLogout:
		m.username = ""
		m.menu = NewMenuModel("", m.rt.ScreenW, m.rt.ScreenH)
		return m, nil

	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// startGame seeds the session with the user's persisted best and switches
// to the play screen.
func (m AppModel) startGame() (tea.Model, tea.Cmd) {
	highScore := 0
	var recorder game.HighScoreRecorder

	if m.username != "" && m.store != nil {
		recorder = m.store
		hs, err := m.store.HighScore(m.username)
		if err != nil {
			m.logger.Warn("could not read high score", "user", m.username, "error", err)
		} else {
			highScore = hs
		}
	}

	gm := NewGameModel(m.gameCfg, m.rt, m.username, highScore, recorder, m.logger)
	m.game = &gm
	m.screen = screenPlay
	return m, m.game.Init()
}

// updateForm handles updates when a login or signup form is active.
func (m AppModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	newForm, cmd := m.form.Update(msg)
	if formModel, ok := newForm.(FormModel); ok {
		m.form = formModel
	}

	if username, done := m.form.Done(); done {
		m.username = username
		m.screen = screenMenu
		m.menu = NewMenuModel(username, m.rt.ScreenW, m.rt.ScreenH)
		return m, m.menu.Init()
	}

	if m.form.Canceled() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.username, m.rt.ScreenW, m.rt.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateGame handles updates when the game is active.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.game == nil {
		m.screen = screenMenu
		return m, nil
	}

	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.username, m.rt.ScreenW, m.rt.ScreenH)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is active.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scoresModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = scoresModel
	}

	if m.scores.IsGoingBack() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.username, m.rt.ScreenW, m.rt.ScreenH)
		return m, m.menu.Init()
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenMenu:
		return m.menu.View()
	case screenLogin, screenSignup:
		return m.form.View()
	case screenPlay:
		if m.game != nil {
			return m.game.View()
		}
	case screenScores:
		return m.scores.View()
	}

	return ""
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(store *accounts.Store, gameCfg config.GameConfig, rt core.RuntimeConfig, username string, logger *log.Logger) error {
	model := NewAppModel(store, gameCfg, rt, username, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
