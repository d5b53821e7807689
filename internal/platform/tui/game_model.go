package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/skyflap/skyflap/internal/config"
	"github.com/skyflap/skyflap/internal/core"
	"github.com/skyflap/skyflap/internal/game"
)

// TickMsg drives the fixed-rate simulation; one message is one tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the configured rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// GameModel is the Bubble Tea model for one play session.
type GameModel struct {
	session *game.Session
	screen  *core.Screen

	gameCfg  config.GameConfig
	rt       core.RuntimeConfig
	username string
	recorder game.HighScoreRecorder
	logger   *log.Logger

	keyMapper *KeyMapper
	frame     core.InputFrame

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a play session model. recorder may be nil for
// guest play; highScore seeds the session with the user's persisted best.
func NewGameModel(gameCfg config.GameConfig, rt core.RuntimeConfig, username string, highScore int, recorder game.HighScoreRecorder, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	return GameModel{
		session:   game.NewSession(gameCfg, rt, username, highScore, recorder),
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		gameCfg:   gameCfg,
		rt:        rt,
		username:  username,
		recorder:  recorder,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		frame:     core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	over := m.session.Phase() == game.PhaseOver
	paused := m.session.Phase() == game.PhasePaused

	// Back to menu from the game-over screen or the pause menu.
	if msg.String() == "b" && (over || paused) {
		m.backToMenu = true
		return m, nil
	}

	// Restarting after game over needs a fresh session; the session
	// itself is terminal once over.
	if over {
		switch msg.String() {
		case "n":
			m.rt.Seed = time.Now().UnixNano()
			m.session = game.NewSession(m.gameCfg, m.rt, m.username,
				m.session.Snapshot().HighScore, m.recorder)
			m.frame.Clear()
			return m, nil
		case "q", "ctrl+c":
			m.quitting = true
			return m, nil
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.frame) {
		// Quit still flows through the session so the run ends cleanly;
		// the game-over screen shows the final score.
		return m, nil
	}

	return m, nil
}

// handleTick advances the simulation by one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(m.frame)
	m.frame.Clear()

	// High-score write failures never stop play; surface them in the log.
	if err := m.session.TakePersistError(); err != nil {
		m.logger.Warn("could not persist high score", "user", m.username, "error", err)
	}

	return m, tickCmd(m.rt.TickRate)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.session.Snapshot(), m.rt.TickRate, time.Now())
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
