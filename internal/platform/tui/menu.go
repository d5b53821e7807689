package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice identifies what the user picked from the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceLogin
	MenuChoiceSignup
	MenuChoiceScores
	MenuChoiceLogout
	MenuChoiceQuit
)

// menuItem is one selectable row in the main menu.
type menuItem struct {
	label  string
	choice MenuChoice
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []menuItem
	cursor    int
	width     int
	height    int
	username  string // Empty for guests
	keyMapper *KeyMapper
	choice    MenuChoice // Set when the user selects an item
}

// NewMenuModel creates the main menu. The item set depends on whether a
// user is logged in.
func NewMenuModel(username string, width, height int) MenuModel {
	var items []menuItem
	if username == "" {
		items = []menuItem{
			{"Play as guest", MenuChoicePlay},
			{"Log in", MenuChoiceLogin},
			{"Sign up", MenuChoiceSignup},
			{"High scores", MenuChoiceScores},
			{"Quit", MenuChoiceQuit},
		}
	} else {
		items = []menuItem{
			{"Play", MenuChoicePlay},
			{"High scores", MenuChoiceScores},
			{"Log out", MenuChoiceLogout},
			{"Quit", MenuChoiceQuit},
		}
	}

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		username:  username,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].choice
	}

	return m, nil
}

// Choice returns and clears the pending selection.
func (m *MenuModel) Choice() MenuChoice {
	c := m.choice
	m.choice = MenuChoiceNone
	return c
}

// View renders the menu.
func (m MenuModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S K Y F L A P"), m.width))
	b.WriteString("\n")

	who := "playing as guest"
	if m.username != "" {
		who = fmt.Sprintf("logged in as %s", m.username)
	}
	b.WriteString(centerText(subtitleStyle.Render(who), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.label
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtitleStyle.Render("up/down move, enter select, q quit"), m.width))

	return b.String()
}

// centerText centers a line of text within the given width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}
