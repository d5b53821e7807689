package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skyflap/skyflap/internal/accounts"
)

// formErrTimeout is how long a form error stays on screen.
const formErrTimeout = 3 * time.Second

// clearFormErrMsg expires a form error message.
type clearFormErrMsg struct{ id int }

// FormMode selects between the login and signup forms.
type FormMode int

const (
	FormLogin FormMode = iota
	FormSignup
)

// FormModel is the Bubble Tea model for the login and signup screens.
type FormModel struct {
	mode   FormMode
	inputs []textinput.Model
	focus  int

	store  *accounts.Store
	errMsg string
	errID  int // Bumped per error so stale expiry ticks are ignored

	username string // Set on successful login/signup
	done     bool
	canceled bool

	width  int
	height int
}

// NewFormModel creates a login or signup form.
func NewFormModel(mode FormMode, store *accounts.Store, width, height int) FormModel {
	n := 2
	if mode == FormSignup {
		n = 3
	}

	inputs := make([]textinput.Model, n)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 32
		ti.Width = 24
		inputs[i] = ti
	}

	inputs[0].Placeholder = "username"
	inputs[1].Placeholder = "password"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '•'
	if mode == FormSignup {
		inputs[2].Placeholder = "confirm password"
		inputs[2].EchoMode = textinput.EchoPassword
		inputs[2].EchoCharacter = '•'
	}

	inputs[0].Focus()

	return FormModel{
		mode:   mode,
		inputs: inputs,
		store:  store,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, nil

		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil

		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m, m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearFormErrMsg:
		if msg.id == m.errID {
			m.errMsg = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus to the given input.
func (m *FormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// fail shows an error message that expires after formErrTimeout.
func (m *FormModel) fail(msg string) tea.Cmd {
	m.errMsg = msg
	m.errID++
	id := m.errID
	return tea.Tick(formErrTimeout, func(time.Time) tea.Msg {
		return clearFormErrMsg{id: id}
	})
}

// submit validates the form and hits the account store.
func (m *FormModel) submit() tea.Cmd {
	username := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()

	if username == "" || password == "" {
		return m.fail("username and password are required")
	}
	if m.store == nil {
		return m.fail("accounts are unavailable")
	}

	switch m.mode {
	case FormLogin:
		ok, err := m.store.Verify(username, password)
		if err != nil {
			return m.fail("could not check credentials")
		}
		if !ok {
			return m.fail("invalid username or password")
		}

	case FormSignup:
		if password != m.inputs[2].Value() {
			return m.fail("passwords do not match")
		}
		created, err := m.store.Create(username, password)
		if err != nil {
			return m.fail("could not create account")
		}
		if !created {
			return m.fail("username is already taken")
		}
	}

	m.username = username
	m.done = true
	return nil
}

// View renders the form.
func (m FormModel) View() string {
	title := "LOG IN"
	if m.mode == FormSignup {
		title = "SIGN UP"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	errStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab next field, enter submit, esc back"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(b.String()))
}

// Done returns the authenticated username when the form has succeeded.
func (m FormModel) Done() (string, bool) {
	return m.username, m.done
}

// Canceled returns true if the user backed out of the form.
func (m FormModel) Canceled() bool {
	return m.canceled
}
