package configure

import (
	"errors"
	"io"
	"strings"

	"s3-cloud/internal/shared/apperr"
	"s3-cloud/internal/shared/ui"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrCancelled = errors.New("credentials form cancelled")

type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = formKeys{
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

var labels = []string{"Access key", "Secret key"}

type formModel struct {
	inputs    []textinput.Model
	focus     int
	submitted bool
	cancelled bool

	help help.Model
	keys formKeys
}

func newFormModel(accessKey, secretKey string) formModel {
	access := textinput.New()
	access.Placeholder = "AKIA..."
	access.Prompt = ""
	access.SetValue(accessKey)

	secret := textinput.New()
	secret.Placeholder = "secret"
	secret.Prompt = ""
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '•'
	secret.SetValue(secretKey)

	m := formModel{
		inputs: []textinput.Model{access, secret},
		help:   help.New(),
		keys:   keys,
	}
	m.inputs[0].Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *formModel) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	m.focus = (i%n + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			if m.focus == len(m.inputs)-1 {
				m.submitted = true
				return m, tea.Quit
			}
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.HeaderStyle.Render("s3-cloud credentials"))
	b.WriteString("\n")
	for i, in := range m.inputs {
		label := ui.LabelStyle
		if i == m.focus {
			label = ui.ActiveLabelStyle
		}
		b.WriteString(label.Render(labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(ui.HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

func (m formModel) values() (string, string) {
	return m.inputs[0].Value(), m.inputs[1].Value()
}

// RunForm shows the credentials form on out and returns the submitted
// values, or ErrCancelled.
func RunForm(in io.Reader, out io.Writer, accessKey, secretKey string) (string, string, error) {
	p := tea.NewProgram(newFormModel(accessKey, secretKey), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return "", "", apperr.IO("failed to run credentials form", err)
	}

	m, ok := final.(formModel)
	if !ok || !m.submitted {
		return "", "", ErrCancelled
	}
	access, secret := m.values()
	if access == "" || secret == "" {
		return "", "", apperr.Config("both keys are required")
	}
	return access, secret, nil
}
