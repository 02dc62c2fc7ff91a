package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	labels := []struct {
		placeholder string
		secret      bool
	}{
		{placeholder: "name"},
		{placeholder: "email"},
		{placeholder: "password", secret: true},
		{placeholder: "repeat password", secret: true},
		{placeholder: "department (optional)"},
		{placeholder: "phone (optional)"},
	}

	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		in.CharLimit = 120
		in.Width = 40
		if l.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	inputs[0].Focus()

	return registerModel{inputs: inputs}
}

func (m registerModel) View() string {
	out := viewTitle("Create an account")
	labels := []string{"Name:      ", "Email:     ", "Password:  ", "Repeat:    ", "Department:", "Phone:     "}
	out += "\n"
	for i, in := range m.inputs {
		out += labels[i] + " [" + in.View() + "]\n"
	}

	if m.submitting {
		out += "\n[Creating...]\n"
	} else {
		out += "\n[Create account]\n"
	}

	out += "\n" + helpStyle.Render("esc back  tab next field  enter submit")
	return out
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if name == "" || email == "" || pass == "" {
				m.showErrorf("Name, email and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Name:       name,
				Email:      email,
				Password:   pass,
				Department: strings.TrimSpace(m.register.inputs[4].Value()),
				Phone:      strings.TrimSpace(m.register.inputs[5].Value()),
			})
		}
		if keyMsg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}
