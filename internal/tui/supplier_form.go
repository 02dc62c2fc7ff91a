package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

type supplierFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newSupplierFormModel() supplierFormModel {
	placeholders := []string{
		"company name",
		"email (optional)",
		"phone (optional)",
		"whatsapp (optional)",
		"city (optional)",
		"state (optional)",
		"cnpj (optional)",
		"notes (optional)",
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 200
		in.Width = 45
		inputs[i] = in
	}
	inputs[0].Focus()

	return supplierFormModel{inputs: inputs}
}

func (m supplierFormModel) View() string {
	out := viewTitle("New supplier")
	labels := []string{"Name:    ", "Email:   ", "Phone:   ", "WhatsApp:", "City:    ", "State:   ", "CNPJ:    ", "Notes:   "}
	out += "\n"
	for i, in := range m.inputs {
		out += labels[i] + " [" + in.View() + "]\n"
	}

	if m.submitting {
		out += "\n[Saving...]\n"
	} else {
		out += "\n[Save]\n"
	}

	out += "\n" + helpStyle.Render("esc back  tab next field  enter submit")
	return out
}

func (m appModel) updateSupplierForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenSuppliers
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.supplierForm.focus = cycleFocus(m.supplierForm.inputs, m.supplierForm.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.supplierForm.focus = cycleFocus(m.supplierForm.inputs, m.supplierForm.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.supplierForm.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.supplierForm.inputs[0].Value())
			if name == "" {
				m.showErrorf("A company name is required")
				return m, nil
			}
			m.supplierForm.submitting = true
			return m, m.cmdCreateSupplier(models.CreateSupplierRequest{
				Name:     name,
				Email:    strings.TrimSpace(m.supplierForm.inputs[1].Value()),
				Phone:    strings.TrimSpace(m.supplierForm.inputs[2].Value()),
				WhatsApp: strings.TrimSpace(m.supplierForm.inputs[3].Value()),
				City:     strings.TrimSpace(m.supplierForm.inputs[4].Value()),
				State:    strings.TrimSpace(m.supplierForm.inputs[5].Value()),
				CNPJ:     strings.TrimSpace(m.supplierForm.inputs[6].Value()),
				Notes:    strings.TrimSpace(m.supplierForm.inputs[7].Value()),
			})
		}
	}

	var cmd tea.Cmd
	m.supplierForm.inputs[m.supplierForm.focus], cmd = m.supplierForm.inputs[m.supplierForm.focus].Update(msg)
	return m, cmd
}
