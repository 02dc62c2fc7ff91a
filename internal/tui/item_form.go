package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

// itemFormModel is the create-from-description form. The backend's AI
// pipeline identifies the product from the free-text description.
type itemFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newItemFormModel() itemFormModel {
	placeholders := []string{
		"what do you need, in your own words",
		"quantity (default 1)",
		"unit (default un)",
		"priority 1-5 (default 3)",
		"notes (optional)",
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 500
		in.Width = 50
		inputs[i] = in
	}
	inputs[0].Focus()

	return itemFormModel{inputs: inputs}
}

func (m itemFormModel) View() string {
	out := viewTitle("Describe the item")
	labels := []string{"Description:", "Quantity:   ", "Unit:       ", "Priority:   ", "Notes:      "}
	out += "\n"
	for i, in := range m.inputs {
		out += labels[i] + " [" + in.View() + "]\n"
	}

	if m.submitting {
		out += "\n[Creating...]\n"
	} else {
		out += "\n[Create]\n"
	}

	out += "\n" + helpStyle.Render("esc back  tab next field  enter submit")
	return out
}

// parseCount parses a small positive integer form field, returning 0 for
// blank or junk input so the backend default applies.
func parseCount(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (m appModel) updateItemForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenItemSource
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.itemForm.focus = cycleFocus(m.itemForm.inputs, m.itemForm.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.itemForm.focus = cycleFocus(m.itemForm.inputs, m.itemForm.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.itemForm.submitting {
				return m, nil
			}
			description := strings.TrimSpace(m.itemForm.inputs[0].Value())
			if description == "" {
				m.showErrorf("A description is required")
				return m, nil
			}
			m.itemForm.submitting = true
			return m, m.cmdCreateItemFromDescription(models.CreateItemFromDescription{
				Description: description,
				Quantity:    parseCount(m.itemForm.inputs[1].Value()),
				Unit:        strings.TrimSpace(m.itemForm.inputs[2].Value()),
				Priority:    parseCount(m.itemForm.inputs[3].Value()),
				Notes:       strings.TrimSpace(m.itemForm.inputs[4].Value()),
			})
		}
	}

	var cmd tea.Cmd
	m.itemForm.inputs[m.itemForm.focus], cmd = m.itemForm.inputs[m.itemForm.focus].Update(msg)
	return m, cmd
}
