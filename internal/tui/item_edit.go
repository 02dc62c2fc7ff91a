package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

// itemEditModel is a partial update form: blank fields are left untouched on
// the server, so the payload only carries what the user changed.
type itemEditModel struct {
	itemID     int64
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newItemEditModel(it models.Item) itemEditModel {
	values := []string{
		it.Name,
		it.Category,
		fmt.Sprint(it.Quantity),
		it.Unit,
		fmt.Sprint(it.Priority),
		it.Notes,
	}

	inputs := make([]textinput.Model, len(values))
	for i, v := range values {
		in := textinput.New()
		in.CharLimit = 500
		in.Width = 50
		in.SetValue(v)
		inputs[i] = in
	}
	inputs[0].Focus()

	return itemEditModel{itemID: it.ID, inputs: inputs}
}

func (m itemEditModel) View() string {
	out := viewTitle("Edit item #" + fmt.Sprint(m.itemID))
	labels := []string{"Name:    ", "Category:", "Quantity:", "Unit:    ", "Priority:", "Notes:   "}
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

func (m itemEditModel) toRequest() models.UpdateItemRequest {
	var req models.UpdateItemRequest
	if v := strings.TrimSpace(m.inputs[0].Value()); v != "" {
		req.Name = &v
	}
	if v := strings.TrimSpace(m.inputs[1].Value()); v != "" {
		req.Category = &v
	}
	if v := parseCount(m.inputs[2].Value()); v > 0 {
		req.Quantity = &v
	}
	if v := strings.TrimSpace(m.inputs[3].Value()); v != "" {
		req.Unit = &v
	}
	if v := parseCount(m.inputs[4].Value()); v > 0 {
		req.Priority = &v
	}
	if v := strings.TrimSpace(m.inputs[5].Value()); v != "" {
		req.Notes = &v
	}
	return req
}

func (m appModel) updateItemEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenItemDetail
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.itemEdit.focus = cycleFocus(m.itemEdit.inputs, m.itemEdit.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.itemEdit.focus = cycleFocus(m.itemEdit.inputs, m.itemEdit.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.itemEdit.submitting {
				return m, nil
			}
			m.itemEdit.submitting = true
			return m, m.cmdUpdateItem(m.itemEdit.itemID, m.itemEdit.toRequest())
		}
	}

	var cmd tea.Cmd
	m.itemEdit.inputs[m.itemEdit.focus], cmd = m.itemEdit.inputs[m.itemEdit.focus].Update(msg)
	return m, cmd
}
