package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

type itemDetailModel struct {
	item models.Item
}

func (m itemDetailModel) View() string {
	it := m.item
	out := viewTitle("Item #" + fmt.Sprint(it.ID))
	out += "\n"
	out += "Name:        " + valueOrDash(itemLabel(it)) + "\n"
	out += "Status:      " + string(it.Status) + "\n"
	out += "Source:      " + string(it.Source) + "\n"
	out += "Brand:       " + valueOrDash(it.Brand) + "\n"
	out += "Model:       " + valueOrDash(it.Model) + "\n"
	out += "Category:    " + valueOrDash(it.Category) + "\n"
	out += fmt.Sprintf("Quantity:    %d %s\n", it.Quantity, it.Unit)
	out += fmt.Sprintf("Priority:    %d\n", it.Priority)
	if it.AIConfidence != nil {
		out += fmt.Sprintf("Confidence:  %s\n", formatPercent(*it.AIConfidence*100))
	}
	out += "Notes:       " + valueOrDash(it.Notes) + "\n"
	out += "Created:     " + formatDate(it.CreatedAt) + "\n"

	out += "\n" + helpStyle.Render("e edit  d delete  s start quotation  esc back")
	return out
}

func (m appModel) updateItemDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenItems
	case key.Matches(keyMsg, keys.edit):
		m.itemEdit = newItemEditModel(m.itemDetail.item)
		m.currentScreen = screenItemEdit
	case key.Matches(keyMsg, keys.delete):
		id := m.itemDetail.item.ID
		m.askConfirm(
			fmt.Sprintf("Delete %q?", itemLabel(m.itemDetail.item)),
			m.cmdDeleteItem(id),
		)
	case key.Matches(keyMsg, keys.stats):
		return m, m.cmdStartQuotation(m.itemDetail.item.ID)
	}
	return m, nil
}
