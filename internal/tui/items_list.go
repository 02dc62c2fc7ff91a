package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

type itemsModel struct {
	page    models.PaginatedItems
	idx     int
	loading bool
	err     error
}

func newItemsModel() itemsModel {
	return itemsModel{loading: true}
}

func (m itemsModel) current() (models.Item, bool) {
	if len(m.page.Items) == 0 || m.idx < 0 || m.idx >= len(m.page.Items) {
		return models.Item{}, false
	}
	return m.page.Items[m.idx], true
}

func (m *itemsModel) clampCursor() {
	if m.idx >= len(m.page.Items) {
		m.idx = len(m.page.Items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func itemLabel(it models.Item) string {
	name := it.Name
	if name == "" {
		name = fitText(it.OriginalDescription, 40)
	}
	if name == "" {
		name = fmt.Sprintf("item #%d", it.ID)
	}
	return name
}

func (m itemsModel) View() string {
	out := viewTitle("Items")
	switch {
	case m.loading:
		out += "\nLoading...\n"
	case m.err != nil:
		out += "\nNothing to show: " + humanizeError(m.err) + "\n"
	case len(m.page.Items) == 0:
		out += "\nNo items yet. Press n to create one.\n"
	default:
		out += "\n"
		for i, it := range m.page.Items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s[%-11s] x%-4d %s\n", cursor, it.Status, it.Quantity, itemLabel(it))
		}
		out += fmt.Sprintf("\n%d of %d (page %d)\n", len(m.page.Items), m.page.Total, m.page.Page)
	}

	out += "\n" + helpStyle.Render("enter open  n new  left/right page  r refresh  esc back  q quit")
	return out
}

func (m appModel) updateItems(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.items.idx > 0 {
			m.items.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.items.idx < len(m.items.page.Items)-1 {
			m.items.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.items.page.Page > 1 {
			m.items.page.Page--
			m.items.loading = true
			return m, m.cmdLoadItems()
		}
	case key.Matches(keyMsg, keys.right):
		if m.items.page.Page*m.items.page.PerPage < m.items.page.Total {
			m.items.page.Page++
			m.items.loading = true
			return m, m.cmdLoadItems()
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.items.current()
		if !ok {
			return m, nil
		}
		m.itemDetail = itemDetailModel{item: item}
		m.currentScreen = screenItemDetail
	case key.Matches(keyMsg, keys.newItem):
		m.itemSource = itemSourceModel{}
		m.currentScreen = screenItemSource
	case key.Matches(keyMsg, keys.refresh):
		m.items.loading = true
		m.items.err = nil
		return m, m.cmdLoadItems()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}
