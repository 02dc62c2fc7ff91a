package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuModel struct {
	items []string
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{items: []string{
		"Dashboard",
		"Items",
		"Suppliers",
		"Quotations",
		"Settings",
	}}
}

func (m menuModel) View() string {
	out := titleStyle.Render("SOL Procurement") + "\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("enter open  L logout  q quit")
	return out
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.menu.idx {
		case 0:
			m.currentScreen = screenDashboard
			m.dashboard.loading = true
			return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadDashboard())
		case 1:
			m.currentScreen = screenItems
			m.items.loading = true
			return m, m.cmdLoadItems()
		case 2:
			m.currentScreen = screenSuppliers
			m.suppliers.loading = true
			return m, m.cmdLoadSuppliers()
		case 3:
			m.currentScreen = screenQuotations
			m.quotations.loading = true
			return m, m.cmdLoadQuotations()
		case 4:
			m.settings = newSettingsModel(m.sess.Snapshot(), m.cfg)
			m.currentScreen = screenSettings
		}
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}
