package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

type suppliersModel struct {
	page    models.PaginatedSuppliers
	idx     int
	loading bool
	status  string
	err     error
}

func newSuppliersModel() suppliersModel {
	return suppliersModel{loading: true}
}

func (m suppliersModel) current() (models.Supplier, bool) {
	if len(m.page.Items) == 0 || m.idx < 0 || m.idx >= len(m.page.Items) {
		return models.Supplier{}, false
	}
	return m.page.Items[m.idx], true
}

func (m *suppliersModel) clampCursor() {
	if m.idx >= len(m.page.Items) {
		m.idx = len(m.page.Items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m suppliersModel) View() string {
	out := viewTitle("Suppliers")
	switch {
	case m.loading:
		out += "\nLoading...\n"
	case m.err != nil:
		out += "\nNothing to show: " + humanizeError(m.err) + "\n"
	case len(m.page.Items) == 0:
		out += "\nNo suppliers yet. Press n to add one.\n"
	default:
		out += "\n"
		for i, s := range m.page.Items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%-30s %-12s %.1f★ %s\n",
				cursor, fitText(s.Name, 30), s.Status, s.Rating, valueOrDash(s.City))
		}
		out += fmt.Sprintf("\n%d of %d (page %d)\n", len(m.page.Items), m.page.Total, m.page.Page)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n new  s stats  c copy email  d delete  left/right page  r refresh  esc back")
	return out
}

func (m appModel) updateSuppliers(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.suppliers.idx > 0 {
			m.suppliers.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.suppliers.idx < len(m.suppliers.page.Items)-1 {
			m.suppliers.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.suppliers.page.Page > 1 {
			m.suppliers.page.Page--
			m.suppliers.loading = true
			return m, m.cmdLoadSuppliers()
		}
	case key.Matches(keyMsg, keys.right):
		if m.suppliers.page.Page*m.suppliers.page.PerPage < m.suppliers.page.Total {
			m.suppliers.page.Page++
			m.suppliers.loading = true
			return m, m.cmdLoadSuppliers()
		}
	case key.Matches(keyMsg, keys.newItem):
		m.supplierForm = newSupplierFormModel()
		m.currentScreen = screenSupplierForm
	case key.Matches(keyMsg, keys.stats):
		s, ok := m.suppliers.current()
		if !ok {
			return m, nil
		}
		m.supplierStats = supplierStatsModel{name: s.Name, loading: true}
		m.currentScreen = screenSupplierStats
		return m, m.cmdLoadSupplierStats(s.ID)
	case key.Matches(keyMsg, keys.copy):
		s, ok := m.suppliers.current()
		if !ok || s.Email == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(s.Email)
	case key.Matches(keyMsg, keys.delete):
		s, ok := m.suppliers.current()
		if !ok {
			return m, nil
		}
		m.askConfirm(fmt.Sprintf("Delete supplier %q?", s.Name), m.cmdDeleteSupplier(s.ID))
	case key.Matches(keyMsg, keys.refresh):
		m.suppliers.loading = true
		m.suppliers.err = nil
		return m, m.cmdLoadSuppliers()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}
