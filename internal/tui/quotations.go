package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

type quotationsModel struct {
	page    models.PaginatedQuotations
	idx     int
	loading bool
	status  string
	err     error
}

func newQuotationsModel() quotationsModel {
	return quotationsModel{loading: true}
}

func (m quotationsModel) current() (models.Quotation, bool) {
	if len(m.page.Items) == 0 || m.idx < 0 || m.idx >= len(m.page.Items) {
		return models.Quotation{}, false
	}
	return m.page.Items[m.idx], true
}

func (m *quotationsModel) clampCursor() {
	if m.idx >= len(m.page.Items) {
		m.idx = len(m.page.Items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m quotationsModel) View() string {
	out := viewTitle("Quotations")
	switch {
	case m.loading:
		out += "\nLoading...\n"
	case m.err != nil:
		out += "\nNothing to show: " + humanizeError(m.err) + "\n"
	case len(m.page.Items) == 0:
		out += "\nNo quotations yet. Start one from an item.\n"
	default:
		out += "\n"
		for i, q := range m.page.Items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s#%-5d item %-5d supplier %-5d %-12s %s\n",
				cursor, q.ID, q.ItemID, q.SupplierID, q.Status, formatMoneyPtr(q.FinalPrice))
		}
		out += fmt.Sprintf("\n%d of %d (page %d)\n", len(m.page.Items), m.page.Total, m.page.Page)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter receive  a accept  x reject  g negotiate  m compare  c copy id  r refresh  esc back")
	return out
}

func (m appModel) updateQuotations(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.quotations.idx > 0 {
			m.quotations.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.quotations.idx < len(m.quotations.page.Items)-1 {
			m.quotations.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.quotations.page.Page > 1 {
			m.quotations.page.Page--
			m.quotations.loading = true
			return m, m.cmdLoadQuotations()
		}
	case key.Matches(keyMsg, keys.right):
		if m.quotations.page.Page*m.quotations.page.PerPage < m.quotations.page.Total {
			m.quotations.page.Page++
			m.quotations.loading = true
			return m, m.cmdLoadQuotations()
		}
	case key.Matches(keyMsg, keys.enter):
		q, ok := m.quotations.current()
		if !ok {
			return m, nil
		}
		if q.Status != models.QuotationStatusPending {
			m.showErrorf("Only a pending quotation can be received")
			return m, nil
		}
		m.receive = newReceiveModel(q)
		m.currentScreen = screenQuotationReceive
	case key.Matches(keyMsg, keys.accept):
		q, ok := m.quotations.current()
		if !ok {
			return m, nil
		}
		m.askConfirm(fmt.Sprintf("Accept quotation #%d?", q.ID), m.cmdAcceptQuotation(q.ID))
	case key.Matches(keyMsg, keys.reject):
		q, ok := m.quotations.current()
		if !ok {
			return m, nil
		}
		m.askConfirm(fmt.Sprintf("Reject quotation #%d?", q.ID), m.cmdRejectQuotation(q.ID))
	case keyMsg.String() == "g":
		q, ok := m.quotations.current()
		if !ok {
			return m, nil
		}
		m.negotiation = negotiationModel{loading: true}
		return m, m.cmdStartNegotiation(q.ID)
	case key.Matches(keyMsg, keys.compare):
		q, ok := m.quotations.current()
		if !ok {
			return m, nil
		}
		m.compare = compareModel{loading: true}
		m.currentScreen = screenCompare
		return m, m.cmdCompareQuotations(q.ItemID)
	case key.Matches(keyMsg, keys.copy):
		q, ok := m.quotations.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(fmt.Sprint(q.ID))
	case key.Matches(keyMsg, keys.refresh):
		m.quotations.loading = true
		m.quotations.err = nil
		return m, m.cmdLoadQuotations()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}
