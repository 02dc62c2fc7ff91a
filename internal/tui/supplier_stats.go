package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

type supplierStatsModel struct {
	name    string
	stats   models.SupplierStats
	loading bool
	err     error
}

func (m supplierStatsModel) View() string {
	out := viewTitle("Supplier stats: " + m.name)
	switch {
	case m.loading:
		out += "\nLoading...\n"
	case m.err != nil:
		out += "\nNothing to show: " + humanizeError(m.err) + "\n"
	default:
		s := m.stats
		out += "\n"
		out += fmt.Sprintf("Quotations:      %d (%d accepted, %s)\n",
			s.TotalQuotations, s.AcceptedQuotations, formatPercent(s.AcceptanceRate))
		out += fmt.Sprintf("Negotiations:    %d\n", s.TotalNegotiations)
		out += fmt.Sprintf("Avg discount:    %s\n", formatPercent(s.AverageDiscount))
		out += fmt.Sprintf("Total savings:   %s\n", formatMoney(s.TotalSavings))
		out += fmt.Sprintf("Average score:   %.2f\n", s.AverageScore)
	}

	out += "\n" + helpStyle.Render("esc back")
	return out
}

func (m appModel) updateSupplierStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
		m.currentScreen = screenSuppliers
	}
	return m, nil
}
