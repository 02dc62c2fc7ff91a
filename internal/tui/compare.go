package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

type compareModel struct {
	comparison models.QuotationComparison
	loading    bool
	err        error
}

func (m compareModel) View() string {
	out := viewTitle("Quotation comparison")
	switch {
	case m.loading:
		out += "\nLoading...\n"
	case m.err != nil:
		out += "\nNothing to show: " + humanizeError(m.err) + "\n"
	default:
		c := m.comparison
		out += "\nItem: " + valueOrDash(c.ItemName) + "\n\n"
		if len(c.Quotations) == 0 {
			out += "No quotations to compare.\n"
		}
		for _, q := range c.Quotations {
			marker := "  "
			if c.BestQuotationID != nil && q.ID == *c.BestQuotationID {
				marker = "* "
			}
			score := "-"
			if q.Score != nil {
				score = fmt.Sprintf("%.1f", *q.Score)
			}
			out += fmt.Sprintf("%s#%-5d supplier %-5d %-10s score %-5s %s\n",
				marker, q.ID, q.SupplierID, q.Status, score, formatMoneyPtr(q.FinalPrice))
		}
		if c.Recommendation != "" {
			out += "\n" + c.Recommendation + "\n"
		}
	}

	out += "\n" + helpStyle.Render("* best offer  esc back")
	return out
}

func (m appModel) updateCompare(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
		m.currentScreen = screenQuotations
	}
	return m, nil
}
