package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

type dashboardModel struct {
	data    models.DashboardData
	alerts  []models.Alert
	loading bool
	spinner spinner.Model
	err     error
}

func newDashboardModel() dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{spinner: s}
}

func (m dashboardModel) View() string {
	out := viewTitle("Dashboard")
	if m.loading {
		out += "\n" + m.spinner.View() + " Loading...\n"
		return out
	}
	if m.err != nil {
		out += "\nNothing to show: " + humanizeError(m.err) + "\n"
		out += "\n" + helpStyle.Render("r retry  esc back")
		return out
	}

	d := m.data
	out += fmt.Sprintf("\nLast %d days\n\n", d.PeriodDays)
	out += fmt.Sprintf("Items:        %d total, %d in period\n", d.Items.Total, d.Items.Period)
	out += fmt.Sprintf("Suppliers:    %d\n", d.Suppliers.Total)
	out += fmt.Sprintf("Quotations:   %d total, %d in period\n", d.Quotations.Total, d.Quotations.Period)
	out += fmt.Sprintf("Negotiations: %d, %d successful (%s)\n",
		d.Negotiations.Total, d.Negotiations.Successful, formatPercent(d.Negotiations.SuccessRate))
	out += fmt.Sprintf("Savings:      %s (avg discount %s)\n",
		formatMoney(d.Savings.Total), formatPercent(d.Savings.AverageDiscountPercent))

	if len(m.alerts) > 0 {
		out += "\nAlerts:\n"
		for _, a := range m.alerts {
			out += fmt.Sprintf("  [%s] %s: %s\n", a.Severity, a.Title, fitText(a.Message, 60))
		}
	}

	out += "\n" + helpStyle.Render("r refresh  esc back  q quit")
	return out
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.refresh):
		m.dashboard.loading = true
		m.dashboard.err = nil
		return m, tea.Batch(m.dashboard.spinner.Tick, m.cmdLoadDashboard())
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}
