package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rafaelssenna/sol-client/models"
)

type negotiationMode int

const (
	negViewing negotiationMode = iota
	negResponding
	negAccepting
)

// negotiationModel shows one negotiation thread. Responding records the
// supplier's counter and lets the backend's engine answer; accepting closes
// the thread at an agreed final price.
type negotiationModel struct {
	detail     models.NegotiationDetail
	mode       negotiationMode
	responding bool
	inputs     []textinput.Model
	focus      int
	loading    bool
	submitting bool
}

func (m *negotiationModel) startResponding() {
	message := textinput.New()
	message.Placeholder = "what the supplier said"
	message.CharLimit = 1000
	message.Width = 50
	message.Focus()

	price := textinput.New()
	price.Placeholder = "their proposed price (optional)"
	price.CharLimit = 30
	price.Width = 50

	m.inputs = []textinput.Model{message, price}
	m.focus = 0
	m.mode = negResponding
	m.responding = true
}

func (m *negotiationModel) startAccepting() {
	price := textinput.New()
	price.Placeholder = "final price, e.g. 1234.56"
	price.CharLimit = 30
	price.Width = 50
	price.Focus()
	if m.detail.FinalPrice != nil {
		price.SetValue(m.detail.FinalPrice.String())
	}

	m.inputs = []textinput.Model{price}
	m.focus = 0
	m.mode = negAccepting
}

func (m negotiationModel) View() string {
	d := m.detail
	out := viewTitle(fmt.Sprintf("Negotiation #%d", d.ID))

	if m.loading {
		out += "\nLoading...\n"
		return out
	}

	out += fmt.Sprintf("\nStatus:   %s (round %d of %d, via %s)\n", d.Status, d.TotalRounds, d.MaxRounds, d.Channel)
	out += "Initial:  " + formatMoney(d.InitialPrice) + "\n"
	out += "Target:   " + formatMoneyPtr(d.TargetPrice) + "\n"
	out += "Final:    " + formatMoneyPtr(d.FinalPrice) + "\n"
	if d.Savings != nil {
		out += "Savings:  " + formatMoney(*d.Savings) + "\n"
	}

	if len(d.Messages) > 0 {
		out += "\nThread:\n"
		for _, msg := range d.Messages {
			arrow := "<-"
			if msg.Direction == "sent" {
				arrow = "->"
			}
			ai := ""
			if msg.IsAIGenerated {
				ai = " (auto)"
			}
			out += fmt.Sprintf("  %s%s %s", arrow, ai, fitText(msg.Message, 60))
			if msg.ProposedPrice != nil {
				out += "  @ " + formatMoney(*msg.ProposedPrice)
			}
			out += "\n"
		}
	}

	switch m.mode {
	case negResponding:
		out += "\nSupplier reply: [" + m.inputs[0].View() + "]\n"
		out += "Their price:    [" + m.inputs[1].View() + "]\n"
		if m.submitting {
			out += "\n[Sending...]\n"
		}
		out += "\n" + helpStyle.Render("esc cancel  tab next field  enter send")
	case negAccepting:
		out += "\nAccept at: [" + m.inputs[0].View() + "]\n"
		if m.submitting {
			out += "\n[Accepting...]\n"
		}
		out += "\n" + helpStyle.Render("esc cancel  enter accept")
	default:
		out += "\n" + helpStyle.Render("r respond  a accept  x cancel thread  esc back")
	}

	return out
}

func (m appModel) updateNegotiation(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.negotiation.mode == negResponding {
		return m.updateNegotiationResponding(keyMsg)
	}
	if m.negotiation.mode == negAccepting {
		return m.updateNegotiationAccepting(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenQuotations
		m.quotations.loading = true
		return m, m.cmdLoadQuotations()
	case key.Matches(keyMsg, keys.refresh):
		m.negotiation.startResponding()
	case key.Matches(keyMsg, keys.accept):
		m.negotiation.startAccepting()
	case key.Matches(keyMsg, keys.reject):
		id := m.negotiation.detail.ID
		m.askConfirm(fmt.Sprintf("Cancel negotiation #%d?", id), m.cmdCancelNegotiation(id))
	}
	return m, nil
}

func (m appModel) updateNegotiationResponding(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.negotiation.mode = negViewing
		m.negotiation.responding = false
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.negotiation.focus = cycleFocus(m.negotiation.inputs, m.negotiation.focus, 1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.negotiation.focus = cycleFocus(m.negotiation.inputs, m.negotiation.focus, -1)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.negotiation.submitting {
			return m, nil
		}
		message := strings.TrimSpace(m.negotiation.inputs[0].Value())
		if message == "" {
			m.showErrorf("The supplier's reply is required")
			return m, nil
		}
		req := models.RespondNegotiationRequest{Message: message}
		if price, err := decimal.NewFromString(strings.TrimSpace(m.negotiation.inputs[1].Value())); err == nil {
			req.ProposedPrice = &price
		}
		m.negotiation.submitting = true
		return m, m.cmdRespondNegotiation(m.negotiation.detail.ID, req)
	}

	var cmd tea.Cmd
	m.negotiation.inputs[m.negotiation.focus], cmd = m.negotiation.inputs[m.negotiation.focus].Update(keyMsg)
	return m, cmd
}

func (m appModel) updateNegotiationAccepting(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.negotiation.mode = negViewing
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.negotiation.submitting {
			return m, nil
		}
		price, err := decimal.NewFromString(strings.TrimSpace(m.negotiation.inputs[0].Value()))
		if err != nil || price.IsNegative() || price.IsZero() {
			m.showErrorf("A positive final price is required")
			return m, nil
		}
		m.negotiation.submitting = true
		return m, m.cmdAcceptNegotiation(m.negotiation.detail.ID, price)
	}

	var cmd tea.Cmd
	m.negotiation.inputs[0], cmd = m.negotiation.inputs[0].Update(keyMsg)
	return m, cmd
}
