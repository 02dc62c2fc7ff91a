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

// receiveModel records the priced answer a supplier gave to a pending
// quotation.
type receiveModel struct {
	quotationID int64
	inputs      []textinput.Model
	focus       int
	submitting  bool
}

func newReceiveModel(q models.Quotation) receiveModel {
	placeholders := []string{
		"unit price, e.g. 1234.56",
		"shipping cost (optional)",
		"delivery days (optional)",
		"validity days (optional)",
		"payment terms (optional)",
		"supplier notes (optional)",
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 200
		in.Width = 40
		inputs[i] = in
	}
	inputs[0].Focus()

	return receiveModel{quotationID: q.ID, inputs: inputs}
}

func (m receiveModel) View() string {
	out := viewTitle(fmt.Sprintf("Receive quotation #%d", m.quotationID))
	labels := []string{"Unit price:  ", "Shipping:    ", "Delivery:    ", "Validity:    ", "Payment:     ", "Notes:       "}
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

func (m appModel) updateReceive(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenQuotations
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.receive.focus = cycleFocus(m.receive.inputs, m.receive.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.receive.focus = cycleFocus(m.receive.inputs, m.receive.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.receive.submitting {
				return m, nil
			}
			unitPrice, err := decimal.NewFromString(strings.TrimSpace(m.receive.inputs[0].Value()))
			if err != nil || unitPrice.IsNegative() || unitPrice.IsZero() {
				m.showErrorf("A positive unit price is required")
				return m, nil
			}

			req := models.ReceiveQuotationRequest{
				UnitPrice:     unitPrice,
				DeliveryDays:  parseCount(m.receive.inputs[2].Value()),
				ValidityDays:  parseCount(m.receive.inputs[3].Value()),
				PaymentTerms:  strings.TrimSpace(m.receive.inputs[4].Value()),
				SupplierNotes: strings.TrimSpace(m.receive.inputs[5].Value()),
			}
			if shipping, err := decimal.NewFromString(strings.TrimSpace(m.receive.inputs[1].Value())); err == nil {
				req.ShippingCost = shipping
			}

			m.receive.submitting = true
			return m, m.cmdReceiveQuotation(m.receive.quotationID, req)
		}
	}

	var cmd tea.Cmd
	m.receive.inputs[m.receive.focus], cmd = m.receive.inputs[m.receive.focus].Update(msg)
	return m, cmd
}
