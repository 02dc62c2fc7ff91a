package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rafaelssenna/sol-client/internal/adapter"
	"github.com/rafaelssenna/sol-client/models"
)

// dashboardPeriodDays is the reporting window shown on the dashboard.
const dashboardPeriodDays = 30

// Defaults the negotiation start endpoint needs. The backend treats the
// target discount as a goal for its engine, not a hard floor.
const (
	defaultTargetDiscount = 10.0
	defaultChannel        = models.ChannelManual
)

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	sess := m.sess
	return func() tea.Msg {
		user, err := sess.Login(ctx, email, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	sess := m.sess
	return func() tea.Msg {
		user, err := sess.Register(ctx, req)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		data, err := api.Dashboard(ctx, dashboardPeriodDays)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		alerts, err := api.Alerts(ctx)
		return dashboardLoadedMsg{data: data, alerts: alerts, err: err}
	}
}

func (m appModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	api := m.api
	params := models.ItemListParams{Page: m.items.page.Page}
	return func() tea.Msg {
		page, err := api.ListItems(ctx, params)
		return itemsLoadedMsg{page: page, err: err}
	}
}

func (m appModel) cmdCreateItemFromDescription(req models.CreateItemFromDescription) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		item, err := api.CreateItemFromDescription(ctx, req)
		return itemSavedMsg{item: item, err: err}
	}
}

// cmdUploadItem opens the file inside the command so a bad path surfaces as
// a message instead of crashing the update loop.
func (m appModel) cmdUploadItem(path string, photo bool, form models.ItemUploadContext) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		att, err := adapter.OpenAttachment(path)
		if err != nil {
			return itemSavedMsg{err: err}
		}

		var item models.Item
		if photo {
			item, err = api.CreateItemFromPhoto(ctx, att, form)
		} else {
			item, err = api.CreateItemFromFile(ctx, att, form)
		}
		return itemSavedMsg{item: item, err: err}
	}
}

func (m appModel) cmdUpdateItem(id int64, req models.UpdateItemRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		item, err := api.UpdateItem(ctx, id, req)
		return itemSavedMsg{item: item, err: err}
	}
}

func (m appModel) cmdDeleteItem(id int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		return itemDeletedMsg{err: api.DeleteItem(ctx, id)}
	}
}

func (m appModel) cmdStartQuotation(id int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		item, err := api.StartQuotation(ctx, id)
		return itemSavedMsg{item: item, err: err}
	}
}

func (m appModel) cmdLoadSuppliers() tea.Cmd {
	ctx := m.ctx
	api := m.api
	params := models.SupplierListParams{Page: m.suppliers.page.Page}
	return func() tea.Msg {
		page, err := api.ListSuppliers(ctx, params)
		return suppliersLoadedMsg{page: page, err: err}
	}
}

func (m appModel) cmdCreateSupplier(req models.CreateSupplierRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		_, err := api.CreateSupplier(ctx, req)
		return supplierSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteSupplier(id int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		return supplierSavedMsg{err: api.DeleteSupplier(ctx, id)}
	}
}

func (m appModel) cmdLoadSupplierStats(id int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		stats, err := api.SupplierStats(ctx, id)
		return supplierStatsMsg{stats: stats, err: err}
	}
}

func (m appModel) cmdLoadQuotations() tea.Cmd {
	ctx := m.ctx
	api := m.api
	params := models.QuotationListParams{Page: m.quotations.page.Page}
	return func() tea.Msg {
		page, err := api.ListQuotations(ctx, params)
		return quotationsLoadedMsg{page: page, err: err}
	}
}

func (m appModel) cmdReceiveQuotation(id int64, req models.ReceiveQuotationRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		_, err := api.ReceiveQuotation(ctx, id, req)
		return quotationActionMsg{err: err}
	}
}

func (m appModel) cmdAcceptQuotation(id int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		_, err := api.AcceptQuotation(ctx, id)
		return quotationActionMsg{err: err}
	}
}

func (m appModel) cmdRejectQuotation(id int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		_, err := api.RejectQuotation(ctx, id, "rejected by buyer")
		return quotationActionMsg{err: err}
	}
}

func (m appModel) cmdCompareQuotations(itemID int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		comparison, err := api.CompareQuotations(ctx, itemID)
		return comparisonLoadedMsg{comparison: comparison, err: err}
	}
}

func (m appModel) cmdStartNegotiation(quotationID int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		neg, err := api.StartNegotiation(ctx, quotationID, defaultTargetDiscount, defaultChannel)
		if err != nil {
			return negotiationLoadedMsg{err: err}
		}
		detail, err := api.GetNegotiation(ctx, neg.ID)
		return negotiationLoadedMsg{detail: detail, err: err}
	}
}

func (m appModel) cmdLoadNegotiation(id int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		detail, err := api.GetNegotiation(ctx, id)
		return negotiationLoadedMsg{detail: detail, err: err}
	}
}

func (m appModel) cmdRespondNegotiation(id int64, req models.RespondNegotiationRequest) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		detail, err := api.RespondNegotiation(ctx, id, req)
		return negotiationLoadedMsg{detail: detail, err: err}
	}
}

func (m appModel) cmdAcceptNegotiation(id int64, finalPrice decimal.Decimal) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		_, err := api.AcceptNegotiation(ctx, id, finalPrice)
		return negotiationActionMsg{negotiationID: id, err: err}
	}
}

func (m appModel) cmdCancelNegotiation(id int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		_, err := api.CancelNegotiation(ctx, id, "cancelled by buyer")
		return negotiationActionMsg{negotiationID: id, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return quotationActionMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
