package tui

import (
	"github.com/rafaelssenna/sol-client/models"
)

type authDoneMsg struct {
	user models.User
	err  error
}

type sessionExpiredMsg struct{}

type dashboardLoadedMsg struct {
	data   models.DashboardData
	alerts []models.Alert
	err    error
}

type itemsLoadedMsg struct {
	page models.PaginatedItems
	err  error
}

type itemSavedMsg struct {
	item models.Item
	err  error
}

type itemDeletedMsg struct {
	err error
}

type suppliersLoadedMsg struct {
	page models.PaginatedSuppliers
	err  error
}

type supplierSavedMsg struct {
	err error
}

type supplierStatsMsg struct {
	stats models.SupplierStats
	err   error
}

type quotationsLoadedMsg struct {
	page models.PaginatedQuotations
	err  error
}

type quotationActionMsg struct {
	err error
}

type comparisonLoadedMsg struct {
	comparison models.QuotationComparison
	err        error
}

type negotiationLoadedMsg struct {
	detail models.NegotiationDetail
	err    error
}

type negotiationActionMsg struct {
	negotiationID int64
	err           error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
