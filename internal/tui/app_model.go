package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/internal/adapter"
	"github.com/rafaelssenna/sol-client/internal/config"
	"github.com/rafaelssenna/sol-client/internal/session"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenMenu
	screenDashboard
	screenItems
	screenItemSource
	screenItemForm
	screenItemUpload
	screenItemDetail
	screenItemEdit
	screenSuppliers
	screenSupplierForm
	screenSupplierStats
	screenQuotations
	screenQuotationReceive
	screenCompare
	screenNegotiation
	screenSettings
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx  context.Context
	api  adapter.Gateway
	sess *session.Manager
	cfg  config.ClientConfig

	mode          appMode
	currentScreen screen

	welcome       welcomeModel
	login         loginModel
	register      registerModel
	menu          menuModel
	dashboard     dashboardModel
	items         itemsModel
	itemSource    itemSourceModel
	itemForm      itemFormModel
	itemUpload    itemUploadModel
	itemDetail    itemDetailModel
	itemEdit      itemEditModel
	suppliers     suppliersModel
	supplierForm  supplierFormModel
	supplierStats supplierStatsModel
	quotations    quotationsModel
	receive       receiveModel
	compare       compareModel
	negotiation   negotiationModel
	settings      settingsModel

	err          error
	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	pendingCmd   tea.Cmd

	logout  bool
	expired bool
}

func newLoginAppModel(ctx context.Context, api adapter.Gateway, sess *session.Manager, cfg config.ClientConfig) appModel {
	return appModel{
		ctx:           ctx,
		api:           api,
		sess:          sess,
		cfg:           cfg,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
	}
}

func newMainAppModel(ctx context.Context, api adapter.Gateway, sess *session.Manager, cfg config.ClientConfig) appModel {
	m := newLoginAppModel(ctx, api, sess, cfg)
	m.mode = modeMain
	m.currentScreen = screenMenu
	m.menu = newMenuModel()
	m.dashboard = newDashboardModel()
	m.items = newItemsModel()
	m.suppliers = newSuppliersModel()
	m.quotations = newQuotationsModel()
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				cmd := m.pendingCmd
				m.pendingCmd = nil
				return m, cmd
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingCmd = nil
			}
			return m, nil
		}
	case sessionExpiredMsg:
		m.expired = true
		return m, tea.Quit
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, tea.Quit
	case dashboardLoadedMsg:
		m.dashboard.loading = false
		m.dashboard.err = msg.err
		if msg.err == nil {
			m.dashboard.data = msg.data
			m.dashboard.alerts = msg.alerts
		}
		return m, nil
	case itemsLoadedMsg:
		m.items.loading = false
		m.items.err = msg.err
		if msg.err == nil {
			m.items.page = msg.page
			m.items.clampCursor()
		}
		return m, nil
	case itemSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenItems
		m.items.loading = true
		return m, m.cmdLoadItems()
	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenItems
		m.items.loading = true
		return m, m.cmdLoadItems()
	case suppliersLoadedMsg:
		m.suppliers.loading = false
		m.suppliers.err = msg.err
		if msg.err == nil {
			m.suppliers.page = msg.page
			m.suppliers.clampCursor()
		}
		return m, nil
	case supplierSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenSuppliers
		m.suppliers.loading = true
		return m, m.cmdLoadSuppliers()
	case supplierStatsMsg:
		m.supplierStats.loading = false
		m.supplierStats.err = msg.err
		if msg.err == nil {
			m.supplierStats.stats = msg.stats
		}
		return m, nil
	case quotationsLoadedMsg:
		m.quotations.loading = false
		m.quotations.err = msg.err
		if msg.err == nil {
			m.quotations.page = msg.page
			m.quotations.clampCursor()
		}
		return m, nil
	case quotationActionMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenQuotations
		m.quotations.loading = true
		return m, m.cmdLoadQuotations()
	case comparisonLoadedMsg:
		m.compare.loading = false
		m.compare.err = msg.err
		if msg.err == nil {
			m.compare.comparison = msg.comparison
		}
		return m, nil
	case negotiationLoadedMsg:
		m.negotiation.loading = false
		m.negotiation.submitting = false
		if msg.err != nil {
			// A failed start leaves us where we came from; a failed
			// refresh keeps the stale thread visible.
			m.showErrorf(humanizeError(msg.err))
			if m.negotiation.detail.ID == 0 {
				m.currentScreen = screenQuotations
			}
			return m, nil
		}
		m.negotiation.detail = msg.detail
		m.negotiation.mode = negViewing
		m.negotiation.responding = false
		m.currentScreen = screenNegotiation
		return m, nil
	case negotiationActionMsg:
		m.negotiation.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.negotiation.loading = true
		return m, m.cmdLoadNegotiation(msg.negotiationID)
	case copiedMsg:
		m.settings.status = "Copied!"
		m.suppliers.status = "Copied!"
		m.quotations.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.settings.status = ""
		m.suppliers.status = ""
		m.quotations.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.dashboard.spinner, cmd = m.dashboard.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenItems:
		return m.updateItems(msg)
	case screenItemSource:
		return m.updateItemSource(msg)
	case screenItemForm:
		return m.updateItemForm(msg)
	case screenItemUpload:
		return m.updateItemUpload(msg)
	case screenItemDetail:
		return m.updateItemDetail(msg)
	case screenItemEdit:
		return m.updateItemEdit(msg)
	case screenSuppliers:
		return m.updateSuppliers(msg)
	case screenSupplierForm:
		return m.updateSupplierForm(msg)
	case screenSupplierStats:
		return m.updateSupplierStats(msg)
	case screenQuotations:
		return m.updateQuotations(msg)
	case screenQuotationReceive:
		return m.updateReceive(msg)
	case screenCompare:
		return m.updateCompare(msg)
	case screenNegotiation:
		return m.updateNegotiation(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenMenu:
		body = m.menu.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenItems:
		body = m.items.View()
	case screenItemSource:
		body = m.itemSource.View()
	case screenItemForm:
		body = m.itemForm.View()
	case screenItemUpload:
		body = m.itemUpload.View()
	case screenItemDetail:
		body = m.itemDetail.View()
	case screenItemEdit:
		body = m.itemEdit.View()
	case screenSuppliers:
		body = m.suppliers.View()
	case screenSupplierForm:
		body = m.supplierForm.View()
	case screenSupplierStats:
		body = m.supplierStats.View()
	case screenQuotations:
		body = m.quotations.View()
	case screenQuotationReceive:
		body = m.receive.View()
	case screenCompare:
		body = m.compare.View()
	case screenNegotiation:
		body = m.negotiation.View()
	case screenSettings:
		body = m.settings.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) askConfirm(message string, cmd tea.Cmd) {
	m.showConfirm = true
	m.confirm.message = message
	m.pendingCmd = cmd
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.itemForm.submitting = v
	m.itemUpload.submitting = v
	m.itemEdit.submitting = v
	m.supplierForm.submitting = v
	m.receive.submitting = v
}

// cycleFocus moves input focus by delta, wrapping around.
func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	next := (focus + delta + len(inputs)) % len(inputs)
	inputs[next].Focus()
	return next
}
