// Package adapter is the transport layer of the SOL client: a typed HTTP
// gateway over the backend's REST API.
//
// One [API] value implements every per-resource interface below. Each method
// is a direct, stateless mapping from typed parameters to one REST call; no
// business rules live here. Cross-cutting behavior (bearer-token injection,
// the global 401 handler, request ids, error mapping to the sentinel values
// in errors.go) is configured once on the shared resty client in [New].
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rafaelssenna/sol-client/models"
)

//go:generate mockgen -destination=../mock/adapter_mock.go -package=mock github.com/rafaelssenna/sol-client/internal/adapter AuthAPI

// Gateway is the full backend surface, grouped one interface per resource.
// Consumers that need the whole client (the terminal UI, the app wiring)
// take this instead of the concrete [API]; narrower consumers take just the
// resource interface they use, the way the session manager takes [AuthAPI].
type Gateway interface {
	AuthAPI
	ItemsAPI
	SuppliersAPI
	QuotationsAPI
	NegotiationsAPI
	AnalyticsAPI
	MarketSearchAPI
	WebSearchAPI
	InventoryAPI
	ApprovalsAPI
	ReportsAPI
	EmailsAPI
	CashGuardianAPI
	TechnicalDrawingsAPI

	// OnSessionExpired registers the global 401 callback. Passing nil
	// unregisters it.
	OnSessionExpired(fn func())
}

var _ Gateway = (*API)(nil)

// AuthAPI covers the authentication endpoints. Login and Register are the
// only unauthenticated calls in the client; Me requires a valid credential
// and is what session restore runs at startup.
type AuthAPI interface {
	// Login exchanges an email/password pair for a bearer token and the
	// user profile via POST /api/auth/login.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Register creates an account via POST /api/auth/register. The backend
	// logs the new user straight in, so the response carries a token too.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Me fetches the profile of the token's owner via GET /api/auth/me.
	Me(ctx context.Context) (models.User, error)
}

// ItemsAPI covers procurement item endpoints, including the three creation
// modes (photo, description, file).
type ItemsAPI interface {
	ListItems(ctx context.Context, params models.ItemListParams) (models.PaginatedItems, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItemFromPhoto(ctx context.Context, att FileAttachment, form models.ItemUploadContext) (models.Item, error)
	CreateItemFromDescription(ctx context.Context, req models.CreateItemFromDescription) (models.Item, error)
	CreateItemFromFile(ctx context.Context, att FileAttachment, form models.ItemUploadContext) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	StartQuotation(ctx context.Context, id int64) (models.Item, error)
}

// SuppliersAPI covers supplier CRUD and per-supplier statistics.
type SuppliersAPI interface {
	ListSuppliers(ctx context.Context, params models.SupplierListParams) (models.PaginatedSuppliers, error)
	GetSupplier(ctx context.Context, id int64) (models.Supplier, error)
	CreateSupplier(ctx context.Context, req models.CreateSupplierRequest) (models.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, req models.CreateSupplierRequest) (models.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
	SupplierStats(ctx context.Context, id int64) (models.SupplierStats, error)
}

// QuotationsAPI covers the quotation lifecycle: request → receive →
// compare → accept/reject.
type QuotationsAPI interface {
	ListQuotations(ctx context.Context, params models.QuotationListParams) (models.PaginatedQuotations, error)
	RequestQuotations(ctx context.Context, itemID int64, supplierIDs []int64) ([]models.Quotation, error)
	ReceiveQuotation(ctx context.Context, id int64, req models.ReceiveQuotationRequest) (models.Quotation, error)
	CompareQuotations(ctx context.Context, itemID int64) (models.QuotationComparison, error)
	AcceptQuotation(ctx context.Context, id int64) (models.Quotation, error)
	RejectQuotation(ctx context.Context, id int64, reason string) (models.Quotation, error)
}

// NegotiationsAPI covers negotiation threads. All pricing decisions happen in
// the backend's negotiation engine; the client only relays parameters and
// messages.
type NegotiationsAPI interface {
	StartNegotiation(ctx context.Context, quotationID int64, targetDiscount float64, channel models.NegotiationChannel) (models.Negotiation, error)
	GetNegotiation(ctx context.Context, id int64) (models.NegotiationDetail, error)
	RespondNegotiation(ctx context.Context, id int64, req models.RespondNegotiationRequest) (models.NegotiationDetail, error)
	AcceptNegotiation(ctx context.Context, id int64, finalPrice decimal.Decimal) (models.Negotiation, error)
	CancelNegotiation(ctx context.Context, id int64, reason string) (models.Negotiation, error)
}

// AnalyticsAPI covers the read-only aggregate views behind the dashboard.
type AnalyticsAPI interface {
	Dashboard(ctx context.Context, periodDays int) (models.DashboardData, error)
	SavingsReport(ctx context.Context, periodDays int) (models.SavingsReport, error)
	SupplierRanking(ctx context.Context) ([]models.SupplierRankingEntry, error)
	PriceHistory(ctx context.Context, itemID int64) (models.PriceHistory, error)
	CategoryAnalysis(ctx context.Context) ([]models.CategoryAnalysis, error)
	Alerts(ctx context.Context) ([]models.Alert, error)
}

// MarketSearchAPI covers marketplace searches, stored search history, and the
// AI-driven smart search.
type MarketSearchAPI interface {
	MarketSearch(ctx context.Context, req models.MarketSearchRequest) (models.MarketSearch, error)
	MarketSearchFromItem(ctx context.Context, req models.SearchFromItemRequest) (models.MarketSearch, error)
	ListMarketSearches(ctx context.Context, limit, offset int) ([]models.MarketSearch, error)
	GetMarketSearch(ctx context.Context, searchID int64) (models.MarketSearch, error)
	SmartSearch(ctx context.Context, req models.SmartSearchRequest) (models.SmartSearchResult, error)
}

// WebSearchAPI covers live internet searches for local suppliers and prices.
type WebSearchAPI interface {
	SearchLocalSuppliers(ctx context.Context, req models.LocalSupplierSearchRequest) (models.WebSearchResult, error)
	SearchPrices(ctx context.Context, req models.PriceSearchRequest) (models.WebSearchResult, error)
	SmartSupplierSearch(ctx context.Context, req models.SmartSupplierSearchRequest) (models.WebSearchResult, error)
	WebSearchHealth(ctx context.Context) (models.HealthStatus, error)
}

// InventoryAPI covers stock records, movements, alerts and forecasting.
type InventoryAPI interface {
	ListInventoryItems(ctx context.Context, params models.InventoryListParams) ([]models.InventoryItem, error)
	GetInventoryItem(ctx context.Context, id int64) (models.InventoryItem, error)
	CreateInventoryItem(ctx context.Context, req models.CreateInventoryItemRequest) (models.InventoryItem, error)
	RecordMovement(ctx context.Context, req models.MovementRequest) (models.InventoryMovement, error)
	InventoryAlerts(ctx context.Context, status, severity string) ([]models.InventoryAlert, error)
	AcknowledgeAlert(ctx context.Context, alertID int64) (models.InventoryAlert, error)
	ResolveAlert(ctx context.Context, alertID int64, notes string) (models.InventoryAlert, error)
	ReorderSuggestions(ctx context.Context) ([]models.ReorderSuggestion, error)
	InventoryValueReport(ctx context.Context, category, warehouse string) (models.InventoryValueReport, error)
	GenerateForecast(ctx context.Context, itemID int64, period string) (models.DemandForecast, error)
}

// ApprovalsAPI covers approval rules and sign-off requests.
type ApprovalsAPI interface {
	ListApprovalRules(ctx context.Context, approvalType string, activeOnly bool) ([]models.ApprovalRule, error)
	CreateApprovalRule(ctx context.Context, req models.CreateApprovalRuleRequest) (models.ApprovalRule, error)
	ListApprovalRequests(ctx context.Context, params models.ApprovalRequestListParams) ([]models.ApprovalRequest, error)
	PendingApprovals(ctx context.Context) ([]models.ApprovalRequest, error)
	GetApprovalRequest(ctx context.Context, id int64) (models.ApprovalRequest, error)
	CreateApprovalRequest(ctx context.Context, req models.CreateApprovalRequestPayload) (models.ApprovalRequest, error)
	Approve(ctx context.Context, id int64, req models.ApproveRequestPayload) (models.ApprovalRequest, error)
	Reject(ctx context.Context, id int64, reason string) (models.ApprovalRequest, error)
	Delegate(ctx context.Context, id int64, req models.DelegatePayload) (models.ApprovalRequest, error)
}

// ReportsAPI covers report endpoints in both JSON and PDF form. PDF bytes are
// returned as-is for the caller to write to disk.
type ReportsAPI interface {
	GetSavingsReport(ctx context.Context, days int) (models.SavingsReport, error)
	DownloadSavingsPDF(ctx context.Context, days int) ([]byte, error)
	GetSupplierRankingReport(ctx context.Context, rankingType string, limit int) ([]models.SupplierRankingEntry, error)
	DownloadSupplierRankingPDF(ctx context.Context, rankingType string) ([]byte, error)
	GetInventoryReport(ctx context.Context, category, warehouse string) (models.InventoryValueReport, error)
	DownloadInventoryPDF(ctx context.Context, category, warehouse string) ([]byte, error)
	DownloadQuotationComparisonPDF(ctx context.Context, itemID int64) ([]byte, error)
}

// EmailsAPI covers mailbox accounts, templates, outbound sending and inbound
// quotation parsing.
type EmailsAPI interface {
	ListEmailAccounts(ctx context.Context) ([]models.EmailAccount, error)
	CreateEmailAccount(ctx context.Context, req models.CreateEmailAccountRequest) (models.EmailAccount, error)
	TestEmailAccount(ctx context.Context, accountID int64) (models.HealthStatus, error)
	ListEmailTemplates(ctx context.Context, emailType string) ([]models.EmailTemplate, error)
	CreateEmailTemplate(ctx context.Context, tmpl models.EmailTemplate) (models.EmailTemplate, error)
	SendEmail(ctx context.Context, req models.SendEmailRequest) (models.SentMessage, error)
	SendQuotationRequest(ctx context.Context, req models.QuotationRequestEmail) (models.SentMessage, error)
	FetchInbox(ctx context.Context, unseenOnly bool, limit int) ([]models.InboxMessage, error)
	ParseQuotationEmail(ctx context.Context, msg models.InboxMessage) (models.ParsedQuotation, error)
	ListSentMessages(ctx context.Context, params models.SentMessageListParams) ([]models.SentMessage, error)
}

// CashGuardianAPI covers the spending-control heuristics.
type CashGuardianAPI interface {
	AnalyzePurchase(ctx context.Context, req models.PurchaseAnalysisRequest) (models.PurchaseAnalysis, error)
	PriceOpportunities(ctx context.Context, days int) ([]models.PriceOpportunity, error)
	PurchaseSuggestions(ctx context.Context) ([]models.PurchaseSuggestion, error)
	SpendingAnalysis(ctx context.Context, days int) (models.SpendingAnalysis, error)
	BuyNowOrWait(ctx context.Context, req models.BuyNowOrWaitRequest) (models.BuyNowOrWaitAdvice, error)
	CashGuardianDashboard(ctx context.Context) (models.CashGuardianDashboard, error)
}

// TechnicalDrawingsAPI covers drawing analysis. Every endpoint is a multipart
// upload and goes through the client-side size check.
type TechnicalDrawingsAPI interface {
	AnalyzeDrawing(ctx context.Context, att FileAttachment, drawingType, additionalContext string) (models.DrawingAnalysis, error)
	ExtractBOM(ctx context.Context, att FileAttachment) (models.BillOfMaterials, error)
	CompareDrawingVersions(ctx context.Context, oldDrawing, newDrawing FileAttachment) (models.DrawingComparison, error)
	GeneratePurchaseList(ctx context.Context, att FileAttachment, quantityMultiplier int) (models.PurchaseList, error)
	IdentifyFromDrawing(ctx context.Context, att FileAttachment, additionalContext string) (models.Item, error)
}
