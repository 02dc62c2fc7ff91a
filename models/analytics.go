package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardData aggregates the headline metrics shown on the dashboard, for a
// configurable trailing period.
type DashboardData struct {
	PeriodDays   int                  `json:"period_days"`
	Items        DashboardItems       `json:"items"`
	Suppliers    DashboardSuppliers   `json:"suppliers"`
	Quotations   DashboardQuotations  `json:"quotations"`
	Negotiations DashboardNegotiation `json:"negotiations"`
	Savings      DashboardSavings     `json:"savings"`
}

type DashboardItems struct {
	Total    int            `json:"total"`
	Period   int            `json:"period"`
	ByStatus map[string]int `json:"by_status"`
}

type DashboardSuppliers struct {
	Total int `json:"total"`
}

type DashboardQuotations struct {
	Total    int            `json:"total"`
	Period   int            `json:"period"`
	ByStatus map[string]int `json:"by_status"`
}

type DashboardNegotiation struct {
	Total       int     `json:"total"`
	Successful  int     `json:"successful"`
	SuccessRate float64 `json:"success_rate"`
}

type DashboardSavings struct {
	Total                  decimal.Decimal `json:"total"`
	AverageDiscountPercent float64         `json:"average_discount_percent"`
}

// SavingsReport is returned by GET /api/analytics/savings-report and by the
// reports endpoint in JSON form.
type SavingsReport struct {
	PeriodDays        int              `json:"period_days"`
	TotalSavings      decimal.Decimal  `json:"total_savings"`
	AverageDiscount   float64          `json:"average_discount_percent"`
	NegotiationsCount int              `json:"negotiations_count"`
	TopNegotiations   []Negotiation    `json:"top_negotiations,omitempty"`
	SavingsByCategory []CategorySaving `json:"savings_by_category,omitempty"`
}

type CategorySaving struct {
	Category string          `json:"category"`
	Savings  decimal.Decimal `json:"savings"`
}

// SupplierRankingEntry is one row of the supplier ranking.
type SupplierRankingEntry struct {
	SupplierID      int64           `json:"supplier_id"`
	SupplierName    string          `json:"supplier_name"`
	Rating          float64         `json:"rating"`
	TotalOrders     int             `json:"total_orders"`
	AverageDiscount float64         `json:"average_discount"`
	TotalSavings    decimal.Decimal `json:"total_savings"`
	Rank            int             `json:"rank"`
}

// PricePoint is one observation in an item's price history.
type PricePoint struct {
	Date       time.Time       `json:"date"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	SupplierID int64           `json:"supplier_id"`
	Source     string          `json:"source,omitempty"`
}

// PriceHistory is returned by GET /api/analytics/price-history/{itemId}.
type PriceHistory struct {
	ItemID   int64        `json:"item_id"`
	ItemName string       `json:"item_name,omitempty"`
	Points   []PricePoint `json:"points"`
	Trend    string       `json:"trend,omitempty"` // "rising", "falling", "stable"
}

// CategoryAnalysis is one row of GET /api/analytics/category-analysis.
type CategoryAnalysis struct {
	Category      string          `json:"category"`
	ItemCount     int             `json:"item_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalSavings  decimal.Decimal `json:"total_savings"`
	AverageDiscount float64       `json:"average_discount"`
}

// AlertSeverity grades analytics alerts.
type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// Alert is an actionable notice from GET /api/analytics/alerts (expiring
// quotations, stale negotiations, price spikes).
type Alert struct {
	ID        int64         `json:"id"`
	Type      string        `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	EntityID  *int64        `json:"entity_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
