package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseAnalysisRequest asks the cash guardian whether a purchase is sound
// (POST /api/cash-guardian/analyze-purchase).
type PurchaseAnalysisRequest struct {
	ItemID            int64  `json:"item_id"`
	RequestedQuantity int    `json:"requested_quantity"`
	RequesterNotes    string `json:"requester_notes,omitempty"`
}

// PurchaseAnalysis is the verdict: Recommendation is one of the
// backend-defined values ("buy", "wait", "reduce_quantity", "reject").
type PurchaseAnalysis struct {
	ItemID         int64           `json:"item_id"`
	Recommendation string          `json:"recommendation"`
	Reasoning      string          `json:"reasoning,omitempty"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
	PotentialSaving *decimal.Decimal `json:"potential_saving,omitempty"`
	RiskLevel      string          `json:"risk_level,omitempty"`
}

// PriceOpportunity flags an item whose market price dropped below its usual
// range.
type PriceOpportunity struct {
	ItemName     string          `json:"item_name"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	UsualPrice   decimal.Decimal `json:"usual_price"`
	DiscountPct  float64         `json:"discount_percent"`
	Source       string          `json:"source,omitempty"`
	ValidUntil   *time.Time      `json:"valid_until,omitempty"`
}

// PurchaseSuggestion is a proactive restock/buy hint.
type PurchaseSuggestion struct {
	ItemName      string          `json:"item_name"`
	Reason        string          `json:"reason"`
	SuggestedQty  int             `json:"suggested_quantity"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Urgency       string          `json:"urgency,omitempty"`
}

// SpendingAnalysis summarises outflow over a trailing window.
type SpendingAnalysis struct {
	PeriodDays    int                        `json:"period_days"`
	TotalSpent    decimal.Decimal            `json:"total_spent"`
	ByCategory    map[string]decimal.Decimal `json:"by_category,omitempty"`
	MonthOverMonth float64                   `json:"month_over_month_percent"`
	Insights      []string                   `json:"insights,omitempty"`
}

// BuyNowOrWaitRequest is the payload for
// POST /api/cash-guardian/buy-now-or-wait.
type BuyNowOrWaitRequest struct {
	ItemName     string          `json:"item_name"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Urgency      string          `json:"urgency,omitempty"`
}

// BuyNowOrWaitAdvice is the heuristic's answer.
type BuyNowOrWaitAdvice struct {
	Decision       string           `json:"decision"` // "buy_now" or "wait"
	Reasoning      string           `json:"reasoning,omitempty"`
	ExpectedPrice  *decimal.Decimal `json:"expected_price,omitempty"`
	SuggestedWait  string           `json:"suggested_wait,omitempty"`
	Confidence     float64          `json:"confidence"`
}

// CashGuardianDashboard aggregates the guardian's current view.
type CashGuardianDashboard struct {
	MonthlyBudget    *decimal.Decimal     `json:"monthly_budget,omitempty"`
	SpentThisMonth   decimal.Decimal      `json:"spent_this_month"`
	ProjectedSpend   decimal.Decimal      `json:"projected_spend"`
	SavingsThisMonth decimal.Decimal      `json:"savings_this_month"`
	Opportunities    []PriceOpportunity   `json:"opportunities,omitempty"`
	Suggestions      []PurchaseSuggestion `json:"suggestions,omitempty"`
}
