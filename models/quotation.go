package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus is the backend-owned lifecycle of a quotation.
type QuotationStatus string

const (
	QuotationStatusPending     QuotationStatus = "pending"
	QuotationStatusReceived    QuotationStatus = "received"
	QuotationStatusNegotiating QuotationStatus = "negotiating"
	QuotationStatusAccepted    QuotationStatus = "accepted"
	QuotationStatusRejected    QuotationStatus = "rejected"
	QuotationStatusExpired     QuotationStatus = "expired"
	QuotationStatusCancelled   QuotationStatus = "cancelled"
)

// Quotation is a supplier's priced response to an item request. Price fields
// are nil until the quotation has been received from the supplier.
type Quotation struct {
	ID              int64            `json:"id"`
	ItemID          int64            `json:"item_id"`
	SupplierID      int64            `json:"supplier_id"`
	Status          QuotationStatus  `json:"status"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	Quantity        int              `json:"quantity"`
	TotalPrice      *decimal.Decimal `json:"total_price,omitempty"`
	DiscountPercent float64          `json:"discount_percent"`
	DiscountValue   decimal.Decimal  `json:"discount_value"`
	FinalPrice      *decimal.Decimal `json:"final_price,omitempty"`
	ShippingCost    decimal.Decimal  `json:"shipping_cost"`
	ShippingType    string           `json:"shipping_type,omitempty"`
	DeliveryDays    *int             `json:"delivery_days,omitempty"`
	ValidityDays    int              `json:"validity_days"`
	ExpiresAt       *time.Time       `json:"expires_at,omitempty"`
	PaymentTerms    string           `json:"payment_terms,omitempty"`
	PaymentMethod   string           `json:"payment_method,omitempty"`
	WarrantyMonths  *int             `json:"warranty_months,omitempty"`
	ProductName     string           `json:"product_name,omitempty"`
	ProductBrand    string           `json:"product_brand,omitempty"`
	ProductModel    string           `json:"product_model,omitempty"`
	ProductCode     string           `json:"product_code,omitempty"`
	IsOriginal      *bool            `json:"is_original,omitempty"`
	IsSubstitute    bool             `json:"is_substitute"`
	Score           *float64         `json:"score,omitempty"`
	ScoreBreakdown  map[string]float64 `json:"score_breakdown,omitempty"`
	SupplierNotes   string           `json:"supplier_notes,omitempty"`
	InternalNotes   string           `json:"internal_notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// QuotationListParams are the query parameters for GET /api/quotations.
type QuotationListParams struct {
	Page       int
	PerPage    int
	ItemID     int64
	SupplierID int64
	Status     QuotationStatus
}

// ReceiveQuotationRequest records the priced fields of a quotation a supplier
// has answered, via POST /api/quotations/{id}/receive.
type ReceiveQuotationRequest struct {
	UnitPrice      decimal.Decimal `json:"unit_price"`
	ShippingCost   decimal.Decimal `json:"shipping_cost,omitempty"`
	ShippingType   string          `json:"shipping_type,omitempty"`
	DeliveryDays   int             `json:"delivery_days,omitempty"`
	ValidityDays   int             `json:"validity_days,omitempty"`
	PaymentTerms   string          `json:"payment_terms,omitempty"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
	WarrantyMonths int             `json:"warranty_months,omitempty"`
	ProductName    string          `json:"product_name,omitempty"`
	ProductBrand   string          `json:"product_brand,omitempty"`
	ProductCode    string          `json:"product_code,omitempty"`
	SupplierNotes  string          `json:"supplier_notes,omitempty"`
}

// QuotationComparison is the side-by-side view from
// GET /api/quotations/item/{id}/compare. BestQuotationID points into
// Quotations; the ranking itself is computed by the backend.
type QuotationComparison struct {
	ItemID          int64       `json:"item_id"`
	ItemName        string      `json:"item_name,omitempty"`
	Quotations      []Quotation `json:"quotations"`
	BestQuotationID *int64      `json:"best_quotation_id,omitempty"`
	Recommendation  string      `json:"recommendation,omitempty"`
}

// PaginatedQuotations is the list envelope returned by GET /api/quotations.
type PaginatedQuotations struct {
	Items   []Quotation `json:"items"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}
