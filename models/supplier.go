package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierType classifies where a supplier sits in the distribution chain.
type SupplierType string

const (
	SupplierTypeDistributor    SupplierType = "distributor"
	SupplierTypeManufacturer   SupplierType = "manufacturer"
	SupplierTypeRetailer       SupplierType = "retailer"
	SupplierTypeWholesaler     SupplierType = "wholesaler"
	SupplierTypeImporter       SupplierType = "importer"
	SupplierTypeRepresentative SupplierType = "representative"
	SupplierTypeMarketplace    SupplierType = "marketplace"
)

// SupplierStatus is the backend-owned lifecycle state of a supplier.
type SupplierStatus string

const (
	SupplierStatusActive          SupplierStatus = "active"
	SupplierStatusInactive        SupplierStatus = "inactive"
	SupplierStatusBlocked         SupplierStatus = "blocked"
	SupplierStatusPendingApproval SupplierStatus = "pending_approval"
)

// Supplier is a vendor record. Performance metrics (rating, delivery rate,
// average discount) are computed server-side from order history.
type Supplier struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	TradingName        string          `json:"trading_name,omitempty"`
	CNPJ               string          `json:"cnpj,omitempty"`
	Type               SupplierType    `json:"type,omitempty"`
	Status             SupplierStatus  `json:"status"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	WhatsApp           string          `json:"whatsapp,omitempty"`
	Website            string          `json:"website,omitempty"`
	ContactName        string          `json:"contact_name,omitempty"`
	Address            string          `json:"address,omitempty"`
	City               string          `json:"city,omitempty"`
	State              string          `json:"state,omitempty"`
	ZipCode            string          `json:"zip_code,omitempty"`
	Categories         []string        `json:"categories,omitempty"`
	Rating             float64         `json:"rating"`
	TotalOrders        int             `json:"total_orders"`
	OnTimeDeliveryRate float64         `json:"on_time_delivery_rate"`
	ResponseTimeHours  *float64        `json:"response_time_hours,omitempty"`
	AverageDiscount    float64         `json:"average_discount"`
	PaymentTerms       string          `json:"default_payment_terms,omitempty"`
	MinimumOrderValue  decimal.Decimal `json:"minimum_order_value"`
	FreeShippingAbove  *decimal.Decimal `json:"free_shipping_above,omitempty"`
	IsVerified         bool            `json:"is_verified"`
	AcceptsNegotiation bool            `json:"accepts_negotiation"`
	HasAPIIntegration  bool            `json:"has_api_integration"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// SupplierListParams are the query parameters for GET /api/suppliers.
type SupplierListParams struct {
	Page     int
	PerPage  int
	Status   SupplierStatus
	Category string
	Search   string
	City     string
	State    string
}

// CreateSupplierRequest is the subset of supplier fields the client submits;
// metrics are excluded because the backend owns them.
type CreateSupplierRequest struct {
	Name               string       `json:"name"`
	TradingName        string       `json:"trading_name,omitempty"`
	CNPJ               string       `json:"cnpj,omitempty"`
	Type               SupplierType `json:"type,omitempty"`
	Email              string       `json:"email,omitempty"`
	Phone              string       `json:"phone,omitempty"`
	WhatsApp           string       `json:"whatsapp,omitempty"`
	Website            string       `json:"website,omitempty"`
	ContactName        string       `json:"contact_name,omitempty"`
	City               string       `json:"city,omitempty"`
	State              string       `json:"state,omitempty"`
	Categories         []string     `json:"categories,omitempty"`
	PaymentTerms       string       `json:"default_payment_terms,omitempty"`
	AcceptsNegotiation bool         `json:"accepts_negotiation"`
	Notes              string       `json:"notes,omitempty"`
}

// SupplierStats is returned by GET /api/suppliers/{id}/stats.
type SupplierStats struct {
	SupplierID         int64           `json:"supplier_id"`
	TotalQuotations    int             `json:"total_quotations"`
	AcceptedQuotations int             `json:"accepted_quotations"`
	AcceptanceRate     float64         `json:"acceptance_rate"`
	TotalNegotiations  int             `json:"total_negotiations"`
	AverageDiscount    float64         `json:"average_discount"`
	TotalSavings       decimal.Decimal `json:"total_savings"`
	AverageScore       float64         `json:"average_score"`
}

// PaginatedSuppliers is the list envelope returned by GET /api/suppliers.
type PaginatedSuppliers struct {
	Items   []Supplier `json:"items"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}
