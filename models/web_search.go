package models

import "github.com/shopspring/decimal"

// LocalSupplierSearchRequest is the payload for
// POST /api/web-search/local-suppliers.
type LocalSupplierSearchRequest struct {
	ProductDescription string `json:"product_description"`
	City               string `json:"city"`
	State              string `json:"state"`
	MaxResults         int    `json:"max_results,omitempty"`
}

// PriceSearchRequest is the payload for POST /api/web-search/prices.
type PriceSearchRequest struct {
	ProductDescription string `json:"product_description"`
	City               string `json:"city,omitempty"`
	State              string `json:"state,omitempty"`
	IncludeOnline      bool   `json:"include_online,omitempty"`
}

// SmartSupplierSearchRequest is the payload for
// POST /api/web-search/smart-supplier-search. Urgency is one of "urgent",
// "normal", "flexible".
type SmartSupplierSearchRequest struct {
	ProductDescription string           `json:"product_description"`
	ClientCity         string           `json:"client_city"`
	ClientState        string           `json:"client_state"`
	Budget             *decimal.Decimal `json:"budget,omitempty"`
	Urgency            string           `json:"urgency,omitempty"`
	PreferLocal        bool             `json:"prefer_local,omitempty"`
}

// FoundSupplier is a supplier discovered by a live web search. It is not a
// Supplier record; saving it is a separate, explicit action.
type FoundSupplier struct {
	Name        string           `json:"name"`
	Phone       string           `json:"phone,omitempty"`
	WhatsApp    string           `json:"whatsapp,omitempty"`
	Address     string           `json:"address,omitempty"`
	City        string           `json:"city,omitempty"`
	Website     string           `json:"website,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsLocal     bool             `json:"is_local"`
	Marketplace string           `json:"marketplace,omitempty"`
}

// WebSearchResult is the common response envelope of the web-search endpoints.
type WebSearchResult struct {
	Suppliers      []FoundSupplier `json:"suppliers"`
	Recommendation string          `json:"recommendation,omitempty"`
	SearchedAt     string          `json:"searched_at,omitempty"`
}

// HealthStatus is returned by GET /api/web-search/health.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
