package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketSearchRequest is the payload for POST /api/market-search/search.
type MarketSearchRequest struct {
	Query    string           `json:"query"`
	Keywords []string         `json:"keywords,omitempty"`
	Category string           `json:"category,omitempty"`
	Brand    string           `json:"brand,omitempty"`
	PriceMin *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax *decimal.Decimal `json:"price_max,omitempty"`
	Sources  []string         `json:"sources,omitempty"`
}

// SearchFromItemRequest drives POST /api/market-search/search-from-item,
// reusing an existing item's identification as the query.
type SearchFromItemRequest struct {
	ItemID  int64    `json:"item_id"`
	Sources []string `json:"sources,omitempty"`
}

// SmartSearchRequest is the AI-driven variant
// (POST /api/market-search/smart-search).
type SmartSearchRequest struct {
	ItemDescription string           `json:"item_description"`
	ItemImageURL    string           `json:"item_image_url,omitempty"`
	Budget          *decimal.Decimal `json:"budget,omitempty"`
	Urgency         string           `json:"urgency,omitempty"` // "normal" or "urgent"
	PreferLocal     bool             `json:"prefer_local,omitempty"`
}

// MarketOffer is one result found in a marketplace or store.
type MarketOffer struct {
	Title        string           `json:"title"`
	Price        decimal.Decimal  `json:"price"`
	Currency     string           `json:"currency,omitempty"`
	Source       string           `json:"source"`
	URL          string           `json:"url,omitempty"`
	Seller       string           `json:"seller,omitempty"`
	ShippingCost *decimal.Decimal `json:"shipping_cost,omitempty"`
	InStock      bool             `json:"in_stock"`
}

// MarketSearch is a stored search with its results, as listed by
// GET /api/market-search/searches.
type MarketSearch struct {
	ID           int64         `json:"id"`
	Query        string        `json:"query"`
	Status       string        `json:"status"`
	ResultsCount int           `json:"results_count"`
	Offers       []MarketOffer `json:"offers,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// SmartSearchResult carries the AI recommendation alongside raw offers.
type SmartSearchResult struct {
	SearchID       int64         `json:"search_id"`
	Offers         []MarketOffer `json:"offers"`
	BestOffer      *MarketOffer  `json:"best_offer,omitempty"`
	Recommendation string        `json:"recommendation,omitempty"`
}
