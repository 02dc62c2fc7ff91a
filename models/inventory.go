package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stock-keeping record.
type InventoryItem struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku,omitempty"`
	Category     string          `json:"category,omitempty"`
	Warehouse    string          `json:"warehouse,omitempty"`
	Quantity     int             `json:"quantity"`
	Unit         string          `json:"unit"`
	MinQuantity  int             `json:"min_quantity"`
	MaxQuantity  *int            `json:"max_quantity,omitempty"`
	ReorderPoint int             `json:"reorder_point"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalValue   decimal.Decimal `json:"total_value"`
	IsLowStock   bool            `json:"is_low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InventoryListParams filters GET /api/inventory/items.
type InventoryListParams struct {
	Category     string
	Warehouse    string
	LowStockOnly bool
	Limit        int
	Offset       int
}

// CreateInventoryItemRequest is the payload for POST /api/inventory/items.
type CreateInventoryItemRequest struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku,omitempty"`
	Category     string          `json:"category,omitempty"`
	Warehouse    string          `json:"warehouse,omitempty"`
	Quantity     int             `json:"quantity"`
	Unit         string          `json:"unit"`
	MinQuantity  int             `json:"min_quantity,omitempty"`
	ReorderPoint int             `json:"reorder_point,omitempty"`
	UnitCost     decimal.Decimal `json:"unit_cost,omitempty"`
}

// MovementRequest records a stock movement (POST /api/inventory/movements).
// MovementType is backend-defined ("in", "out", "adjustment", ...).
type MovementRequest struct {
	InventoryItemID int64            `json:"inventory_item_id"`
	MovementType    string           `json:"movement_type"`
	Quantity        int              `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason          string           `json:"reason,omitempty"`
}

// InventoryMovement is a movement as echoed back by the backend.
type InventoryMovement struct {
	ID              int64            `json:"id"`
	InventoryItemID int64            `json:"inventory_item_id"`
	MovementType    string           `json:"movement_type"`
	Quantity        int              `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// InventoryAlert flags low stock or anomalous consumption.
type InventoryAlert struct {
	ID              int64         `json:"id"`
	InventoryItemID int64         `json:"inventory_item_id"`
	ItemName        string        `json:"item_name,omitempty"`
	Type            string        `json:"type"`
	Severity        AlertSeverity `json:"severity"`
	Status          string        `json:"status"`
	Message         string        `json:"message"`
	CreatedAt       time.Time     `json:"created_at"`
}

// ReorderSuggestion is one row of GET /api/inventory/reorder-suggestions.
type ReorderSuggestion struct {
	InventoryItemID   int64           `json:"inventory_item_id"`
	ItemName          string          `json:"item_name"`
	CurrentQuantity   int             `json:"current_quantity"`
	SuggestedQuantity int             `json:"suggested_quantity"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	Urgency           string          `json:"urgency,omitempty"`
}

// InventoryValueReport is returned by GET /api/inventory/value-report.
type InventoryValueReport struct {
	TotalValue  decimal.Decimal            `json:"total_value"`
	ItemCount   int                        `json:"item_count"`
	ByCategory  map[string]decimal.Decimal `json:"by_category,omitempty"`
	ByWarehouse map[string]decimal.Decimal `json:"by_warehouse,omitempty"`
	GeneratedAt time.Time                  `json:"generated_at"`
}

// DemandForecast is returned by POST /api/inventory/items/{id}/forecast.
type DemandForecast struct {
	InventoryItemID int64            `json:"inventory_item_id"`
	Period          string           `json:"period"`
	PredictedDemand float64          `json:"predicted_demand"`
	Confidence      float64          `json:"confidence"`
	StockoutRisk    string           `json:"stockout_risk,omitempty"`
	Points          []ForecastPoint  `json:"points,omitempty"`
}

type ForecastPoint struct {
	Date     time.Time `json:"date"`
	Quantity float64   `json:"quantity"`
}
