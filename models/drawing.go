package models

import "github.com/shopspring/decimal"

// DrawingAnalysis is the backend's reading of an uploaded technical drawing
// (POST /api/technical-drawings/analyze).
type DrawingAnalysis struct {
	DrawingType  string         `json:"drawing_type,omitempty"`
	Title        string         `json:"title,omitempty"`
	Summary      string         `json:"summary,omitempty"`
	Dimensions   map[string]any `json:"dimensions,omitempty"`
	Materials    []string       `json:"materials,omitempty"`
	Annotations  []string       `json:"annotations,omitempty"`
	AIConfidence float64        `json:"ai_confidence"`
}

// BOMItem is one line of an extracted bill of materials.
type BOMItem struct {
	Position    string `json:"position,omitempty"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit,omitempty"`
	Material    string `json:"material,omitempty"`
	PartNumber  string `json:"part_number,omitempty"`
}

// BillOfMaterials is returned by POST /api/technical-drawings/extract-bom.
type BillOfMaterials struct {
	DrawingTitle string    `json:"drawing_title,omitempty"`
	Items        []BOMItem `json:"items"`
	AIConfidence float64   `json:"ai_confidence"`
}

// DrawingComparison diff between two drawing revisions
// (POST /api/technical-drawings/compare-versions).
type DrawingComparison struct {
	Added    []string `json:"added,omitempty"`
	Removed  []string `json:"removed,omitempty"`
	Modified []string `json:"modified,omitempty"`
	Summary  string   `json:"summary,omitempty"`
}

// PurchaseListEntry is one purchasable line derived from a drawing.
type PurchaseListEntry struct {
	Description   string           `json:"description"`
	Quantity      int              `json:"quantity"`
	Unit          string           `json:"unit,omitempty"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost,omitempty"`
	Category      string           `json:"category,omitempty"`
}

// PurchaseList is returned by
// POST /api/technical-drawings/generate-purchase-list.
type PurchaseList struct {
	Entries            []PurchaseListEntry `json:"entries"`
	QuantityMultiplier int                 `json:"quantity_multiplier"`
	EstimatedTotal     *decimal.Decimal    `json:"estimated_total,omitempty"`
}
