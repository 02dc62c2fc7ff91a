package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) ListInventoryItems(ctx context.Context, params models.InventoryListParams) ([]models.InventoryItem, error) {
	req := a.client.R().SetContext(ctx)
	if params.Category != "" {
		req.SetQueryParam("category", params.Category)
	}
	if params.Warehouse != "" {
		req.SetQueryParam("warehouse", params.Warehouse)
	}
	if params.LowStockOnly {
		req.SetQueryParam("low_stock_only", "true")
	}
	if params.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(params.Offset))
	}

	resp, err := req.Get("/api/inventory/items")
	if err != nil {
		return nil, fmt.Errorf("list inventory items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.InventoryItem
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) GetInventoryItem(ctx context.Context, id int64) (models.InventoryItem, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/inventory/items/" + itoa64(id))
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("get inventory item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InventoryItem{}, err
	}

	var out models.InventoryItem
	if err = decodeJSON(resp, &out); err != nil {
		return models.InventoryItem{}, err
	}
	return out, nil
}

func (a *API) CreateInventoryItem(ctx context.Context, req models.CreateInventoryItemRequest) (models.InventoryItem, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/inventory/items")
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("create inventory item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InventoryItem{}, err
	}

	var out models.InventoryItem
	if err = decodeJSON(resp, &out); err != nil {
		return models.InventoryItem{}, err
	}
	return out, nil
}

func (a *API) RecordMovement(ctx context.Context, req models.MovementRequest) (models.InventoryMovement, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/inventory/movements")
	if err != nil {
		return models.InventoryMovement{}, fmt.Errorf("record movement request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InventoryMovement{}, err
	}

	var out models.InventoryMovement
	if err = decodeJSON(resp, &out); err != nil {
		return models.InventoryMovement{}, err
	}
	return out, nil
}

func (a *API) InventoryAlerts(ctx context.Context, status, severity string) ([]models.InventoryAlert, error) {
	req := a.client.R().SetContext(ctx)
	if status != "" {
		req.SetQueryParam("status", status)
	}
	if severity != "" {
		req.SetQueryParam("severity", severity)
	}

	resp, err := req.Get("/api/inventory/alerts")
	if err != nil {
		return nil, fmt.Errorf("inventory alerts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.InventoryAlert
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) AcknowledgeAlert(ctx context.Context, alertID int64) (models.InventoryAlert, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Post("/api/inventory/alerts/" + itoa64(alertID) + "/acknowledge")
	if err != nil {
		return models.InventoryAlert{}, fmt.Errorf("acknowledge alert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InventoryAlert{}, err
	}

	var out models.InventoryAlert
	if err = decodeJSON(resp, &out); err != nil {
		return models.InventoryAlert{}, err
	}
	return out, nil
}

func (a *API) ResolveAlert(ctx context.Context, alertID int64, notes string) (models.InventoryAlert, error) {
	req := a.client.R().SetContext(ctx)
	if notes != "" {
		req.SetQueryParam("notes", notes)
	}

	resp, err := req.Post("/api/inventory/alerts/" + itoa64(alertID) + "/resolve")
	if err != nil {
		return models.InventoryAlert{}, fmt.Errorf("resolve alert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InventoryAlert{}, err
	}

	var out models.InventoryAlert
	if err = decodeJSON(resp, &out); err != nil {
		return models.InventoryAlert{}, err
	}
	return out, nil
}

func (a *API) ReorderSuggestions(ctx context.Context) ([]models.ReorderSuggestion, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/inventory/reorder-suggestions")
	if err != nil {
		return nil, fmt.Errorf("reorder suggestions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.ReorderSuggestion
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) InventoryValueReport(ctx context.Context, category, warehouse string) (models.InventoryValueReport, error) {
	req := a.client.R().SetContext(ctx)
	if category != "" {
		req.SetQueryParam("category", category)
	}
	if warehouse != "" {
		req.SetQueryParam("warehouse", warehouse)
	}

	resp, err := req.Get("/api/inventory/value-report")
	if err != nil {
		return models.InventoryValueReport{}, fmt.Errorf("inventory value report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InventoryValueReport{}, err
	}

	var out models.InventoryValueReport
	if err = decodeJSON(resp, &out); err != nil {
		return models.InventoryValueReport{}, err
	}
	return out, nil
}

// GenerateForecast asks the backend to project demand for one stock item.
// Period is backend-defined ("30d", "90d", ...).
func (a *API) GenerateForecast(ctx context.Context, itemID int64, period string) (models.DemandForecast, error) {
	req := a.client.R().SetContext(ctx)
	if period != "" {
		req.SetQueryParam("period", period)
	}

	resp, err := req.Post("/api/inventory/items/" + itoa64(itemID) + "/forecast")
	if err != nil {
		return models.DemandForecast{}, fmt.Errorf("generate forecast request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DemandForecast{}, err
	}

	var out models.DemandForecast
	if err = decodeJSON(resp, &out); err != nil {
		return models.DemandForecast{}, err
	}
	return out, nil
}
