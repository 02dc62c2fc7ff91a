package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) Dashboard(ctx context.Context, periodDays int) (models.DashboardData, error) {
	req := a.client.R().SetContext(ctx)
	if periodDays > 0 {
		req.SetQueryParam("period_days", strconv.Itoa(periodDays))
	}

	resp, err := req.Get("/api/analytics/dashboard")
	if err != nil {
		return models.DashboardData{}, fmt.Errorf("dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DashboardData{}, err
	}

	var out models.DashboardData
	if err = decodeJSON(resp, &out); err != nil {
		return models.DashboardData{}, err
	}
	return out, nil
}

func (a *API) SavingsReport(ctx context.Context, periodDays int) (models.SavingsReport, error) {
	req := a.client.R().SetContext(ctx)
	if periodDays > 0 {
		req.SetQueryParam("period_days", strconv.Itoa(periodDays))
	}

	resp, err := req.Get("/api/analytics/savings-report")
	if err != nil {
		return models.SavingsReport{}, fmt.Errorf("savings report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SavingsReport{}, err
	}

	var out models.SavingsReport
	if err = decodeJSON(resp, &out); err != nil {
		return models.SavingsReport{}, err
	}
	return out, nil
}

func (a *API) SupplierRanking(ctx context.Context) ([]models.SupplierRankingEntry, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/analytics/supplier-ranking")
	if err != nil {
		return nil, fmt.Errorf("supplier ranking request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.SupplierRankingEntry
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) PriceHistory(ctx context.Context, itemID int64) (models.PriceHistory, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/analytics/price-history/" + itoa64(itemID))
	if err != nil {
		return models.PriceHistory{}, fmt.Errorf("price history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PriceHistory{}, err
	}

	var out models.PriceHistory
	if err = decodeJSON(resp, &out); err != nil {
		return models.PriceHistory{}, err
	}
	return out, nil
}

func (a *API) CategoryAnalysis(ctx context.Context) ([]models.CategoryAnalysis, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/analytics/category-analysis")
	if err != nil {
		return nil, fmt.Errorf("category analysis request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.CategoryAnalysis
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) Alerts(ctx context.Context) ([]models.Alert, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/analytics/alerts")
	if err != nil {
		return nil, fmt.Errorf("alerts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.Alert
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}
