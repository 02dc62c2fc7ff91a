package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) GetSavingsReport(ctx context.Context, days int) (models.SavingsReport, error) {
	req := a.client.R().SetContext(ctx)
	if days > 0 {
		req.SetQueryParam("period_days", strconv.Itoa(days))
	}

	resp, err := req.Get("/api/reports/savings")
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

// DownloadSavingsPDF returns the rendered PDF bytes; the caller decides where
// to put them on disk.
func (a *API) DownloadSavingsPDF(ctx context.Context, days int) ([]byte, error) {
	req := a.client.R().SetContext(ctx)
	if days > 0 {
		req.SetQueryParam("period_days", strconv.Itoa(days))
	}
	return a.downloadPDF(req, "/api/reports/savings/pdf")
}

func (a *API) GetSupplierRankingReport(ctx context.Context, rankingType string, limit int) ([]models.SupplierRankingEntry, error) {
	req := a.client.R().SetContext(ctx)
	if rankingType != "" {
		req.SetQueryParam("ranking_type", rankingType)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/reports/supplier-ranking")
	if err != nil {
		return nil, fmt.Errorf("supplier ranking report request: %w", err)
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

func (a *API) DownloadSupplierRankingPDF(ctx context.Context, rankingType string) ([]byte, error) {
	req := a.client.R().SetContext(ctx)
	if rankingType != "" {
		req.SetQueryParam("ranking_type", rankingType)
	}
	return a.downloadPDF(req, "/api/reports/supplier-ranking/pdf")
}

func (a *API) GetInventoryReport(ctx context.Context, category, warehouse string) (models.InventoryValueReport, error) {
	req := a.client.R().SetContext(ctx)
	if category != "" {
		req.SetQueryParam("category", category)
	}
	if warehouse != "" {
		req.SetQueryParam("warehouse", warehouse)
	}

	resp, err := req.Get("/api/reports/inventory")
	if err != nil {
		return models.InventoryValueReport{}, fmt.Errorf("inventory report request: %w", err)
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

func (a *API) DownloadInventoryPDF(ctx context.Context, category, warehouse string) ([]byte, error) {
	req := a.client.R().SetContext(ctx)
	if category != "" {
		req.SetQueryParam("category", category)
	}
	if warehouse != "" {
		req.SetQueryParam("warehouse", warehouse)
	}
	return a.downloadPDF(req, "/api/reports/inventory/pdf")
}

func (a *API) DownloadQuotationComparisonPDF(ctx context.Context, itemID int64) ([]byte, error) {
	req := a.client.R().SetContext(ctx)
	return a.downloadPDF(req, "/api/reports/quotation-comparison/"+itoa64(itemID)+"/pdf")
}

// downloadPDF issues a GET for a binary report. The Accept header is widened
// because the shared client defaults to JSON.
func (a *API) downloadPDF(req *resty.Request, path string) ([]byte, error) {
	resp, err := req.
		SetHeader("Accept", "application/pdf").
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("download report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
