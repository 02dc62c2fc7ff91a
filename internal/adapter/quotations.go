package adapter

import (
	"context"
	"fmt"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) ListQuotations(ctx context.Context, params models.QuotationListParams) (models.PaginatedQuotations, error) {
	req := setPageParams(a.client.R().SetContext(ctx), params.Page, params.PerPage)
	if params.ItemID > 0 {
		req.SetQueryParam("item_id", itoa64(params.ItemID))
	}
	if params.SupplierID > 0 {
		req.SetQueryParam("supplier_id", itoa64(params.SupplierID))
	}
	if params.Status != "" {
		req.SetQueryParam("status", string(params.Status))
	}

	resp, err := req.Get("/api/quotations")
	if err != nil {
		return models.PaginatedQuotations{}, fmt.Errorf("list quotations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PaginatedQuotations{}, err
	}

	var out models.PaginatedQuotations
	if err = decodeJSON(resp, &out); err != nil {
		return models.PaginatedQuotations{}, err
	}
	return out, nil
}

// RequestQuotations opens one pending quotation per supplier for the item.
func (a *API) RequestQuotations(ctx context.Context, itemID int64, supplierIDs []int64) ([]models.Quotation, error) {
	req := a.client.R().
		SetContext(ctx).
		SetQueryParam("item_id", itoa64(itemID))
	for _, id := range supplierIDs {
		req.QueryParam.Add("supplier_ids", itoa64(id))
	}

	resp, err := req.Post("/api/quotations/request")
	if err != nil {
		return nil, fmt.Errorf("request quotations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.Quotation
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) ReceiveQuotation(ctx context.Context, id int64, req models.ReceiveQuotationRequest) (models.Quotation, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/quotations/" + itoa64(id) + "/receive")
	if err != nil {
		return models.Quotation{}, fmt.Errorf("receive quotation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Quotation{}, err
	}

	var out models.Quotation
	if err = decodeJSON(resp, &out); err != nil {
		return models.Quotation{}, err
	}
	return out, nil
}

func (a *API) CompareQuotations(ctx context.Context, itemID int64) (models.QuotationComparison, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/quotations/item/" + itoa64(itemID) + "/compare")
	if err != nil {
		return models.QuotationComparison{}, fmt.Errorf("compare quotations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QuotationComparison{}, err
	}

	var out models.QuotationComparison
	if err = decodeJSON(resp, &out); err != nil {
		return models.QuotationComparison{}, err
	}
	return out, nil
}

func (a *API) AcceptQuotation(ctx context.Context, id int64) (models.Quotation, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Post("/api/quotations/" + itoa64(id) + "/accept")
	if err != nil {
		return models.Quotation{}, fmt.Errorf("accept quotation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Quotation{}, err
	}

	var out models.Quotation
	if err = decodeJSON(resp, &out); err != nil {
		return models.Quotation{}, err
	}
	return out, nil
}

func (a *API) RejectQuotation(ctx context.Context, id int64, reason string) (models.Quotation, error) {
	req := a.client.R().SetContext(ctx)
	if reason != "" {
		req.SetQueryParam("reason", reason)
	}

	resp, err := req.Post("/api/quotations/" + itoa64(id) + "/reject")
	if err != nil {
		return models.Quotation{}, fmt.Errorf("reject quotation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Quotation{}, err
	}

	var out models.Quotation
	if err = decodeJSON(resp, &out); err != nil {
		return models.Quotation{}, err
	}
	return out, nil
}
