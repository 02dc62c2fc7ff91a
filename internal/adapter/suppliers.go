package adapter

import (
	"context"
	"fmt"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) ListSuppliers(ctx context.Context, params models.SupplierListParams) (models.PaginatedSuppliers, error) {
	req := setPageParams(a.client.R().SetContext(ctx), params.Page, params.PerPage)
	if params.Status != "" {
		req.SetQueryParam("status", string(params.Status))
	}
	if params.Category != "" {
		req.SetQueryParam("category", params.Category)
	}
	if params.Search != "" {
		req.SetQueryParam("search", params.Search)
	}
	if params.City != "" {
		req.SetQueryParam("city", params.City)
	}
	if params.State != "" {
		req.SetQueryParam("state", params.State)
	}

	resp, err := req.Get("/api/suppliers")
	if err != nil {
		return models.PaginatedSuppliers{}, fmt.Errorf("list suppliers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PaginatedSuppliers{}, err
	}

	var out models.PaginatedSuppliers
	if err = decodeJSON(resp, &out); err != nil {
		return models.PaginatedSuppliers{}, err
	}
	return out, nil
}

func (a *API) GetSupplier(ctx context.Context, id int64) (models.Supplier, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/suppliers/" + itoa64(id))
	if err != nil {
		return models.Supplier{}, fmt.Errorf("get supplier request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Supplier{}, err
	}

	var out models.Supplier
	if err = decodeJSON(resp, &out); err != nil {
		return models.Supplier{}, err
	}
	return out, nil
}

func (a *API) CreateSupplier(ctx context.Context, req models.CreateSupplierRequest) (models.Supplier, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/suppliers")
	if err != nil {
		return models.Supplier{}, fmt.Errorf("create supplier request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Supplier{}, err
	}

	var out models.Supplier
	if err = decodeJSON(resp, &out); err != nil {
		return models.Supplier{}, err
	}
	return out, nil
}

func (a *API) UpdateSupplier(ctx context.Context, id int64, req models.CreateSupplierRequest) (models.Supplier, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/suppliers/" + itoa64(id))
	if err != nil {
		return models.Supplier{}, fmt.Errorf("update supplier request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Supplier{}, err
	}

	var out models.Supplier
	if err = decodeJSON(resp, &out); err != nil {
		return models.Supplier{}, err
	}
	return out, nil
}

func (a *API) DeleteSupplier(ctx context.Context, id int64) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Delete("/api/suppliers/" + itoa64(id))
	if err != nil {
		return fmt.Errorf("delete supplier request: %w", err)
	}
	return mapHTTPError(resp)
}

func (a *API) SupplierStats(ctx context.Context, id int64) (models.SupplierStats, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/suppliers/" + itoa64(id) + "/stats")
	if err != nil {
		return models.SupplierStats{}, fmt.Errorf("supplier stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SupplierStats{}, err
	}

	var out models.SupplierStats
	if err = decodeJSON(resp, &out); err != nil {
		return models.SupplierStats{}, err
	}
	return out, nil
}
