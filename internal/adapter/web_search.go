package adapter

import (
	"context"
	"fmt"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) SearchLocalSuppliers(ctx context.Context, req models.LocalSupplierSearchRequest) (models.WebSearchResult, error) {
	return a.webSearch(ctx, "/api/web-search/local-suppliers", req)
}

func (a *API) SearchPrices(ctx context.Context, req models.PriceSearchRequest) (models.WebSearchResult, error) {
	return a.webSearch(ctx, "/api/web-search/prices", req)
}

func (a *API) SmartSupplierSearch(ctx context.Context, req models.SmartSupplierSearchRequest) (models.WebSearchResult, error) {
	return a.webSearch(ctx, "/api/web-search/smart-supplier-search", req)
}

// webSearch posts one of the web-search payloads; the endpoints share a
// response envelope.
func (a *API) webSearch(ctx context.Context, path string, body any) (models.WebSearchResult, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.WebSearchResult{}, fmt.Errorf("web search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WebSearchResult{}, err
	}

	var out models.WebSearchResult
	if err = decodeJSON(resp, &out); err != nil {
		return models.WebSearchResult{}, err
	}
	return out, nil
}

func (a *API) WebSearchHealth(ctx context.Context) (models.HealthStatus, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/web-search/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("web search health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	var out models.HealthStatus
	if err = decodeJSON(resp, &out); err != nil {
		return models.HealthStatus{}, err
	}
	return out, nil
}
