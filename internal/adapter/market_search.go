package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) MarketSearch(ctx context.Context, req models.MarketSearchRequest) (models.MarketSearch, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/market-search/search")
	if err != nil {
		return models.MarketSearch{}, fmt.Errorf("market search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MarketSearch{}, err
	}

	var out models.MarketSearch
	if err = decodeJSON(resp, &out); err != nil {
		return models.MarketSearch{}, err
	}
	return out, nil
}

func (a *API) MarketSearchFromItem(ctx context.Context, req models.SearchFromItemRequest) (models.MarketSearch, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/market-search/search-from-item")
	if err != nil {
		return models.MarketSearch{}, fmt.Errorf("market search from item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MarketSearch{}, err
	}

	var out models.MarketSearch
	if err = decodeJSON(resp, &out); err != nil {
		return models.MarketSearch{}, err
	}
	return out, nil
}

func (a *API) ListMarketSearches(ctx context.Context, limit, offset int) ([]models.MarketSearch, error) {
	req := a.client.R().SetContext(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(offset))
	}

	resp, err := req.Get("/api/market-search/searches")
	if err != nil {
		return nil, fmt.Errorf("list market searches request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.MarketSearch
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) GetMarketSearch(ctx context.Context, searchID int64) (models.MarketSearch, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/market-search/searches/" + itoa64(searchID))
	if err != nil {
		return models.MarketSearch{}, fmt.Errorf("get market search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MarketSearch{}, err
	}

	var out models.MarketSearch
	if err = decodeJSON(resp, &out); err != nil {
		return models.MarketSearch{}, err
	}
	return out, nil
}

func (a *API) SmartSearch(ctx context.Context, req models.SmartSearchRequest) (models.SmartSearchResult, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/market-search/smart-search")
	if err != nil {
		return models.SmartSearchResult{}, fmt.Errorf("smart search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SmartSearchResult{}, err
	}

	var out models.SmartSearchResult
	if err = decodeJSON(resp, &out); err != nil {
		return models.SmartSearchResult{}, err
	}
	return out, nil
}
