package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) AnalyzePurchase(ctx context.Context, req models.PurchaseAnalysisRequest) (models.PurchaseAnalysis, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/cash-guardian/analyze-purchase")
	if err != nil {
		return models.PurchaseAnalysis{}, fmt.Errorf("analyze purchase request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PurchaseAnalysis{}, err
	}

	var out models.PurchaseAnalysis
	if err = decodeJSON(resp, &out); err != nil {
		return models.PurchaseAnalysis{}, err
	}
	return out, nil
}

func (a *API) PriceOpportunities(ctx context.Context, days int) ([]models.PriceOpportunity, error) {
	req := a.client.R().SetContext(ctx)
	if days > 0 {
		req.SetQueryParam("days", strconv.Itoa(days))
	}

	resp, err := req.Get("/api/cash-guardian/price-opportunities")
	if err != nil {
		return nil, fmt.Errorf("price opportunities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.PriceOpportunity
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) PurchaseSuggestions(ctx context.Context) ([]models.PurchaseSuggestion, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/cash-guardian/purchase-suggestions")
	if err != nil {
		return nil, fmt.Errorf("purchase suggestions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.PurchaseSuggestion
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) SpendingAnalysis(ctx context.Context, days int) (models.SpendingAnalysis, error) {
	req := a.client.R().SetContext(ctx)
	if days > 0 {
		req.SetQueryParam("days", strconv.Itoa(days))
	}

	resp, err := req.Get("/api/cash-guardian/spending-analysis")
	if err != nil {
		return models.SpendingAnalysis{}, fmt.Errorf("spending analysis request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SpendingAnalysis{}, err
	}

	var out models.SpendingAnalysis
	if err = decodeJSON(resp, &out); err != nil {
		return models.SpendingAnalysis{}, err
	}
	return out, nil
}

func (a *API) BuyNowOrWait(ctx context.Context, req models.BuyNowOrWaitRequest) (models.BuyNowOrWaitAdvice, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/cash-guardian/buy-now-or-wait")
	if err != nil {
		return models.BuyNowOrWaitAdvice{}, fmt.Errorf("buy now or wait request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuyNowOrWaitAdvice{}, err
	}

	var out models.BuyNowOrWaitAdvice
	if err = decodeJSON(resp, &out); err != nil {
		return models.BuyNowOrWaitAdvice{}, err
	}
	return out, nil
}

func (a *API) CashGuardianDashboard(ctx context.Context) (models.CashGuardianDashboard, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/cash-guardian/dashboard")
	if err != nil {
		return models.CashGuardianDashboard{}, fmt.Errorf("cash guardian dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CashGuardianDashboard{}, err
	}

	var out models.CashGuardianDashboard
	if err = decodeJSON(resp, &out); err != nil {
		return models.CashGuardianDashboard{}, err
	}
	return out, nil
}
