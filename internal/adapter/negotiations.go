package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rafaelssenna/sol-client/models"
)

// StartNegotiation opens a thread against a received quotation. The target
// discount is a percentage; the backend works out the target price.
func (a *API) StartNegotiation(ctx context.Context, quotationID int64, targetDiscount float64, channel models.NegotiationChannel) (models.Negotiation, error) {
	req := a.client.R().SetContext(ctx)
	if targetDiscount > 0 {
		req.SetQueryParam("target_discount", strconv.FormatFloat(targetDiscount, 'f', -1, 64))
	}
	if channel != "" {
		req.SetQueryParam("channel", string(channel))
	}

	resp, err := req.Post("/api/negotiations/start/" + itoa64(quotationID))
	if err != nil {
		return models.Negotiation{}, fmt.Errorf("start negotiation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Negotiation{}, err
	}

	var out models.Negotiation
	if err = decodeJSON(resp, &out); err != nil {
		return models.Negotiation{}, err
	}
	return out, nil
}

func (a *API) GetNegotiation(ctx context.Context, id int64) (models.NegotiationDetail, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/negotiations/" + itoa64(id))
	if err != nil {
		return models.NegotiationDetail{}, fmt.Errorf("get negotiation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NegotiationDetail{}, err
	}

	var out models.NegotiationDetail
	if err = decodeJSON(resp, &out); err != nil {
		return models.NegotiationDetail{}, err
	}
	return out, nil
}

// RespondNegotiation records the supplier's reply and returns the thread
// with the backend's counter move already applied.
func (a *API) RespondNegotiation(ctx context.Context, id int64, req models.RespondNegotiationRequest) (models.NegotiationDetail, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/negotiations/" + itoa64(id) + "/respond")
	if err != nil {
		return models.NegotiationDetail{}, fmt.Errorf("respond negotiation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NegotiationDetail{}, err
	}

	var out models.NegotiationDetail
	if err = decodeJSON(resp, &out); err != nil {
		return models.NegotiationDetail{}, err
	}
	return out, nil
}

func (a *API) AcceptNegotiation(ctx context.Context, id int64, finalPrice decimal.Decimal) (models.Negotiation, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("final_price", finalPrice.String()).
		Post("/api/negotiations/" + itoa64(id) + "/accept")
	if err != nil {
		return models.Negotiation{}, fmt.Errorf("accept negotiation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Negotiation{}, err
	}

	var out models.Negotiation
	if err = decodeJSON(resp, &out); err != nil {
		return models.Negotiation{}, err
	}
	return out, nil
}

func (a *API) CancelNegotiation(ctx context.Context, id int64, reason string) (models.Negotiation, error) {
	req := a.client.R().SetContext(ctx)
	if reason != "" {
		req.SetQueryParam("reason", reason)
	}

	resp, err := req.Post("/api/negotiations/" + itoa64(id) + "/cancel")
	if err != nil {
		return models.Negotiation{}, fmt.Errorf("cancel negotiation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Negotiation{}, err
	}

	var out models.Negotiation
	if err = decodeJSON(resp, &out); err != nil {
		return models.Negotiation{}, err
	}
	return out, nil
}
