package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) ListApprovalRules(ctx context.Context, approvalType string, activeOnly bool) ([]models.ApprovalRule, error) {
	req := a.client.R().SetContext(ctx)
	if approvalType != "" {
		req.SetQueryParam("approval_type", approvalType)
	}
	if activeOnly {
		req.SetQueryParam("active_only", "true")
	}

	resp, err := req.Get("/api/approvals/rules")
	if err != nil {
		return nil, fmt.Errorf("list approval rules request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.ApprovalRule
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) CreateApprovalRule(ctx context.Context, req models.CreateApprovalRuleRequest) (models.ApprovalRule, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/approvals/rules")
	if err != nil {
		return models.ApprovalRule{}, fmt.Errorf("create approval rule request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ApprovalRule{}, err
	}

	var out models.ApprovalRule
	if err = decodeJSON(resp, &out); err != nil {
		return models.ApprovalRule{}, err
	}
	return out, nil
}

func (a *API) ListApprovalRequests(ctx context.Context, params models.ApprovalRequestListParams) ([]models.ApprovalRequest, error) {
	req := a.client.R().SetContext(ctx)
	if params.Status != "" {
		req.SetQueryParam("status", params.Status)
	}
	if params.ApprovalType != "" {
		req.SetQueryParam("approval_type", params.ApprovalType)
	}
	if params.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(params.Offset))
	}

	resp, err := req.Get("/api/approvals/requests")
	if err != nil {
		return nil, fmt.Errorf("list approval requests request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.ApprovalRequest
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PendingApprovals lists the requests waiting on the current user.
func (a *API) PendingApprovals(ctx context.Context) ([]models.ApprovalRequest, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/approvals/requests/pending")
	if err != nil {
		return nil, fmt.Errorf("pending approvals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.ApprovalRequest
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) GetApprovalRequest(ctx context.Context, id int64) (models.ApprovalRequest, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/approvals/requests/" + itoa64(id))
	if err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("get approval request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ApprovalRequest{}, err
	}

	var out models.ApprovalRequest
	if err = decodeJSON(resp, &out); err != nil {
		return models.ApprovalRequest{}, err
	}
	return out, nil
}

func (a *API) CreateApprovalRequest(ctx context.Context, req models.CreateApprovalRequestPayload) (models.ApprovalRequest, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/approvals/requests")
	if err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("create approval request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ApprovalRequest{}, err
	}

	var out models.ApprovalRequest
	if err = decodeJSON(resp, &out); err != nil {
		return models.ApprovalRequest{}, err
	}
	return out, nil
}

func (a *API) Approve(ctx context.Context, id int64, req models.ApproveRequestPayload) (models.ApprovalRequest, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/approvals/requests/" + itoa64(id) + "/approve")
	if err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("approve request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ApprovalRequest{}, err
	}

	var out models.ApprovalRequest
	if err = decodeJSON(resp, &out); err != nil {
		return models.ApprovalRequest{}, err
	}
	return out, nil
}

func (a *API) Reject(ctx context.Context, id int64, reason string) (models.ApprovalRequest, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"notes": reason}).
		Post("/api/approvals/requests/" + itoa64(id) + "/reject")
	if err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("reject request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ApprovalRequest{}, err
	}

	var out models.ApprovalRequest
	if err = decodeJSON(resp, &out); err != nil {
		return models.ApprovalRequest{}, err
	}
	return out, nil
}

func (a *API) Delegate(ctx context.Context, id int64, req models.DelegatePayload) (models.ApprovalRequest, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/approvals/requests/" + itoa64(id) + "/delegate")
	if err != nil {
		return models.ApprovalRequest{}, fmt.Errorf("delegate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ApprovalRequest{}, err
	}

	var out models.ApprovalRequest
	if err = decodeJSON(resp, &out); err != nil {
		return models.ApprovalRequest{}, err
	}
	return out, nil
}
