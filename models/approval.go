package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalRule defines when a purchase needs sign-off; evaluation happens in
// the backend, the client only manages the rule records.
type ApprovalRule struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	ApprovalType string           `json:"approval_type"`
	MinAmount    *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount    *decimal.Decimal `json:"max_amount,omitempty"`
	ApproverID   int64            `json:"approver_id"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
}

// CreateApprovalRuleRequest is the payload for POST /api/approvals/rules.
type CreateApprovalRuleRequest struct {
	Name         string           `json:"name"`
	ApprovalType string           `json:"approval_type"`
	MinAmount    *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount    *decimal.Decimal `json:"max_amount,omitempty"`
	ApproverID   int64            `json:"approver_id"`
}

// ApprovalRequest is a pending or resolved sign-off request.
type ApprovalRequest struct {
	ID           int64            `json:"id"`
	ApprovalType string           `json:"approval_type"`
	Status       string           `json:"status"` // "pending", "approved", "rejected", "delegated"
	RequesterID  int64            `json:"requester_id"`
	ApproverID   int64            `json:"approver_id"`
	EntityID     *int64           `json:"entity_id,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Description  string           `json:"description,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	Conditions   string           `json:"conditions,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	ResolvedAt   *time.Time       `json:"resolved_at,omitempty"`
}

// ApprovalRequestListParams filters GET /api/approvals/requests.
type ApprovalRequestListParams struct {
	Status       string
	ApprovalType string
	Limit        int
	Offset       int
}

// CreateApprovalRequestPayload is the body of POST /api/approvals/requests.
type CreateApprovalRequestPayload struct {
	ApprovalType string           `json:"approval_type"`
	EntityID     *int64           `json:"entity_id,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Description  string           `json:"description,omitempty"`
}

// ApproveRequestPayload carries optional notes/conditions for an approval.
type ApproveRequestPayload struct {
	Notes      string `json:"notes,omitempty"`
	Conditions string `json:"conditions,omitempty"`
}

// DelegatePayload reassigns an approval request to another approver.
type DelegatePayload struct {
	DelegateID int64  `json:"delegate_id"`
	Reason     string `json:"reason"`
}
