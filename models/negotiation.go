package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NegotiationStatus is the backend-owned lifecycle of a negotiation thread.
type NegotiationStatus string

const (
	NegotiationStatusActive          NegotiationStatus = "active"
	NegotiationStatusWaitingResponse NegotiationStatus = "waiting_response"
	NegotiationStatusCounterOffer    NegotiationStatus = "counter_offer"
	NegotiationStatusSuccess         NegotiationStatus = "success"
	NegotiationStatusFailed          NegotiationStatus = "failed"
	NegotiationStatusCancelled       NegotiationStatus = "cancelled"
)

// NegotiationChannel is the medium the negotiation runs over.
type NegotiationChannel string

const (
	ChannelWhatsApp NegotiationChannel = "whatsapp"
	ChannelEmail    NegotiationChannel = "email"
	ChannelAPI      NegotiationChannel = "api"
	ChannelPhone    NegotiationChannel = "phone"
	ChannelManual   NegotiationChannel = "manual"
)

// Negotiation is a price-discussion thread tied to a quotation. The round
// counters and savings figures are maintained by the backend's negotiation
// engine.
type Negotiation struct {
	ID               int64              `json:"id"`
	QuotationID      int64              `json:"quotation_id"`
	SupplierID       int64              `json:"supplier_id"`
	Status           NegotiationStatus  `json:"status"`
	Channel          NegotiationChannel `json:"channel"`
	InitialPrice     decimal.Decimal    `json:"initial_price"`
	TargetPrice      *decimal.Decimal   `json:"target_price,omitempty"`
	FinalPrice       *decimal.Decimal   `json:"final_price,omitempty"`
	DiscountAchieved *float64           `json:"discount_achieved,omitempty"`
	Savings          *decimal.Decimal   `json:"savings,omitempty"`
	TotalRounds      int                `json:"total_rounds"`
	MaxRounds        int                `json:"max_rounds"`
	StartedAt        time.Time          `json:"started_at"`
	CompletedAt      *time.Time         `json:"completed_at,omitempty"`
}

// NegotiationMessage is one message in the thread; AI-generated entries are
// flagged by the backend.
type NegotiationMessage struct {
	Direction     string           `json:"direction"` // "sent" or "received"
	Message       string           `json:"message"`
	ProposedPrice *decimal.Decimal `json:"proposed_price,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	IsAIGenerated bool             `json:"is_ai_generated"`
}

// NegotiationDetail is returned by GET /api/negotiations/{id}.
type NegotiationDetail struct {
	Negotiation
	Messages []NegotiationMessage `json:"messages"`
}

// RespondNegotiationRequest is the payload for
// POST /api/negotiations/{id}/respond.
type RespondNegotiationRequest struct {
	Message       string           `json:"message"`
	ProposedPrice *decimal.Decimal `json:"proposed_price,omitempty"`
}
