package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmailAccount is a configured outbound/inbound mailbox on the backend.
// Credentials never reach the client.
type EmailAccount struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider,omitempty"`
	IsDefault bool      `json:"is_default"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateEmailAccountRequest is the payload for POST /api/emails/accounts.
type CreateEmailAccountRequest struct {
	Email        string `json:"email"`
	Provider     string `json:"provider,omitempty"`
	SMTPHost     string `json:"smtp_host,omitempty"`
	SMTPPort     int    `json:"smtp_port,omitempty"`
	IMAPHost     string `json:"imap_host,omitempty"`
	IMAPPort     int    `json:"imap_port,omitempty"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	IsDefault    bool   `json:"is_default,omitempty"`
}

// EmailTemplate is a reusable message template keyed by email type.
type EmailTemplate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	EmailType string    `json:"email_type"`
	Subject   string    `json:"subject"`
	BodyHTML  string    `json:"body_html"`
	BodyText  string    `json:"body_text,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SendEmailRequest is the payload for POST /api/emails/send.
type SendEmailRequest struct {
	ToEmails          []string       `json:"to_emails"`
	Subject           string         `json:"subject"`
	BodyHTML          string         `json:"body_html"`
	BodyText          string         `json:"body_text,omitempty"`
	CCEmails          []string       `json:"cc_emails,omitempty"`
	TemplateID        *int64         `json:"template_id,omitempty"`
	TemplateVariables map[string]any `json:"template_variables,omitempty"`
}

// QuotationRequestEmail is the payload for
// POST /api/emails/send-quotation-request.
type QuotationRequestEmail struct {
	SupplierEmail  string         `json:"supplier_email"`
	SupplierName   string         `json:"supplier_name"`
	ItemName       string         `json:"item_name"`
	ItemDetails    string         `json:"item_details"`
	Quantity       int            `json:"quantity"`
	Specifications map[string]any `json:"specifications,omitempty"`
}

// InboxMessage is a fetched inbound email, possibly a supplier's quotation
// reply waiting to be parsed.
type InboxMessage struct {
	UID        string    `json:"uid"`
	From       string    `json:"from"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
	Seen       bool      `json:"seen"`
}

// ParsedQuotation is the backend's extraction of priced fields from a
// supplier email.
type ParsedQuotation struct {
	SupplierEmail string           `json:"supplier_email,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	DeliveryDays  *int             `json:"delivery_days,omitempty"`
	PaymentTerms  string           `json:"payment_terms,omitempty"`
	Confidence    float64          `json:"confidence"`
	RawFields     map[string]any   `json:"raw_fields,omitempty"`
}

// SentMessage is a record of an email the backend dispatched.
type SentMessage struct {
	ID        int64     `json:"id"`
	EmailType string    `json:"email_type,omitempty"`
	To        []string  `json:"to_emails"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sent_at"`
}

// SentMessageListParams filters GET /api/emails/messages.
type SentMessageListParams struct {
	EmailType string
	Status    string
	Limit     int
	Offset    int
}
