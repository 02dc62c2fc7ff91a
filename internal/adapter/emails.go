package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) ListEmailAccounts(ctx context.Context) ([]models.EmailAccount, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/emails/accounts")
	if err != nil {
		return nil, fmt.Errorf("list email accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.EmailAccount
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) CreateEmailAccount(ctx context.Context, req models.CreateEmailAccountRequest) (models.EmailAccount, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/emails/accounts")
	if err != nil {
		return models.EmailAccount{}, fmt.Errorf("create email account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EmailAccount{}, err
	}

	var out models.EmailAccount
	if err = decodeJSON(resp, &out); err != nil {
		return models.EmailAccount{}, err
	}
	return out, nil
}

// TestEmailAccount asks the backend to verify SMTP/IMAP connectivity for a
// configured account.
func (a *API) TestEmailAccount(ctx context.Context, accountID int64) (models.HealthStatus, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Post("/api/emails/accounts/" + itoa64(accountID) + "/test")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("test email account request: %w", err)
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

func (a *API) ListEmailTemplates(ctx context.Context, emailType string) ([]models.EmailTemplate, error) {
	req := a.client.R().SetContext(ctx)
	if emailType != "" {
		req.SetQueryParam("email_type", emailType)
	}

	resp, err := req.Get("/api/emails/templates")
	if err != nil {
		return nil, fmt.Errorf("list email templates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.EmailTemplate
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) CreateEmailTemplate(ctx context.Context, tmpl models.EmailTemplate) (models.EmailTemplate, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(tmpl).
		Post("/api/emails/templates")
	if err != nil {
		return models.EmailTemplate{}, fmt.Errorf("create email template request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EmailTemplate{}, err
	}

	var out models.EmailTemplate
	if err = decodeJSON(resp, &out); err != nil {
		return models.EmailTemplate{}, err
	}
	return out, nil
}

func (a *API) SendEmail(ctx context.Context, req models.SendEmailRequest) (models.SentMessage, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/emails/send")
	if err != nil {
		return models.SentMessage{}, fmt.Errorf("send email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SentMessage{}, err
	}

	var out models.SentMessage
	if err = decodeJSON(resp, &out); err != nil {
		return models.SentMessage{}, err
	}
	return out, nil
}

func (a *API) SendQuotationRequest(ctx context.Context, req models.QuotationRequestEmail) (models.SentMessage, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/emails/send-quotation-request")
	if err != nil {
		return models.SentMessage{}, fmt.Errorf("send quotation request email: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SentMessage{}, err
	}

	var out models.SentMessage
	if err = decodeJSON(resp, &out); err != nil {
		return models.SentMessage{}, err
	}
	return out, nil
}

func (a *API) FetchInbox(ctx context.Context, unseenOnly bool, limit int) ([]models.InboxMessage, error) {
	req := a.client.R().SetContext(ctx)
	if unseenOnly {
		req.SetQueryParam("unseen_only", "true")
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/emails/inbox")
	if err != nil {
		return nil, fmt.Errorf("fetch inbox request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.InboxMessage
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseQuotationEmail sends an inbound message back for AI extraction of its
// priced fields.
func (a *API) ParseQuotationEmail(ctx context.Context, msg models.InboxMessage) (models.ParsedQuotation, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("/api/emails/parse-quotation")
	if err != nil {
		return models.ParsedQuotation{}, fmt.Errorf("parse quotation email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ParsedQuotation{}, err
	}

	var out models.ParsedQuotation
	if err = decodeJSON(resp, &out); err != nil {
		return models.ParsedQuotation{}, err
	}
	return out, nil
}

func (a *API) ListSentMessages(ctx context.Context, params models.SentMessageListParams) ([]models.SentMessage, error) {
	req := a.client.R().SetContext(ctx)
	if params.EmailType != "" {
		req.SetQueryParam("email_type", params.EmailType)
	}
	if params.Status != "" {
		req.SetQueryParam("status", params.Status)
	}
	if params.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(params.Offset))
	}

	resp, err := req.Get("/api/emails/messages")
	if err != nil {
		return nil, fmt.Errorf("list sent messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out []models.SentMessage
	if err = decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}
