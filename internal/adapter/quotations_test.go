package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelssenna/sol-client/models"
)

// ── Quotations ───────────────────────────────────────────────────────────────

func TestRequestQuotations_ItemAndSuppliersAsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/quotations/request", r.URL.Path)
		assert.Equal(t, "11", r.URL.Query().Get("item_id"))
		assert.Equal(t, []string{"1", "2", "3"}, r.URL.Query()["supplier_ids"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Quotation{{ID: 100}, {ID: 101}, {ID: 102}})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.RequestQuotations(context.Background(), 11, []int64{1, 2, 3})

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestReceiveQuotation_JSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quotations/77/receive", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "1250.5", body["unit_price"])
		assert.Equal(t, float64(10), body["delivery_days"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Quotation{ID: 77, Status: models.QuotationStatusReceived})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.ReceiveQuotation(context.Background(), 77, models.ReceiveQuotationRequest{
		UnitPrice:    decimal.RequireFromString("1250.50"),
		DeliveryDays: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, models.QuotationStatusReceived, got.Status)
}

func TestCompareQuotations(t *testing.T) {
	best := int64(101)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/quotations/item/11/compare", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.QuotationComparison{BestQuotationID: &best})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.CompareQuotations(context.Background(), 11)

	require.NoError(t, err)
	require.NotNil(t, got.BestQuotationID)
	assert.Equal(t, best, *got.BestQuotationID)
}

func TestRejectQuotation_ReasonAsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quotations/8/reject", r.URL.Path)
		assert.Equal(t, "too expensive", r.URL.Query().Get("reason"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Quotation{ID: 8, Status: models.QuotationStatusRejected})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.RejectQuotation(context.Background(), 8, "too expensive")

	require.NoError(t, err)
	assert.Equal(t, models.QuotationStatusRejected, got.Status)
}

// ── Negotiations ─────────────────────────────────────────────────────────────

func TestStartNegotiation_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/negotiations/start/55", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "12.5", q.Get("target_discount"))
		assert.Equal(t, "whatsapp", q.Get("channel"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Negotiation{ID: 9, QuotationID: 55})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.StartNegotiation(context.Background(), 55, 12.5, models.ChannelWhatsApp)

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestAcceptNegotiation_FinalPriceAsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/negotiations/9/accept", r.URL.Path)
		assert.Equal(t, "980.75", r.URL.Query().Get("final_price"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Negotiation{ID: 9, Status: models.NegotiationStatusSuccess})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.AcceptNegotiation(context.Background(), 9, decimal.RequireFromString("980.75"))

	require.NoError(t, err)
	assert.Equal(t, models.NegotiationStatusSuccess, got.Status)
}

func TestRespondNegotiation_ReturnsThread(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/negotiations/9/respond", r.URL.Path)

		var body models.RespondNegotiationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "we can do 1100", body.Message)
		require.NotNil(t, body.ProposedPrice)
		assert.True(t, body.ProposedPrice.Equal(decimal.RequireFromString("1100")))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.NegotiationDetail{
			Negotiation: models.Negotiation{ID: 9, TotalRounds: 2},
			Messages: []models.NegotiationMessage{
				{Direction: "received", Message: "we can do 1100"},
				{Direction: "sent", Message: "can you reach 1050?", IsAIGenerated: true},
			},
		})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	price := decimal.RequireFromString("1100")
	got, err := a.RespondNegotiation(context.Background(), 9, models.RespondNegotiationRequest{
		Message:       "we can do 1100",
		ProposedPrice: &price,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalRounds)
	assert.Len(t, got.Messages, 2)
}
