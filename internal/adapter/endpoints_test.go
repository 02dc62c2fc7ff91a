package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelssenna/sol-client/models"
)

// ── Reports ──────────────────────────────────────────────────────────────────

func TestDownloadSavingsPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/savings/pdf", r.URL.Path)
		assert.Equal(t, "90", r.URL.Query().Get("period_days"))
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.DownloadSavingsPDF(context.Background(), 90)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), got)
}

func TestDownloadQuotationComparisonPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/quotation-comparison/11/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.DownloadQuotationComparisonPDF(context.Background(), 11)

	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

// ── Inventory ────────────────────────────────────────────────────────────────

func TestRecordMovement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/inventory/movements", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(12), body["inventory_item_id"])
		assert.Equal(t, "out", body["movement_type"])
		assert.Equal(t, float64(3), body["quantity"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.InventoryMovement{ID: 501})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.RecordMovement(context.Background(), models.MovementRequest{
		InventoryItemID: 12,
		MovementType:    "out",
		Quantity:        3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(501), got.ID)
}

func TestGenerateForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/inventory/items/12/forecast", r.URL.Path)
		assert.Equal(t, "month", r.URL.Query().Get("period"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DemandForecast{InventoryItemID: 12, Period: "month", PredictedDemand: 48})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.GenerateForecast(context.Background(), 12, "month")

	require.NoError(t, err)
	assert.Equal(t, float64(48), got.PredictedDemand)
}

// ── Approvals ────────────────────────────────────────────────────────────────

func TestReject_NotesInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/approvals/requests/6/reject", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "over budget", body["notes"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ApprovalRequest{ID: 6, Status: "rejected"})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.Reject(context.Background(), 6, "over budget")

	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Status)
}

func TestPendingApprovals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/approvals/requests/pending", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.ApprovalRequest{{ID: 6, Status: "pending"}})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.PendingApprovals(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pending", got[0].Status)
}

// ── Technical drawings ───────────────────────────────────────────────────────

func TestCompareDrawingVersions_TwoFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/technical-drawings/compare-versions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		oldFile, oldHeader, err := r.FormFile("old_drawing")
		require.NoError(t, err)
		defer oldFile.Close()
		assert.Equal(t, "rev-a.pdf", oldHeader.Filename)

		newFile, newHeader, err := r.FormFile("new_drawing")
		require.NoError(t, err)
		defer newFile.Close()
		assert.Equal(t, "rev-b.pdf", newHeader.Filename)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DrawingComparison{Summary: "hole diameter changed"})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.CompareDrawingVersions(context.Background(),
		stringAttachment("rev-a.pdf", "old bytes"),
		stringAttachment("rev-b.pdf", "new bytes"))

	require.NoError(t, err)
	assert.Equal(t, "hole diameter changed", got.Summary)
}

func TestIdentifyFromDrawing_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/technical-drawings/identify-from-drawing", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "bearing, see detail A", r.FormValue("additional_context"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Item{ID: 31, Source: models.ItemSourceFile})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.IdentifyFromDrawing(context.Background(),
		stringAttachment("bracket.pdf", "drawing bytes"), "bearing, see detail A")

	require.NoError(t, err)
	assert.Equal(t, int64(31), got.ID)
}

func TestCompareDrawingVersions_OversizedOldRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	oversized := FileAttachment{Name: "rev-a.pdf", Size: 4096, Reader: io.NopCloser(nil)}

	_, err := a.CompareDrawingVersions(context.Background(), oversized, stringAttachment("rev-b.pdf", "ok"))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

// ── Web search ───────────────────────────────────────────────────────────────

func TestWebSearchHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/web-search/health", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.HealthStatus{Status: "ok"})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.WebSearchHealth(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", got.Status)
}

// ── Emails ───────────────────────────────────────────────────────────────────

func TestFetchInbox_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/emails/inbox", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("unseen_only"))
		assert.Equal(t, "50", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.InboxMessage{{Subject: "Cotação parafuso M8"}})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.FetchInbox(context.Background(), true, 50)

	require.NoError(t, err)
	require.Len(t, got, 1)
}

// ── Cash guardian ────────────────────────────────────────────────────────────

func TestPriceOpportunities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cash-guardian/price-opportunities", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("days"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.PriceOpportunity{{}})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.PriceOpportunities(context.Background(), 30)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
