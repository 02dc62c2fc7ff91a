package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelssenna/sol-client/models"
)

func TestListSuppliers_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/suppliers", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "active", q.Get("status"))
		assert.Equal(t, "Joinville", q.Get("city"))
		assert.Equal(t, "SC", q.Get("state"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PaginatedSuppliers{
			Items: []models.Supplier{{ID: 4, Name: "Metalúrgica Sul"}},
			Total: 1,
		})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.ListSuppliers(context.Background(), models.SupplierListParams{
		Status: models.SupplierStatusActive,
		City:   "Joinville",
		State:  "SC",
	})

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Metalúrgica Sul", got.Items[0].Name)
}

func TestCreateSupplier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/suppliers", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Metalúrgica Sul", body["name"])
		assert.Equal(t, "12.345.678/0001-90", body["cnpj"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Supplier{ID: 4, Name: "Metalúrgica Sul"})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.CreateSupplier(context.Background(), models.CreateSupplierRequest{
		Name: "Metalúrgica Sul",
		CNPJ: "12.345.678/0001-90",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
}

func TestSupplierStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/suppliers/4/stats", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SupplierStats{SupplierID: 4, TotalQuotations: 12})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.SupplierStats(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, 12, got.TotalQuotations)
}

func TestDeleteSupplier_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.APIError{Detail: "supplier not found"})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	err := a.DeleteSupplier(context.Background(), 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
