package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelssenna/sol-client/models"
)

func stringAttachment(name, content string) FileAttachment {
	return FileAttachment{
		Name:   name,
		Size:   int64(len(content)),
		Reader: io.NopCloser(strings.NewReader(content)),
	}
}

// ── ListItems ────────────────────────────────────────────────────────────────

func TestListItems_QueryParams(t *testing.T) {
	want := models.PaginatedItems{
		Items:   []models.Item{{ID: 1, Name: "Aço inox 304"}},
		Total:   1,
		Page:    2,
		PerPage: 20,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/items", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "20", q.Get("per_page"))
		assert.Equal(t, "quoting", q.Get("status"))
		assert.Equal(t, "inox", q.Get("search"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.ListItems(context.Background(), models.ItemListParams{
		Page:    2,
		PerPage: 20,
		Status:  models.ItemStatusQuoting,
		Search:  "inox",
	})

	require.NoError(t, err)
	assert.Equal(t, want.Total, got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Aço inox 304", got.Items[0].Name)
}

func TestListItems_DefaultsOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("page"))
		assert.False(t, q.Has("per_page"))
		assert.False(t, q.Has("status"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PaginatedItems{})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	_, err := a.ListItems(context.Background(), models.ItemListParams{})
	require.NoError(t, err)
}

// ── Uploads ──────────────────────────────────────────────────────────────────

func TestCreateItemFromPhoto_MultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/items/from-photo", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "5", r.FormValue("quantity"))
		assert.Equal(t, "kg", r.FormValue("unit"))
		assert.Equal(t, "urgent, same spec as last order", r.FormValue("notes"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "part.jpg", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake-jpeg-bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Item{ID: 42, Name: "Identified part"})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.CreateItemFromPhoto(context.Background(), stringAttachment("part.jpg", "fake-jpeg-bytes"), models.ItemUploadContext{
		Quantity: 5,
		Unit:     "kg",
		Notes:    "urgent, same spec as last order",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
}

func TestCreateItemFromFile_OversizedRejectedLocally(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)

	// The test API caps uploads at 1024 bytes.
	att := FileAttachment{
		Name:   "huge.xlsx",
		Size:   2048,
		Reader: io.NopCloser(strings.NewReader("...")),
	}

	_, err := a.CreateItemFromFile(context.Background(), att, models.ItemUploadContext{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, int32(0), requests.Load(), "oversized upload must never reach the network")
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestUpdateItem_SendsOnlyChangedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/items/9", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Parafuso M8", body["name"])
		assert.NotContains(t, body, "category")
		assert.NotContains(t, body, "quantity")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Item{ID: 9, Name: "Parafuso M8"})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	name := "Parafuso M8"
	got, err := a.UpdateItem(context.Background(), 9, models.UpdateItemRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Parafuso M8", got.Name)
}

func TestDeleteItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/items/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	require.NoError(t, a.DeleteItem(context.Background(), 3))
}

func TestStartQuotation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/items/5/start-quotation", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Item{ID: 5, Status: models.ItemStatusQuoting})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	got, err := a.StartQuotation(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusQuoting, got.Status)
}
