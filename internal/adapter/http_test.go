package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelssenna/sol-client/internal/config"
	"github.com/rafaelssenna/sol-client/internal/credentials"
	"github.com/rafaelssenna/sol-client/internal/logger"
	"github.com/rafaelssenna/sol-client/models"
)

// newTestAPI points an API at the test server, with an in-memory credential
// store the test can pre-load.
func newTestAPI(t *testing.T, serverURL string) (*API, *credentials.MemStore) {
	t.Helper()
	creds := credentials.NewMemStore()

	a, err := New(
		config.ClientAPI{BaseURL: serverURL, RequestTimeout: 5 * time.Second},
		config.ClientUploads{MaxUploadBytes: 1024},
		creds,
		logger.Nop(),
	)
	require.NoError(t, err)
	return a, creds
}

// ── Credential injection ─────────────────────────────────────────────────────

func TestBearerHeader_AttachedWhenStored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 1})
	}))
	defer srv.Close()

	a, creds := newTestAPI(t, srv.URL)
	require.NoError(t, creds.Save("tok-123"))

	_, err := a.Me(context.Background())
	require.NoError(t, err)
}

func TestBearerHeader_OmittedWhenEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 1})
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)

	_, err := a.Me(context.Background())
	require.NoError(t, err)
}

// ── Session expiry ───────────────────────────────────────────────────────────

func TestUnauthorized_ClearsCredentialAndFiresCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a, creds := newTestAPI(t, srv.URL)
	require.NoError(t, creds.Save("stale-token"))

	fired := 0
	a.OnSessionExpired(func() { fired++ })

	_, err := a.Me(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, fired)

	_, err = creds.Load()
	assert.ErrorIs(t, err, credentials.ErrNoCredential)
}

func TestUnauthorized_LoginDoesNotFireCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.APIError{Detail: "wrong credentials"})
	}))
	defer srv.Close()

	a, creds := newTestAPI(t, srv.URL)
	require.NoError(t, creds.Save("some-token"))

	fired := 0
	a.OnSessionExpired(func() { fired++ })

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 0, fired)

	// A failed login must not destroy an unrelated stored credential.
	tok, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "some-token", tok)
}

func TestOnSessionExpired_NilUnregisters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	a.OnSessionExpired(func() { t.Fatal("callback fired after unregister") })
	a.OnSessionExpired(nil)

	_, err := a.Me(context.Background())
	require.Error(t, err)
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError_Sentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(models.APIError{Detail: "boom"})
			}))
			defer srv.Close()

			a, _ := newTestAPI(t, srv.URL)
			_, err := a.GetItem(context.Background(), 7)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestErrorDetail_FallsBackToRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("plain text failure"))
	}))
	defer srv.Close()

	a, _ := newTestAPI(t, srv.URL)
	_, err := a.GetItem(context.Background(), 7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "plain text failure")
}

// ── Base URL normalisation ───────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain host gets https", "api.example.com", "https://api.example.com", false},
		{"trailing slash trimmed", "http://localhost:8000/", "http://localhost:8000", false},
		{"scheme kept", "http://10.0.0.5:8000", "http://10.0.0.5:8000", false},
		{"empty rejected", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
