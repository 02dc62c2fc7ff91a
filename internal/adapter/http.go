package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/rafaelssenna/sol-client/internal/config"
	"github.com/rafaelssenna/sol-client/internal/credentials"
	"github.com/rafaelssenna/sol-client/internal/logger"
)

// API is the HTTP implementation of every backend resource interface. All
// outbound traffic goes through the one resty client configured here, so
// credential injection and authorization-failure handling are uniform across
// resources.
type API struct {
	client    *resty.Client
	creds     credentials.Store
	log       *logger.Logger
	maxUpload int64

	mu        sync.RWMutex
	onExpired func()
}

// New constructs the API gateway. The resty client gets the normalised base
// URL, the configured request timeout, and two middlewares:
//
//   - before each request: the persisted credential (when present) is
//     attached as a bearer Authorization header, plus a fresh X-Request-Id;
//   - after each response: a 401 from any authenticated endpoint clears the
//     persisted credential and fires the session-expired callback, so the
//     application shell can return the user to the login screen. The error
//     itself still reaches the caller via [mapHTTPError].
//
// Returns an error if cfg.BaseURL cannot be parsed as a valid URL.
func New(cfg config.ClientAPI, uploads config.ClientUploads, creds credentials.Store, log *logger.Logger) (*API, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	a := &API{creds: creds, log: log, maxUpload: uploads.MaxUploadBytes}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())

		token, err := creds.Load()
		if err != nil {
			if !errors.Is(err, credentials.ErrNoCredential) {
				log.Warn().Err(err).Msg("credential load failed, sending unauthenticated request")
			}
			return nil
		}
		req.SetHeader("Authorization", "Bearer "+token)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() != http.StatusUnauthorized {
			return nil
		}
		if isAuthEndpoint(resp.Request.URL) {
			// A failed login/register is an inline form error, not an
			// expired session.
			return nil
		}

		if err := creds.Clear(); err != nil {
			log.Error().Err(err).Msg("clearing credential after 401")
		}
		log.Info().Str("url", resp.Request.URL).Msg("session expired, credential cleared")
		a.notifyExpired()
		return nil
	})

	a.client = client
	return a, nil
}

// OnSessionExpired registers the callback invoked whenever any request comes
// back 401. Re-registering replaces the previous callback. Invocation is
// idempotent from the caller's point of view: concurrent 401s may fire it
// more than once, and handlers must tolerate that.
func (a *API) OnSessionExpired(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onExpired = fn
}

func (a *API) notifyExpired() {
	a.mu.RLock()
	fn := a.onExpired
	a.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// isAuthEndpoint reports whether the request was one of the unauthenticated
// auth calls, for which a 401 means "wrong credentials", not "session
// expired".
func isAuthEndpoint(rawURL string) bool {
	return strings.HasSuffix(rawURL, "/api/auth/login") ||
		strings.HasSuffix(rawURL, "/api/auth/register")
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
