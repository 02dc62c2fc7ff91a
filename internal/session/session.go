// Package session owns the authentication lifecycle of one client run:
// restoring a persisted credential at startup, logging in and out, and
// reacting to the backend invalidating the session mid-flight.
//
// The manager never inspects token expiry locally. The backend is the only
// authority: a restore attempt always goes to the wire, and a 401 at any
// point flips the state regardless of what the token claims say.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rafaelssenna/sol-client/internal/adapter"
	"github.com/rafaelssenna/sol-client/internal/credentials"
	"github.com/rafaelssenna/sol-client/internal/logger"
	"github.com/rafaelssenna/sol-client/models"
)

// State is the session lifecycle phase.
type State int

const (
	// StateUninitialized means CheckAuth has not run yet.
	StateUninitialized State = iota
	// StateChecking means a restore attempt is on the wire.
	StateChecking
	// StateAuthenticated means the backend has accepted the credential.
	StateAuthenticated
	// StateUnauthenticated means there is no usable credential.
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "uninitialized"
	}
}

// Snapshot is a point-in-time copy of the session for rendering. User and
// Token are zero values unless State is StateAuthenticated. Token is exposed
// only so the settings screen can show whose credential this is and when it
// expires.
type Snapshot struct {
	State State
	User  models.User
	Token string
}

// IsAuthenticated reports whether the snapshot represents a live session.
func (s Snapshot) IsAuthenticated() bool {
	return s.State == StateAuthenticated
}

// Manager tracks who is logged in. All methods are safe for concurrent use;
// the TUI reads snapshots while the transport layer's expiry callback may
// fire from another goroutine.
type Manager struct {
	auth  adapter.AuthAPI
	creds credentials.Store
	log   *logger.Logger

	mu    sync.RWMutex
	state State
	user  models.User
	token string
}

// NewManager wires the manager to the auth endpoints and the credential
// store. The returned manager starts in StateUninitialized; run CheckAuth
// before trusting a snapshot.
func NewManager(auth adapter.AuthAPI, creds credentials.Store, log *logger.Logger) *Manager {
	return &Manager{auth: auth, creds: creds, log: log, state: StateUninitialized}
}

// Snapshot returns the current state and user.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{State: m.state}
	if m.state == StateAuthenticated {
		snap.User = m.user
		snap.Token = m.token
	}
	return snap
}

// Login authenticates with the backend and persists the returned credential.
// On any failure the session is left unauthenticated with no stored
// credential, so a half-applied login cannot survive a restart.
func (m *Manager) Login(ctx context.Context, email, password string) (models.User, error) {
	out, err := m.auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		m.setUnauthenticated()
		return models.User{}, err
	}

	if err = m.creds.Save(out.AccessToken); err != nil {
		// The backend accepted us but the credential cannot be kept; treat
		// it as a failed login rather than an authenticated session that
		// silently vanishes on restart.
		m.setUnauthenticated()
		return models.User{}, fmt.Errorf("persist credential: %w", err)
	}

	m.setAuthenticated(out.User, out.AccessToken)
	m.log.Info().Str("email", out.User.Email).Msg("logged in")
	return out.User, nil
}

// Register creates an account and, because the backend logs new users
// straight in, establishes a session exactly like Login.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	out, err := m.auth.Register(ctx, req)
	if err != nil {
		m.setUnauthenticated()
		return models.User{}, err
	}

	if err = m.creds.Save(out.AccessToken); err != nil {
		m.setUnauthenticated()
		return models.User{}, fmt.Errorf("persist credential: %w", err)
	}

	m.setAuthenticated(out.User, out.AccessToken)
	m.log.Info().Str("email", out.User.Email).Msg("registered and logged in")
	return out.User, nil
}

// Logout clears the persisted credential and resets the session. It never
// fails on an already-absent credential.
func (m *Manager) Logout() error {
	err := m.creds.Clear()
	m.setUnauthenticated()
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	m.log.Info().Msg("logged out")
	return nil
}

// CheckAuth restores the session from the persisted credential by asking the
// backend who the token belongs to. Without a stored credential it settles
// on StateUnauthenticated without touching the network. A rejected or
// unreachable backend ends unauthenticated with the stored credential
// removed; the distinction is only in the returned error, which is nil when
// there was simply nothing to restore or the credential was stale.
func (m *Manager) CheckAuth(ctx context.Context) error {
	token, err := m.creds.Load()
	if err != nil {
		if errors.Is(err, credentials.ErrNoCredential) {
			m.setUnauthenticated()
			return nil
		}
		m.setUnauthenticated()
		return fmt.Errorf("load credential: %w", err)
	}

	m.setState(StateChecking)

	user, err := m.auth.Me(ctx)
	if err != nil {
		// Any credential that failed verification is discarded. On 401 the
		// transport layer has already cleared it; Clear is idempotent.
		if clearErr := m.creds.Clear(); clearErr != nil {
			m.log.Warn().Err(clearErr).Msg("failed to clear credential")
		}
		m.setUnauthenticated()
		if errors.Is(err, adapter.ErrUnauthorized) {
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	m.setAuthenticated(user, token)
	m.log.Info().Str("email", user.Email).Msg("session restored")
	return nil
}

// HandleSessionExpired is the transport layer's 401 callback. The credential
// is already cleared by the time this runs; the manager only has to drop its
// in-memory view.
func (m *Manager) HandleSessionExpired() {
	m.setUnauthenticated()
	m.log.Info().Msg("session expired")
}

func (m *Manager) setAuthenticated(user models.User, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateAuthenticated
	m.user = user
	m.token = token
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateUnauthenticated
	m.user = models.User{}
	m.token = ""
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}
