package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rafaelssenna/sol-client/internal/adapter"
	"github.com/rafaelssenna/sol-client/internal/credentials"
	"github.com/rafaelssenna/sol-client/internal/logger"
	"github.com/rafaelssenna/sol-client/internal/mock"
	"github.com/rafaelssenna/sol-client/models"
)

func newTestManager(t *testing.T, ctrl *gomock.Controller) (*Manager, *mock.MockAuthAPI, *credentials.MemStore) {
	t.Helper()
	auth := mock.NewMockAuthAPI(ctrl)
	creds := credentials.NewMemStore()
	return NewManager(auth, creds, logger.Nop()), auth, creds
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, auth, creds := newTestManager(t, ctrl)
	ctx := context.Background()

	want := models.User{ID: 1, Email: "ana@empresa.com", Name: "Ana"}
	auth.EXPECT().
		Login(ctx, models.LoginRequest{Email: "ana@empresa.com", Password: "s3cret"}).
		Return(models.AuthResponse{AccessToken: "tok-abc", User: want}, nil)

	got, err := m.Login(ctx, "ana@empresa.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, want, got)

	snap := m.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.True(t, snap.IsAuthenticated())
	assert.Equal(t, "tok-abc", snap.Token)
	assert.Equal(t, want, snap.User)

	tok, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok)
}

func TestLogin_BackendRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, auth, creds := newTestManager(t, ctrl)
	ctx := context.Background()

	auth.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: wrong credentials", adapter.ErrUnauthorized))

	_, err := m.Login(ctx, "ana@empresa.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)

	_, err = creds.Load()
	assert.ErrorIs(t, err, credentials.ErrNoCredential)
}

func TestLogin_PersistFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockAuthAPI(ctrl)
	creds := mock.NewMockStore(ctrl)
	m := NewManager(auth, creds, logger.Nop())
	ctx := context.Background()

	auth.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.AuthResponse{AccessToken: "tok", User: models.User{ID: 1}}, nil)
	creds.EXPECT().Save("tok").Return(errors.New("disk full"))

	_, err := m.Login(ctx, "ana@empresa.com", "s3cret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist credential")
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
	assert.Empty(t, m.Snapshot().Token)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_LogsStraightIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, auth, creds := newTestManager(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Email: "novo@empresa.com", Password: "s3cret", Name: "Novo"}
	want := models.User{ID: 2, Email: req.Email, Name: req.Name}
	auth.EXPECT().
		Register(ctx, req).
		Return(models.AuthResponse{AccessToken: "tok-new", User: want}, nil)

	got, err := m.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, m.Snapshot().IsAuthenticated())

	tok, err := creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-new", tok)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_ClearsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, auth, creds := newTestManager(t, ctrl)
	ctx := context.Background()

	auth.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.AuthResponse{AccessToken: "tok", User: models.User{ID: 1}}, nil)
	_, err := m.Login(ctx, "ana@empresa.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, m.Logout())

	snap := m.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Empty(t, snap.Token)
	assert.Empty(t, snap.User)

	_, err = creds.Load()
	assert.ErrorIs(t, err, credentials.ErrNoCredential)
}

// ── CheckAuth ────────────────────────────────────────────────────────────────

func TestCheckAuth_NoCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestManager(t, ctrl)

	require.NoError(t, m.CheckAuth(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
}

func TestCheckAuth_RestoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, auth, creds := newTestManager(t, ctrl)
	ctx := context.Background()
	require.NoError(t, creds.Save("stored-token"))

	want := models.User{ID: 3, Email: "ana@empresa.com"}
	auth.EXPECT().Me(ctx).Return(want, nil)

	require.NoError(t, m.CheckAuth(ctx))

	snap := m.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.Equal(t, want, snap.User)
	assert.Equal(t, "stored-token", snap.Token)
}

func TestCheckAuth_StaleCredentialIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, auth, creds := newTestManager(t, ctrl)
	ctx := context.Background()
	require.NoError(t, creds.Save("stale-token"))

	auth.EXPECT().
		Me(ctx).
		Return(models.User{}, fmt.Errorf("%w: token expired", adapter.ErrUnauthorized))

	require.NoError(t, m.CheckAuth(ctx))
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)

	_, err := creds.Load()
	assert.ErrorIs(t, err, credentials.ErrNoCredential)
}

func TestCheckAuth_BackendUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, auth, creds := newTestManager(t, ctrl)
	ctx := context.Background()
	require.NoError(t, creds.Save("stored-token"))

	auth.EXPECT().Me(ctx).Return(models.User{}, errors.New("connection refused"))

	err := m.CheckAuth(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "restore session")
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)

	_, err = creds.Load()
	assert.ErrorIs(t, err, credentials.ErrNoCredential)
}

// ── Expiry callback ──────────────────────────────────────────────────────────

func TestHandleSessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, auth, _ := newTestManager(t, ctrl)
	ctx := context.Background()

	auth.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.AuthResponse{AccessToken: "tok", User: models.User{ID: 1}}, nil)
	_, err := m.Login(ctx, "ana@empresa.com", "s3cret")
	require.NoError(t, err)

	m.HandleSessionExpired()

	snap := m.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.False(t, snap.IsAuthenticated())
	assert.Empty(t, snap.Token)
}
