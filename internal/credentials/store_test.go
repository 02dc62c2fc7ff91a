package credentials

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── FileStore ────────────────────────────────────────────────────────────────

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")
	s := NewFileStore(path)

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoCredential)

	require.NoError(t, s.Save("tok-abc"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_SaveReplaces(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, s.Save("old"))
	require.NoError(t, s.Save("new"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestFileStore_LoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  tok-abc\n"), 0600))

	got, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", got)
}

func TestFileStore_EmptyFileIsNoCredential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0600))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, s.Clear())

	require.NoError(t, s.Save("tok"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoCredential)
}

// ── TokenClaims ──────────────────────────────────────────────────────────────

// buildJWT assembles an unsigned-but-well-formed token; TokenClaims never
// checks the signature.
func buildJWT(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + ".c2lnbmF0dXJl"
}

func TestTokenClaims_DecodesRegisteredClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	iat := time.Now().Truncate(time.Second)
	token := buildJWT(t, map[string]any{
		"sub": "42",
		"exp": exp.Unix(),
		"iat": iat.Unix(),
	})

	claims, err := TokenClaims(token)

	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Equal(exp))
	require.NotNil(t, claims.IssuedAt)
	assert.True(t, claims.IssuedAt.Equal(iat))
}

func TestTokenClaims_MissingOptionalClaims(t *testing.T) {
	claims, err := TokenClaims(buildJWT(t, map[string]any{"sub": "7"}))

	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Nil(t, claims.ExpiresAt)
	assert.Nil(t, claims.IssuedAt)
}

func TestTokenClaims_Garbage(t *testing.T) {
	_, err := TokenClaims("not-a-jwt")
	require.Error(t, err)
}
