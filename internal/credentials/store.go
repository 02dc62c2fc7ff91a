// Package credentials owns the persisted bearer credential: the single piece
// of client-side state that survives process restarts.
//
// The [Store] interface is the persistence port; the transport layer reads it
// before every request and clears it on authorization failure, the session
// manager writes it on login and clears it on logout. [FileStore] is the
// production implementation, [MemStore] the test double.
package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoCredential is returned by [Store.Load] when nothing is persisted.
var ErrNoCredential = errors.New("no persisted credential")

//go:generate mockgen -source=store.go -destination=../mock/credentials_mock.go -package=mock

// Store persists the opaque bearer credential between runs. Implementations
// must make Clear idempotent: clearing an absent credential is not an error,
// because a 401 handler and an explicit logout may race.
type Store interface {
	// Load returns the persisted credential, or ErrNoCredential when none
	// is stored.
	Load() (string, error)

	// Save persists the credential, replacing any previous value.
	Save(token string) error

	// Clear removes the persisted credential. Safe to call when nothing is
	// stored.
	Clear() error
}

// FileStore keeps the credential in a single file. The token is an opaque
// string minted by the backend; the file is its only durable copy.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by the file at path. The parent
// directory is created lazily on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements [Store].
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoCredential
	}
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoCredential
	}
	return token, nil
}

// Save implements [Store]. The file is written with 0600 permissions since
// the token grants full account access.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(strings.TrimSpace(token)), 0600)
}

// Clear implements [Store].
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
