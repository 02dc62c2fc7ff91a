package tui

import (
	"errors"
	"strings"

	"github.com/rafaelssenna/sol-client/internal/adapter"
)

// humanizeError turns transport failures into a short message the overlay
// can show. Backend errors already carry the detail text from the error
// envelope, so they pass through.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrFileTooLarge) {
		return "File is too large to upload"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	return err.Error()
}
