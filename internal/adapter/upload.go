package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileAttachment is a file destined for a multipart upload.
type FileAttachment struct {
	Name   string
	Size   int64
	Reader io.ReadCloser
}

// OpenAttachment stats the file at path and wraps it for upload. The
// returned attachment holds an open file handle; the adapter closes it once
// the request has been sent (or rejected).
func OpenAttachment(path string) (FileAttachment, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileAttachment{}, fmt.Errorf("open attachment: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return FileAttachment{}, fmt.Errorf("stat attachment: %w", err)
	}

	return FileAttachment{
		Name:   filepath.Base(path),
		Size:   info.Size(),
		Reader: f,
	}, nil
}

// Close releases the underlying file handle.
func (att FileAttachment) Close() error {
	if att.Reader == nil {
		return nil
	}
	return att.Reader.Close()
}

// validateAttachment rejects an oversized file locally, before any request
// is issued.
func (a *API) validateAttachment(att FileAttachment) error {
	if a.maxUpload > 0 && att.Size > a.maxUpload {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, att.Size, a.maxUpload)
	}
	return nil
}
