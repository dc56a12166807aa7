// Package storage persists uploaded assets (profile photos, project images,
// blog covers) and hands back the public URL they are served under.
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// Store saves and removes uploaded assets
type Store interface {
	// Save writes the file and returns its public URL.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Delete removes the asset behind a URL previously returned by Save.
	Delete(ctx context.Context, url string) error
}
