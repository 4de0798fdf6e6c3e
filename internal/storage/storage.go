package storage

import (
	"context"
	"io"
	"time"
)

// ImageStore is the backend for motorcycle photos. The local implementation
// serves development; a cloud bucket implementation can replace it without
// touching the handlers.
type ImageStore interface {
	// GenerateUploadURL returns a URL the client PUTs the image bytes to.
	GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a URL the image can be fetched from.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// VerifyToken reports whether a URL token was issued for the given key.
	VerifyToken(token, key string) bool

	FileExists(ctx context.Context, key string) (bool, int64, error)
	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile back the local upload and download endpoints.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}

// Config selects and parameterizes the image store backend.
type Config struct {
	Type      string `yaml:"type"`       // "local"
	LocalDir  string `yaml:"local_dir"`  // upload directory for the local backend
	BaseURL   string `yaml:"base_url"`   // public server URL used in generated links
	URLExpiry string `yaml:"url_expiry"` // e.g. "15m"
}
