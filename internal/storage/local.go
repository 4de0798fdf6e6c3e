package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// LocalImageStore keeps motorcycle photos on the server filesystem and
// hands out URLs that point back at the API's own upload and download
// endpoints.
type LocalImageStore struct {
	baseURL   string
	imagesDir string
}

func NewLocalImageStore(baseURL, uploadsDir string) (*LocalImageStore, error) {
	imagesDir := filepath.Join(uploadsDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalImageStore{baseURL: baseURL, imagesDir: imagesDir}, nil
}

func (s *LocalImageStore) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/v1/uploads/%s?key=%s", s.baseURL, encodeKey(key), url.QueryEscape(key)), nil
}

func (s *LocalImageStore) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/v1/images/%s?key=%s", s.baseURL, encodeKey(key), url.QueryEscape(key)), nil
}

// VerifyToken checks that the token in the URL path was derived from the
// key, so a caller cannot write or read an arbitrary key by swapping the
// query parameter on an issued URL.
func (s *LocalImageStore) VerifyToken(token, key string) bool {
	return token != "" && token == encodeKey(key)
}

func (s *LocalImageStore) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(filepath.Join(s.imagesDir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalImageStore) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.imagesDir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalImageStore) SaveFile(key string, reader io.Reader) error {
	fullPath := filepath.Join(s.imagesDir, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalImageStore) ReadFile(key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.imagesDir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func encodeKey(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:16])
}
