package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type stubImageStore struct {
	tokenValid bool
	savedKey   string
}

func (s *stubImageStore) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	return "", nil
}

func (s *stubImageStore) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return "", nil
}

func (s *stubImageStore) VerifyToken(token, key string) bool {
	return s.tokenValid
}

func (s *stubImageStore) FileExists(ctx context.Context, key string) (bool, int64, error) {
	return false, 0, nil
}

func (s *stubImageStore) DeleteFile(ctx context.Context, key string) error {
	return nil
}

func (s *stubImageStore) SaveFile(key string, reader io.Reader) error {
	s.savedKey = key
	return nil
}

func (s *stubImageStore) ReadFile(key string) (io.ReadCloser, error) {
	return nil, os.ErrNotExist
}

func uploadRequest(token, key string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/v1/uploads/"+token+"?key="+key, strings.NewReader("image bytes"))
	req.Header.Set("Content-Type", "image/jpeg")
	return mux.SetURLVars(req, map[string]string{"token": token})
}

func TestHandleImageUpload_RejectsMismatchedToken(t *testing.T) {
	store := &stubImageStore{tokenValid: false}
	srv := &Server{images: store}

	rec := httptest.NewRecorder()
	srv.handleImageUpload(rec, uploadRequest("deadbeef", "motorcycles/m1/a.jpg"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, store.savedKey)
}

func TestHandleImageUpload_SavesWithValidToken(t *testing.T) {
	store := &stubImageStore{tokenValid: true}
	srv := &Server{images: store}

	rec := httptest.NewRecorder()
	srv.handleImageUpload(rec, uploadRequest("deadbeef", "motorcycles/m1/a.jpg"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "motorcycles/m1/a.jpg", store.savedKey)
}

func TestHandleImageDownload_RejectsMismatchedToken(t *testing.T) {
	store := &stubImageStore{tokenValid: false}
	srv := &Server{images: store}

	req := httptest.NewRequest(http.MethodGet, "/v1/images/deadbeef?key=motorcycles/m1/a.jpg", nil)
	req = mux.SetURLVars(req, map[string]string{"key": "deadbeef"})
	rec := httptest.NewRecorder()
	srv.handleImageDownload(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
