package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/domain"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.NewValidationError("start_date", "bad date"), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"conflict", &domain.ConflictError{MotorcycleID: "m1"}, http.StatusConflict, "DATE_CONFLICT"},
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", domain.ErrUnauthorized, http.StatusForbidden, "FORBIDDEN"},
		{"timeout", domain.ErrTimeout, http.StatusGatewayTimeout, "TIMEOUT"},
		{"store down", domain.ErrDataUnavailable, http.StatusServiceUnavailable, "DATA_UNAVAILABLE"},
		{"unknown", assert.AnError, http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/test", nil)

			writeError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body errorBody
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestWriteError_ConflictIncludesPeriods(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/rentals", nil)

	writeError(rec, req, &domain.ConflictError{
		MotorcycleID: "m1",
		Conflicts: []domain.RentalPeriod{
			{RentalID: "r1", StartDate: "2025-06-15", EndDate: "2025-06-20"},
		},
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body struct {
		Error struct {
			Conflicts []domain.RentalPeriod `json:"conflicts"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Error.Conflicts, 1)
	assert.Equal(t, "r1", body.Error.Conflicts[0].RentalID)
}

func TestPagination_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/motorcycles", nil)
	page, pageSize := pagination(req)
	assert.Equal(t, int32(1), page)
	assert.Equal(t, int32(20), pageSize)

	req = httptest.NewRequest(http.MethodGet, "/v1/motorcycles?page=3&page_size=50", nil)
	page, pageSize = pagination(req)
	assert.Equal(t, int32(3), page)
	assert.Equal(t, int32(50), pageSize)

	// Out-of-range values fall back to defaults.
	req = httptest.NewRequest(http.MethodGet, "/v1/motorcycles?page=-1&page_size=9999", nil)
	page, pageSize = pagination(req)
	assert.Equal(t, int32(1), page)
	assert.Equal(t, int32(20), pageSize)
}

func TestExtractBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/me", nil)
	_, ok := extractBearer(req)
	assert.False(t, ok)

	req.Header.Set("Authorization", "Bearer abc123")
	token, ok := extractBearer(req)
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)

	req.Header.Set("Authorization", "Basic abc123")
	_, ok = extractBearer(req)
	assert.False(t, ok)
}
