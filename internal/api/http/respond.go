package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
)

// errorBody is the wire shape of every error response. Codes are stable
// strings clients can switch on; messages are for humans and may change.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Field     string      `json:"field,omitempty"`
	Conflicts interface{} `json:"conflicts,omitempty"`
}

type pageMeta struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
	Total    int32 `json:"total"`
}

type pagedResponse struct {
	Items interface{} `json:"items"`
	Meta  pageMeta    `json:"meta"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response body", "error", err)
		}
	}
}

func writePage(w http.ResponseWriter, items interface{}, page, pageSize, total int32) {
	writeJSON(w, http.StatusOK, pagedResponse{
		Items: items,
		Meta:  pageMeta{Page: page, PageSize: pageSize, Total: total},
	})
}

// writeError maps domain errors onto HTTP statuses. Internal error text is
// never forwarded to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{
			Code:    "VALIDATION_FAILED",
			Message: validation.Message,
			Field:   validation.Field,
		}})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, errorBody{Error: errorDetail{
			Code:      "DATE_CONFLICT",
			Message:   "the requested dates overlap an approved rental",
			Conflicts: conflict.Conflicts,
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: errorDetail{
			Code:    "NOT_FOUND",
			Message: "resource not found",
		}})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, errorBody{Error: errorDetail{
			Code:    "FORBIDDEN",
			Message: "you do not have access to this resource",
		}})
	case errors.Is(err, domain.ErrTimeout):
		logger.ErrorContext(r.Context(), "Request timed out", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeJSON(w, http.StatusGatewayTimeout, errorBody{Error: errorDetail{
			Code:    "TIMEOUT",
			Message: "the operation timed out, please retry",
		}})
	case errors.Is(err, domain.ErrDataUnavailable):
		logger.ErrorContext(r.Context(), "Data store unavailable", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: errorDetail{
			Code:    "DATA_UNAVAILABLE",
			Message: "the service is temporarily unavailable, please retry",
		}})
	default:
		logger.ErrorContext(r.Context(), "Unhandled error", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{
			Code:    "INTERNAL",
			Message: "internal server error",
		}})
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid request body")
	}
	return nil
}
