package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"motorent-backend/internal/logger"
	"motorent-backend/internal/security"
)

// RequestID tags every request with a correlation id, reusing the client's
// X-Request-ID when it sends one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}

// AccessLog logs one line per request after it completes.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", RequestIDFromContext(r.Context()),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Authenticator verifies bearer tokens with the identity provider and puts
// the resulting principal on the context. Requests without a valid token
// are rejected before reaching any handler.
type Authenticator struct {
	verifier security.TokenVerifier
}

func NewAuthenticator(verifier security.TokenVerifier) *Authenticator {
	return &Authenticator{verifier: verifier}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearer(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: errorDetail{
				Code:    "UNAUTHENTICATED",
				Message: "authorization token is not provided",
			}})
			return
		}

		principal, err := a.verifier.Verify(r.Context(), token)
		if err != nil {
			code := "INVALID_TOKEN"
			if err == security.ErrExpiredToken {
				code = "EXPIRED_TOKEN"
			}
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: errorDetail{
				Code:    code,
				Message: "invalid or expired token",
			}})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func extractBearer(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:], true
	}
	return "", false
}
