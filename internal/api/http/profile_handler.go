package http

import (
	"net/http"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
)

func (s *Server) handleSyncProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: errorDetail{
			Code:    "UNAUTHENTICATED",
			Message: "authentication required",
		}})
		return
	}

	var req struct {
		FullName    string `json:"full_name"`
		Phone       string `json:"phone"`
		Role        string `json:"role"`
		CompanyName string `json:"company_name"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := s.profiles.SyncProfile(r.Context(), principal.UID, principal.Email, service.ProfileInput{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Role:        domain.ProfileRole(req.Role),
		CompanyName: req.CompanyName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
