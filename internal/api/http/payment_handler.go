package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
)

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}

	asOwner := profile.Role == domain.ProfileRoleOwner
	page, pageSize := pagination(r)
	payments, total, err := s.payments.ListPayments(r.Context(), profile.ID, asOwner, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, payments, page, pageSize, total)
}

func (s *Server) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}

	payment, err := s.payments.MarkPaid(r.Context(), profile.ID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
