package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}

	page, pageSize := pagination(r)
	notes, total, err := s.notifications.GetNotifications(r.Context(), profile.ID, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, notes, page, pageSize, total)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}

	if err := s.notifications.MarkAsRead(r.Context(), profile.ID, mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
