package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"motorent-backend/internal/domain"
)

func (s *Server) handleListMotorcycles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := domain.MotorcycleFilters{
		City:     q.Get("city"),
		Brand:    q.Get("brand"),
		Category: q.Get("category"),
	}
	if v, err := strconv.ParseInt(q.Get("min_price_cents"), 10, 64); err == nil {
		filters.MinPriceCents = v
	}
	if v, err := strconv.ParseInt(q.Get("max_price_cents"), 10, 64); err == nil {
		filters.MaxPriceCents = v
	}

	page, pageSize := pagination(r)
	motos, total, err := s.motorcycles.ListMotorcycles(r.Context(), filters, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, motos, page, pageSize, total)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.motorcycles.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (s *Server) handleGetMotorcycle(w http.ResponseWriter, r *http.Request) {
	moto, err := s.motorcycles.GetMotorcycle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, moto)
}

func (s *Server) handleCheckAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := s.availability.Check(r.Context(), mux.Vars(r)["id"], q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAddMotorcycle(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}

	var moto domain.Motorcycle
	if err := decodeBody(r, &moto); err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.motorcycles.AddMotorcycle(r.Context(), profile.ID, &moto); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, moto)
}

func (s *Server) handleUpdateMotorcycle(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}

	var moto domain.Motorcycle
	if err := decodeBody(r, &moto); err != nil {
		writeError(w, r, err)
		return
	}
	moto.ID = mux.Vars(r)["id"]

	if err := s.motorcycles.UpdateMotorcycle(r.Context(), profile.ID, &moto); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, moto)
}

func (s *Server) handleRemoveMotorcycle(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}

	if err := s.motorcycles.RemoveMotorcycle(r.Context(), profile.ID, mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListMyMotorcycles(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}

	page, pageSize := pagination(r)
	motos, total, err := s.motorcycles.ListMyMotorcycles(r.Context(), profile.ID, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, motos, page, pageSize, total)
}

// handleImageUploadURL issues an upload URL for a new motorcycle photo.
// Only the owner of the motorcycle may request one.
func (s *Server) handleImageUploadURL(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.requireProfile(w, r)
	if !ok {
		return
	}

	motoID := mux.Vars(r)["id"]
	moto, err := s.motorcycles.GetMotorcycle(r.Context(), motoID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if moto.OwnerID != profile.ID {
		writeError(w, r, domain.ErrUnauthorized)
		return
	}

	var req struct {
		ContentType string `json:"content_type"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	ext, ok := imageExtension(req.ContentType)
	if !ok {
		writeError(w, r, domain.NewValidationError("content_type", "only jpeg, png and webp images are accepted"))
		return
	}

	key := fmt.Sprintf("motorcycles/%s/%s%s", motoID, uuid.NewString(), ext)
	uploadURL, err := s.images.GenerateUploadURL(r.Context(), key, req.ContentType, 15*time.Minute)
	if err != nil {
		writeError(w, r, err)
		return
	}
	downloadURL, err := s.images.GenerateDownloadURL(r.Context(), key, 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"upload_url": uploadURL,
		"image_url":  downloadURL,
		"key":        key,
	})
}

func (s *Server) handleImageUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" || strings.Contains(key, "..") {
		writeError(w, r, domain.NewValidationError("key", "missing or invalid storage key"))
		return
	}
	if !s.images.VerifyToken(mux.Vars(r)["token"], key) {
		writeError(w, r, domain.ErrUnauthorized)
		return
	}
	if _, ok := imageExtension(r.Header.Get("Content-Type")); !ok {
		writeError(w, r, domain.NewValidationError("content_type", "only jpeg, png and webp images are accepted"))
		return
	}

	if err := s.images.SaveFile(key, r.Body); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleImageDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" || strings.Contains(key, "..") {
		writeError(w, r, domain.NewValidationError("key", "missing or invalid storage key"))
		return
	}
	if !s.images.VerifyToken(mux.Vars(r)["key"], key) {
		writeError(w, r, domain.ErrNotFound)
		return
	}

	file, err := s.images.ReadFile(key)
	if err != nil {
		writeError(w, r, domain.ErrNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}

func imageExtension(contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg":
		return ".jpg", true
	case "image/png":
		return ".png", true
	case "image/webp":
		return ".webp", true
	}
	return "", false
}
