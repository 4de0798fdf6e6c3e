package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/rs/cors"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/service"
	"motorent-backend/internal/storage"
)

// Server wires the REST surface to the service layer.
type Server struct {
	profiles      service.ProfileService
	motorcycles   service.MotorcycleService
	availability  service.AvailabilityService
	rentals       service.RentalService
	contracts     service.ContractService
	payments      service.PaymentService
	notifications service.NotificationService
	images        storage.ImageStore
}

func NewServer(
	profiles service.ProfileService,
	motorcycles service.MotorcycleService,
	availability service.AvailabilityService,
	rentals service.RentalService,
	contracts service.ContractService,
	payments service.PaymentService,
	notifications service.NotificationService,
	images storage.ImageStore,
) *Server {
	return &Server{
		profiles:      profiles,
		motorcycles:   motorcycles,
		availability:  availability,
		rentals:       rentals,
		contracts:     contracts,
		payments:      payments,
		notifications: notifications,
		images:        images,
	}
}

// Router builds the full handler chain. Marketplace browsing is public;
// everything that acts on behalf of a user requires a verified token.
func (s *Server) Router(auth *Authenticator, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	public := alice.New()
	authed := alice.New(auth.Middleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Public catalog.
	r.Handle("/v1/motorcycles", public.ThenFunc(s.handleListMotorcycles)).Methods(http.MethodGet)
	r.Handle("/v1/motorcycles/categories", public.ThenFunc(s.handleListCategories)).Methods(http.MethodGet)
	r.Handle("/v1/motorcycles/{id}", public.ThenFunc(s.handleGetMotorcycle)).Methods(http.MethodGet)
	r.Handle("/v1/motorcycles/{id}/availability", public.ThenFunc(s.handleCheckAvailability)).Methods(http.MethodGet)
	r.Handle("/v1/images/{key}", public.ThenFunc(s.handleImageDownload)).Methods(http.MethodGet)

	// Profiles.
	r.Handle("/v1/profiles", authed.ThenFunc(s.handleSyncProfile)).Methods(http.MethodPost, http.MethodPut)
	r.Handle("/v1/profiles/me", authed.ThenFunc(s.handleGetMyProfile)).Methods(http.MethodGet)

	// Owner fleet management.
	r.Handle("/v1/motorcycles", authed.ThenFunc(s.handleAddMotorcycle)).Methods(http.MethodPost)
	r.Handle("/v1/motorcycles/{id}", authed.ThenFunc(s.handleUpdateMotorcycle)).Methods(http.MethodPut)
	r.Handle("/v1/motorcycles/{id}", authed.ThenFunc(s.handleRemoveMotorcycle)).Methods(http.MethodDelete)
	r.Handle("/v1/my/motorcycles", authed.ThenFunc(s.handleListMyMotorcycles)).Methods(http.MethodGet)
	r.Handle("/v1/motorcycles/{id}/images", authed.ThenFunc(s.handleImageUploadURL)).Methods(http.MethodPost)
	r.Handle("/v1/uploads/{token}", authed.ThenFunc(s.handleImageUpload)).Methods(http.MethodPut)

	// Rental proposals.
	r.Handle("/v1/rentals", authed.ThenFunc(s.handleSubmitProposal)).Methods(http.MethodPost)
	r.Handle("/v1/rentals/sent", authed.ThenFunc(s.handleListSent)).Methods(http.MethodGet)
	r.Handle("/v1/rentals/received", authed.ThenFunc(s.handleListReceived)).Methods(http.MethodGet)
	r.Handle("/v1/rentals/{id}", authed.ThenFunc(s.handleGetProposal)).Methods(http.MethodGet)
	r.Handle("/v1/rentals/{id}/approve", authed.ThenFunc(s.handleApproveProposal)).Methods(http.MethodPost)
	r.Handle("/v1/rentals/{id}/reject", authed.ThenFunc(s.handleRejectProposal)).Methods(http.MethodPost)

	// Contracts.
	r.Handle("/v1/contracts/{id}", authed.ThenFunc(s.handleGetContract)).Methods(http.MethodGet)
	r.Handle("/v1/contracts/{id}/sign", authed.ThenFunc(s.handleSignContract)).Methods(http.MethodPost)
	r.Handle("/v1/contracts/{id}/cancel", authed.ThenFunc(s.handleCancelContract)).Methods(http.MethodPost)

	// Payments.
	r.Handle("/v1/payments", authed.ThenFunc(s.handleListPayments)).Methods(http.MethodGet)
	r.Handle("/v1/payments/{id}/paid", authed.ThenFunc(s.handleMarkPaid)).Methods(http.MethodPost)

	// Notifications.
	r.Handle("/v1/notifications", authed.ThenFunc(s.handleListNotifications)).Methods(http.MethodGet)
	r.Handle("/v1/notifications/{id}/read", authed.ThenFunc(s.handleMarkNotificationRead)).Methods(http.MethodPost)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	return alice.New(RequestID, AccessLog, corsHandler.Handler).Then(r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireProfile resolves the caller's application profile from the
// verified principal. A valid token without a profile means the client has
// not completed onboarding yet.
func (s *Server) requireProfile(w http.ResponseWriter, r *http.Request) (*domain.Profile, bool) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: errorDetail{
			Code:    "UNAUTHENTICATED",
			Message: "authentication required",
		}})
		return nil, false
	}

	profile, err := s.profiles.GetByIdentity(r.Context(), principal.UID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusForbidden, errorBody{Error: errorDetail{
				Code:    "PROFILE_REQUIRED",
				Message: "complete your profile before using this endpoint",
			}})
			return nil, false
		}
		writeError(w, r, err)
		return nil, false
	}
	return profile, true
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
