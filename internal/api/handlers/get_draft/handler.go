package get_draft

import (
	"errors"
	"net/http"

	"github.com/lumib/salon-booking-service/internal/api/handlers"
	"github.com/lumib/salon-booking-service/internal/api/middleware"
	"github.com/lumib/salon-booking-service/internal/service/drafts"
)

const (
	msgMissingSession = "session ID is required"
	msgInvalidInput   = "invalid request parameters"
)

type Handler struct {
	service DraftsService
	logger  Logger
}

func NewHandler(service DraftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/session/draft
// Query params: serviceId (optional, pre-selects the service for deep links)
//
// Note that a seeded serviceId is written into the session draft, so this
// GET is not read-only. Deep links land here as plain navigations, which
// is why seeding rides on the read instead of the PATCH action set.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	if sessionID == "" {
		h.logger.Warn("GET /session/draft - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	// A seeded service id pre-selects the service; unknown ids are ignored
	if serviceID := r.URL.Query().Get("serviceId"); serviceID != "" {
		result, err := h.service.Seed(r.Context(), sessionID, serviceID)
		if err != nil {
			h.respondError(w, err)
			return
		}

		h.logger.Info("GET /session/draft - Draft seeded: session=%s, service_id=%s", sessionID, serviceID)
		handlers.RespondJSON(w, http.StatusOK, result.Draft)
		return
	}

	view, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, drafts.ErrInvalidInput):
		h.logger.Warn("GET /session/draft - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("GET /session/draft - Failed to load draft: %v", err)
		handlers.RespondInternalError(w)
	}
}
