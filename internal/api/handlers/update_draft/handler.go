package update_draft

import (
	"errors"
	"net/http"

	"github.com/lumib/salon-booking-service/internal/api/handlers"
	"github.com/lumib/salon-booking-service/internal/api/middleware"
	"github.com/lumib/salon-booking-service/internal/service/drafts"
	"github.com/lumib/salon-booking-service/internal/service/drafts/models"
	"github.com/lumib/salon-booking-service/pkg/types"
)

const (
	msgMissingSession    = "session ID is required"
	msgInvalidBody       = "invalid request body"
	msgUnknownAction     = "unknown action"
	msgMissingPhotoIndex = "photoIndex is required"
	msgServiceNotFound   = "service not found"
	msgUnknownTimeSlot   = "unknown time slot"
	msgInvalidDay        = "day is outside the displayed month"
	msgTooManyPhotos     = "photo limit reached"
	msgPhotoNotFound     = "photo not found"
	msgInvalidInput      = "invalid request parameters"
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

// Handle PATCH /api/v1/session/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	if sessionID == "" {
		h.logger.Warn("PATCH /session/draft - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /session/draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	var (
		result *models.MutationResult
		err    error
	)

	switch req.Action {
	case ActionSelectService:
		result, err = h.service.SelectService(r.Context(), sessionID, req.ServiceID)

	case ActionSelectDay:
		result, err = h.service.SelectDay(r.Context(), sessionID, req.Day)

	case ActionSelectTime:
		result, err = h.service.SelectTime(r.Context(), sessionID, types.TimeLabel(req.TimeLabel))

	case ActionAttachPhoto:
		result, err = h.service.AttachPhoto(r.Context(), sessionID, req.PhotoURL)

	case ActionRemovePhoto:
		if req.PhotoIndex == nil {
			h.logger.Warn("PATCH /session/draft - Missing photo index")
			handlers.RespondBadRequest(w, msgMissingPhotoIndex)
			return
		}
		result, err = h.service.RemovePhoto(r.Context(), sessionID, *req.PhotoIndex)

	case ActionNavigate:
		result, err = h.service.Navigate(r.Context(), sessionID, req.Month, req.Year)

	default:
		h.logger.Warn("PATCH /session/draft - Unknown action: %q", req.Action)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrServiceNotFound):
			h.logger.Warn("PATCH /session/draft - Service not found: session=%s, service_id=%s", sessionID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, drafts.ErrUnknownTimeSlot):
			h.logger.Warn("PATCH /session/draft - Unknown time slot: session=%s, label=%q", sessionID, req.TimeLabel)
			handlers.RespondBadRequest(w, msgUnknownTimeSlot)

		case errors.Is(err, drafts.ErrInvalidDay):
			h.logger.Warn("PATCH /session/draft - Invalid day: session=%s, day=%d", sessionID, req.Day)
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, drafts.ErrTooManyPhotos):
			h.logger.Warn("PATCH /session/draft - Photo limit reached: session=%s", sessionID)
			handlers.RespondUnprocessableEntity(w, msgTooManyPhotos)

		case errors.Is(err, drafts.ErrPhotoNotFound):
			h.logger.Warn("PATCH /session/draft - Photo not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgPhotoNotFound)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("PATCH /session/draft - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /session/draft - Failed to apply %s: session=%s, error=%v", req.Action, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /session/draft - Applied %s: session=%s, committed=%t, cart_count=%d",
		req.Action, sessionID, result.Committed, result.CartCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
