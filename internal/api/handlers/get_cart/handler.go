package get_cart

import (
	"errors"
	"net/http"

	"github.com/lumib/salon-booking-service/internal/api/handlers"
	"github.com/lumib/salon-booking-service/internal/api/middleware"
	"github.com/lumib/salon-booking-service/internal/service/cart"
)

const (
	msgMissingSession = "session ID is required"
	msgInvalidInput   = "invalid request parameters"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/session/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	if sessionID == "" {
		h.logger.Warn("GET /session/cart - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	view, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidInput):
			h.logger.Warn("GET /session/cart - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /session/cart - Failed to load cart: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
