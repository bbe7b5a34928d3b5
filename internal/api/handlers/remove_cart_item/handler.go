package remove_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lumib/salon-booking-service/internal/api/handlers"
	"github.com/lumib/salon-booking-service/internal/api/middleware"
	"github.com/lumib/salon-booking-service/internal/service/cart"
)

const (
	msgMissingSession = "session ID is required"
	msgMissingItemID  = "item ID is required"
	msgItemNotFound   = "cart item not found"
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

// Handle DELETE /api/v1/session/cart/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	if sessionID == "" {
		h.logger.Warn("DELETE /session/cart/items/{id} - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	itemID := mux.Vars(r)["itemId"]
	if itemID == "" {
		h.logger.Warn("DELETE /session/cart/items/{id} - Missing item ID")
		handlers.RespondBadRequest(w, msgMissingItemID)
		return
	}

	view, err := h.service.Remove(r.Context(), sessionID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrItemNotFound):
			h.logger.Warn("DELETE /session/cart/items/{id} - Item not found: session=%s, item_id=%s", sessionID, itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, cart.ErrInvalidInput):
			h.logger.Warn("DELETE /session/cart/items/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /session/cart/items/{id} - Failed to remove item: session=%s, item_id=%s, error=%v",
				sessionID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /session/cart/items/{id} - Item removed: session=%s, item_id=%s, cart_count=%d",
		sessionID, itemID, view.Count)
	handlers.RespondJSON(w, http.StatusOK, view)
}
