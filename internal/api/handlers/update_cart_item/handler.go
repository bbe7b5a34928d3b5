package update_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lumib/salon-booking-service/internal/api/handlers"
	"github.com/lumib/salon-booking-service/internal/api/middleware"
	"github.com/lumib/salon-booking-service/internal/service/cart"
	"github.com/lumib/salon-booking-service/internal/service/cart/models"
)

const (
	msgMissingSession  = "session ID is required"
	msgMissingItemID   = "item ID is required"
	msgInvalidBody     = "invalid request body"
	msgItemNotFound    = "cart item not found"
	msgServiceNotFound = "service not found"
	msgUnknownTimeSlot = "unknown time slot"
	msgInvalidInput    = "invalid request parameters"
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

// Handle PATCH /api/v1/session/cart/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	if sessionID == "" {
		h.logger.Warn("PATCH /session/cart/items/{id} - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	itemID := mux.Vars(r)["itemId"]
	if itemID == "" {
		h.logger.Warn("PATCH /session/cart/items/{id} - Missing item ID")
		handlers.RespondBadRequest(w, msgMissingItemID)
		return
	}

	var patch models.ItemPatch
	if err := handlers.DecodeJSON(r, &patch); err != nil {
		h.logger.Warn("PATCH /session/cart/items/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	view, err := h.service.Update(r.Context(), sessionID, itemID, &patch)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrItemNotFound):
			h.logger.Warn("PATCH /session/cart/items/{id} - Item not found: session=%s, item_id=%s", sessionID, itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, cart.ErrServiceNotFound):
			h.logger.Warn("PATCH /session/cart/items/{id} - Service not found: session=%s, item_id=%s", sessionID, itemID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, cart.ErrUnknownTimeSlot):
			h.logger.Warn("PATCH /session/cart/items/{id} - Unknown time slot: session=%s, item_id=%s", sessionID, itemID)
			handlers.RespondBadRequest(w, msgUnknownTimeSlot)

		case errors.Is(err, cart.ErrInvalidInput):
			h.logger.Warn("PATCH /session/cart/items/{id} - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /session/cart/items/{id} - Failed to update item: session=%s, item_id=%s, error=%v",
				sessionID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /session/cart/items/{id} - Item updated: session=%s, item_id=%s", sessionID, itemID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
