package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lumib/salon-booking-service/internal/api/handlers"
	getDaySlots "github.com/lumib/salon-booking-service/internal/usecase/get_day_slots"
)

const (
	msgMissingServiceID = "service ID is required"
	msgMissingDate      = "date is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput     = "invalid request parameters"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID := vars["serviceId"]
	if serviceID == "" {
		h.logger.Warn("GET /services/{id}/slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /services/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /services/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/slots - Invalid input: service_id=%s, date=%s, error=%v",
				serviceID, dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /services/{id}/slots - Failed to resolve slots: service_id=%s, date=%s, error=%v",
				serviceID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/slots - Slots resolved: service_id=%s, date=%s, slots_count=%d",
		serviceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
