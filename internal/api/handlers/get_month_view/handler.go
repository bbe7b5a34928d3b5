package get_month_view

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lumib/salon-booking-service/internal/api/handlers"
	getMonthView "github.com/lumib/salon-booking-service/internal/usecase/get_month_view"
)

const (
	msgMissingMonth = "month is required"
	msgInvalidMonth = "month must be an integer between 1 and 12"
	msgMissingYear  = "year is required"
	msgInvalidYear  = "year must be a four-digit integer"
	msgInvalidInput = "invalid request parameters"
)

type Handler struct {
	useCase GetMonthViewUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: month (required, 1..12), year (required), serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /calendar - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /calendar - Invalid month: %q", monthStr)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /calendar - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %q", yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	serviceID := r.URL.Query().Get("serviceId")

	result, err := h.useCase.Execute(r.Context(), &getMonthView.Request{
		Month:     month,
		Year:      year,
		ServiceID: serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthView.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: month=%d, year=%d, error=%v", month, year, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar - Failed to build month view: month=%d, year=%d, error=%v", month, year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Month view built: month=%d, year=%d, disabled_days=%d",
		month, year, len(result.DisabledDays))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
