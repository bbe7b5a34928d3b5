package create_booking

import (
	"errors"
	"net/http"

	"github.com/lumib/salon-booking-service/internal/api/handlers"
	"github.com/lumib/salon-booking-service/internal/api/middleware"
	createBooking "github.com/lumib/salon-booking-service/internal/usecase/create_booking"
)

const (
	msgMissingSession      = "session ID is required"
	msgInvalidBody         = "invalid request body"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgIncompleteSelection = "service, date and time must all be selected"
	msgServiceNotFound     = "service not found"
	msgCartItemNotFound    = "cart item not found"
	msgDateInPast          = "booking date is in the past"
	msgUnknownTimeSlot     = "unknown time slot"
	msgTimePassed          = "slot time has already passed"
	msgDateUnavailable     = "date is unavailable for this service"
	msgDayFullyBooked      = "day is fully booked"
	msgSlotTaken           = "slot is already booked"
	msgInvalidInput        = "invalid request parameters"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	if sessionID == "" {
		h.logger.Warn("POST /bookings - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrIncompleteSelection):
			h.logger.Warn("POST /bookings - Incomplete selection: session=%s", sessionID)
			handlers.RespondUnprocessableEntity(w, msgIncompleteSelection)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: session=%s, service_id=%s", sessionID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrCartItemNotFound):
			h.logger.Warn("POST /bookings - Cart item not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgCartItemNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: session=%s, date=%s", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrUnknownTimeSlot):
			h.logger.Warn("POST /bookings - Unknown time slot: session=%s, label=%q", sessionID, req.TimeLabel)
			handlers.RespondBadRequest(w, msgUnknownTimeSlot)

		case errors.Is(err, createBooking.ErrTimePassed):
			h.logger.Warn("POST /bookings - Slot time passed: session=%s, label=%q", sessionID, req.TimeLabel)
			handlers.RespondConflict(w, msgTimePassed)

		case errors.Is(err, createBooking.ErrDateUnavailable):
			h.logger.Warn("POST /bookings - Date unavailable: session=%s, date=%s", sessionID, req.Date)
			handlers.RespondConflict(w, msgDateUnavailable)

		case errors.Is(err, createBooking.ErrDayFullyBooked):
			h.logger.Warn("POST /bookings - Day fully booked: session=%s, date=%s", sessionID, req.Date)
			handlers.RespondConflict(w, msgDayFullyBooked)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: session=%s, date=%s, label=%q", sessionID, req.Date, req.TimeLabel)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: session=%s, booking_id=%d, service_id=%s",
		sessionID, result.ID, result.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
