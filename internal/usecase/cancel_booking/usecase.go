package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumib/salon-booking-service/internal/domain"
	bookingStorage "github.com/lumib/salon-booking-service/internal/infra/storage/booking"
)

// UseCase cancels an existing reservation. A cancelled booking stops
// occupying its slot, so availability reads free the slot immediately.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase creates the booking cancellation use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute cancels the booking identified by the request
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	// 1. Validate the request envelope
	if req == nil || req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	uc.logger.Info("CancelBooking: cancelling booking id=%d", req.BookingID)

	// 2. Fetch and gate on the lifecycle state
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingStorage.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: repository error for id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d not cancellable, status=%s", req.BookingID, booking.Status)
		return ErrCannotCancel
	}

	// 3. Cancel. The update is guarded by status, so a concurrent
	// transition between the read and the write surfaces here.
	if err := uc.bookingRepo.Cancel(ctx, req.BookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingStorage.ErrCannotCancel) {
			uc.logger.Warn("CancelBooking: booking id=%d changed state concurrently", req.BookingID)
			return ErrCannotCancel
		}
		uc.logger.Error("CancelBooking: repository error for id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, slot %s %s freed",
		req.BookingID, booking.Date.Format(domain.DateFormat), booking.TimeLabel)
	return nil
}
