package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
	catalogClient "github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
	"github.com/lumib/salon-booking-service/internal/integrations/notifyservice"
	"github.com/lumib/salon-booking-service/pkg/types"
)

// UseCase persists a reservation from a queued cart item or a live draft.
// The availability re-check and the insert run in one serializable
// transaction, which is the sole point enforcing slot uniqueness.
type UseCase struct {
	bookingRepo  BookingRepository
	blackoutRepo BlackoutRepository
	catalog      CatalogClient
	notify       NotifyClient
	sessions     SessionStore
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking submission use case
func NewUseCase(
	bookingRepo BookingRepository,
	blackoutRepo BlackoutRepository,
	catalog CatalogClient,
	notify NotifyClient,
	sessions SessionStore,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blackoutRepo: blackoutRepo,
		catalog:      catalog,
		notify:       notify,
		sessions:     sessions,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the submission flow. Draft and cart state are preserved on
// every failure so the user can retry; the submitted cart item is removed
// only after the booking exists.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session=%s, cartItem=%v, service=%s",
		req.SessionID, req.CartItemID, req.ServiceID)

	// 1. Validate the request envelope
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Resolve the selection, either from the cart or from the request
	serviceID, date, label, photoURLs, err := uc.resolveSelection(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Completeness gate: incomplete submissions never reach the network
	if err := validateSelection(serviceID, date, label); err != nil {
		uc.logger.Warn("CreateBooking: selection rejected for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	// 4. Timing policy: no past dates, no elapsed slots today
	if err := validateTiming(date, label, now); err != nil {
		uc.logger.Warn("CreateBooking: timing rejected for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	// 5. Resolve the service for name and price snapshots
	service, err := uc.catalog.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", serviceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Blackout dates close the service for the whole day
	blackedOut, err := uc.blackoutRepo.IsBlackedOut(ctx, serviceID, date)
	if err != nil {
		uc.logger.Error("CreateBooking: blackout check failed for service=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: blackout check failed: %v", ErrInternal, err)
	}
	if blackedOut {
		uc.logger.Warn("CreateBooking: service=%s is blacked out on %s", serviceID, date.Format(domain.DateFormat))
		return nil, ErrDateUnavailable
	}

	// 7. Availability re-check and insert, serialized against concurrent
	// submissions of the same day
	var result *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayBookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			StartDate:       &date,
			EndDate:         &date,
			IncludeInactive: false,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get day bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// Day capacity is counted across all services, matching the
		// calendar's fully-booked marker
		activeCount := 0
		for _, b := range dayBookings {
			if !b.IsActive() {
				continue
			}
			activeCount++
			if b.ServiceID == serviceID && b.TimeLabel == label {
				uc.logger.Warn("CreateBooking: slot %s already booked for service=%s on %s",
					label, serviceID, date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
		}
		if activeCount >= domain.DailyCapacity {
			uc.logger.Warn("CreateBooking: day %s fully booked (%d/%d)",
				date.Format(domain.DateFormat), activeCount, domain.DailyCapacity)
			return ErrDayFullyBooked
		}

		booking := &domain.Booking{
			ServiceID:    serviceID,
			Date:         date,
			TimeLabel:    label,
			Status:       domain.StatusConfirmed,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			PhotoURLs:    photoURLs,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for service=%s on %s %s",
		result.ID, serviceID, date.Format(domain.DateFormat), label)

	// 8. Post-booking side effects never invalidate the reservation
	uc.sendConfirmation(ctx, result)
	if req.CartItemID != nil {
		uc.removeCartItem(ctx, req.SessionID, *req.CartItemID)
	}

	return &Response{
		ID:           result.ID,
		ServiceID:    result.ServiceID,
		Date:         result.Date,
		TimeLabel:    result.TimeLabel,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		PhotoURLs:    result.PhotoURLs,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// resolveSelection extracts the selection fields, reading them from the
// referenced cart item when one is given
func (uc *UseCase) resolveSelection(ctx context.Context, req *Request) (string, time.Time, types.TimeLabel, []string, error) {
	if req.CartItemID == nil {
		return req.ServiceID, req.Date, req.TimeLabel, req.PhotoURLs, nil
	}

	state, err := uc.sessions.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load session %s: %v", req.SessionID, err)
		return "", time.Time{}, "", nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}

	item := state.Cart.Find(*req.CartItemID)
	if item == nil {
		uc.logger.Warn("CreateBooking: cart item %s not found in session %s", *req.CartItemID, req.SessionID)
		return "", time.Time{}, "", nil, ErrCartItemNotFound
	}

	date, err := time.Parse(domain.DateFormat, item.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: cart item %s has malformed date %q", item.ID, item.Date)
		return "", time.Time{}, "", nil, fmt.Errorf("%w: malformed cart item date: %v", ErrInternal, err)
	}

	return item.ServiceID, date, item.TimeLabel, item.PhotoURLs, nil
}

// sendConfirmation dispatches the confirmation notification; failures are
// soft and only logged
func (uc *UseCase) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	err := uc.notify.SendBookingConfirmation(ctx, notifyservice.BookingConfirmation{
		BookingID:   booking.ID,
		ServiceName: booking.ServiceName,
		Date:        booking.Date.Format(domain.DateFormat),
		TimeLabel:   booking.TimeLabel.String(),
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: confirmation notification failed for booking id=%d: %v", booking.ID, err)
	}
}

// removeCartItem drops the submitted item from the session cart. The
// booking already exists, so a failed cleanup is logged and tolerated.
func (uc *UseCase) removeCartItem(ctx context.Context, sessionID, itemID string) {
	state, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to reload session %s for cart cleanup: %v", sessionID, err)
		return
	}
	if !state.Cart.Remove(itemID) {
		return
	}
	if err := uc.sessions.Save(ctx, sessionID, state); err != nil {
		uc.logger.Warn("CreateBooking: failed to save session %s after cart cleanup: %v", sessionID, err)
	}
}
