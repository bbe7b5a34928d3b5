package get_day_slots

import (
	"context"
	"fmt"

	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/pkg/ptr"
	"github.com/lumib/salon-booking-service/pkg/types"
)

// UseCase resolves a day's slot availability for one service
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      []types.TimeLabel
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case over the fixed slot catalog
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      domain.DefaultSlotLabels,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute resolves the per-slot availability verdict for (date, service).
// A failed booking fetch degrades to the default all-open view instead of
// blocking the interaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: service=%s, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Current instant and today check
	now := uc.timeProvider.Now()
	isToday := isSameDay(req.Date, now)

	// 3. Fetch active bookings for the exact (date, service) pair
	filter := domain.BookingsFilter{
		ServiceID:       ptr.Ptr(req.ServiceID),
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookedLabels := make(map[types.TimeLabel]bool)
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		// Soft failure: present the default all-open view
		uc.logger.Warn("GetDaySlots: failed to fetch bookings for service=%s date=%s, falling back to open slots: %v",
			req.ServiceID, req.Date.Format(domain.DateFormat), err)
	} else {
		for _, booking := range bookings {
			if booking.IsActive() {
				bookedLabels[booking.TimeLabel] = true
			}
		}
	}

	// 4. Resolve each catalog slot
	slots := resolveSlots(uc.catalog, bookedLabels, isToday, now)

	// 5. The business-day-over flag depends only on the clock, not on occupancy
	allPassed := isToday && domain.AllSlotsPassed(uc.catalog, now)

	uc.logger.Info("GetDaySlots: resolved %d slots for service=%s date=%s (booked=%d, allPassed=%t)",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat), len(bookedLabels), allPassed)

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
		AllPassed: allPassed,
	}, nil
}

func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
