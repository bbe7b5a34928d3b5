package get_month_view

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
)

// UseCase builds the month calendar view: the padded day grid, per-day
// occupancy counts and the disabled-day set for a selected service
type UseCase struct {
	bookingRepo  BookingRepository
	blackoutRepo BlackoutRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the month view use case
func NewUseCase(bookingRepo BookingRepository, blackoutRepo BlackoutRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blackoutRepo: blackoutRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the view model for one month.
// Occupancy counts are date-scoped across all services; the fully-booked
// disabling predicate for a selected service reuses the same counts.
// A failed booking fetch degrades to an empty-counts calendar.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthView: month=%d, year=%d, service=%q", req.Month, req.Year, req.ServiceID)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthView: validation failed: %v", err)
		return nil, err
	}

	// 2. Current instant and grid
	now := uc.timeProvider.Now()
	month := time.Month(req.Month)
	cells := domain.BuildMonthGrid(month, req.Year)

	// 3. Count the month's active bookings per day, any service
	monthStart := time.Date(req.Year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(req.Year, month, domain.DaysInMonth(month, req.Year), 0, 0, 0, 0, time.UTC)

	dayCounts := make(map[int]int)
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate:       &monthStart,
		EndDate:         &monthEnd,
		IncludeInactive: false,
	})
	if err != nil {
		// Soft failure: show the calendar without density markers
		uc.logger.Warn("GetMonthView: failed to fetch bookings for %d-%02d, showing empty counts: %v",
			req.Year, req.Month, err)
	} else {
		for _, booking := range bookings {
			if booking.IsActive() {
				dayCounts[booking.Date.Day()]++
			}
		}
	}

	// 4. Disabled days apply only once a service is chosen
	var disabledDays []int
	if req.ServiceID != "" {
		disabledDays = uc.resolveDisabledDays(ctx, req, dayCounts, monthStart, monthEnd, now)
	}

	// 5. Today marker, only within the real current month
	todayDay := 0
	if int(now.Month()) == req.Month && now.Year() == req.Year {
		todayDay = now.Day()
	}

	uc.logger.Info("GetMonthView: month=%d-%02d cells=%d counted_days=%d disabled=%d",
		req.Year, req.Month, len(cells), len(dayCounts), len(disabledDays))

	return &Response{
		Month:        req.Month,
		Year:         req.Year,
		Cells:        cells,
		DayCounts:    dayCounts,
		DisabledDays: disabledDays,
		TodayDay:     todayDay,
	}, nil
}

// resolveDisabledDays collects the days excluded from selection for the
// chosen service: days at daily capacity, the service's blackout dates,
// and today once every slot's start time has elapsed.
func (uc *UseCase) resolveDisabledDays(
	ctx context.Context,
	req *Request,
	dayCounts map[int]int,
	monthStart, monthEnd time.Time,
	now time.Time,
) []int {
	disabled := make(map[int]bool)

	for day, count := range dayCounts {
		if count >= domain.DailyCapacity {
			disabled[day] = true
		}
	}

	blackoutDates, err := uc.blackoutRepo.GetDates(ctx, req.ServiceID, monthStart, monthEnd)
	if err != nil {
		// Soft failure: blackout days are simply not marked
		uc.logger.Warn("GetMonthView: failed to fetch blackout dates for service=%s: %v", req.ServiceID, err)
	} else {
		for _, date := range blackoutDates {
			disabled[date.Day()] = true
		}
	}

	// Disable today once the business day is over, independent of occupancy
	if int(now.Month()) == req.Month && now.Year() == req.Year && domain.AllSlotsPassed(domain.DefaultSlotLabels, now) {
		disabled[now.Day()] = true
	}

	days := make([]int, 0, len(disabled))
	for day := range disabled {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

func validateRequest(req *Request) error {
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if req.Year < 1970 || req.Year > 9999 {
		return fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	return nil
}
