package get_month_view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumib/salon-booking-service/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeBlackoutRepo struct {
	dates []time.Time
	err   error
}

func (f *fakeBlackoutRepo) GetDates(_ context.Context, _ string, _, _ time.Time) ([]time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.dates, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, blackouts *fakeBlackoutRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, blackouts, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func onDay(day int, serviceID string) *domain.Booking {
	return &domain.Booking{
		ServiceID: serviceID,
		Date:      time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC),
		TimeLabel: domain.DefaultSlotLabels[0],
		Status:    domain.StatusConfirmed,
	}
}

func fullDay(day int) []*domain.Booking {
	bookings := make([]*domain.Booking, 0, domain.DailyCapacity)
	for i := 0; i < domain.DailyCapacity; i++ {
		bookings = append(bookings, &domain.Booking{
			ServiceID: "svc-1",
			Date:      time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC),
			TimeLabel: domain.DefaultSlotLabels[i],
			Status:    domain.StatusConfirmed,
		})
	}
	return bookings
}

func TestExecute_GridAndCounts(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		onDay(3, "svc-1"),
		onDay(3, "svc-2"),
		onDay(17, "svc-1"),
	}}
	uc := newTestUseCase(repo, &fakeBlackoutRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Month: 9, Year: 2026})

	require.NoError(t, err)
	// September 2026 starts on a Tuesday and has 30 days
	assert.Len(t, resp.Cells, 2+30)
	assert.Equal(t, map[int]int{3: 2, 17: 1}, resp.DayCounts)
	assert.Empty(t, resp.DisabledDays)
	assert.Zero(t, resp.TodayDay, "today marker only applies to the current month")
}

func TestExecute_TodayMarkerInCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlackoutRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Month: 9, Year: 2026})

	require.NoError(t, err)
	assert.Equal(t, 14, resp.TodayDay)
}

func TestExecute_DisabledDaysRequireSelectedService(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: fullDay(8)}

	// Without a service nothing is disabled, with one the full day is
	withoutService := newTestUseCase(repo, &fakeBlackoutRepo{}, now)
	resp, err := withoutService.Execute(context.Background(), &Request{Month: 9, Year: 2026})
	require.NoError(t, err)
	assert.Empty(t, resp.DisabledDays)
	assert.Equal(t, domain.DailyCapacity, resp.DayCounts[8])

	withService := newTestUseCase(repo, &fakeBlackoutRepo{}, now)
	resp, err = withService.Execute(context.Background(), &Request{Month: 9, Year: 2026, ServiceID: "svc-9"})
	require.NoError(t, err)
	assert.Equal(t, []int{8}, resp.DisabledDays)
}

func TestExecute_BelowCapacityStaysEnabled(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: fullDay(8)[:domain.DailyCapacity-1]}
	uc := newTestUseCase(repo, &fakeBlackoutRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Month: 9, Year: 2026, ServiceID: "svc-1"})

	require.NoError(t, err)
	assert.Empty(t, resp.DisabledDays)
}

func TestExecute_BlackoutDatesDisableDays(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	blackouts := &fakeBlackoutRepo{dates: []time.Time{
		time.Date(2026, time.September, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, blackouts, now)

	resp, err := uc.Execute(context.Background(), &Request{Month: 9, Year: 2026, ServiceID: "svc-1"})

	require.NoError(t, err)
	assert.Equal(t, []int{5, 21}, resp.DisabledDays)
}

func TestExecute_TodayDisabledOnceAllSlotsPassed(t *testing.T) {
	// 5 PM, after the 4:30 PM last slot
	now := time.Date(2026, time.September, 14, 17, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlackoutRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Month: 9, Year: 2026, ServiceID: "svc-1"})

	require.NoError(t, err)
	assert.Equal(t, []int{14}, resp.DisabledDays)
}

func TestExecute_BookingFetchFailureShowsEmptyCounts(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, &fakeBlackoutRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Month: 9, Year: 2026})

	require.NoError(t, err)
	assert.Empty(t, resp.DayCounts)
	assert.Len(t, resp.Cells, 2+30)
}

func TestExecute_BlackoutFetchFailureIsSoft(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	blackouts := &fakeBlackoutRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(&fakeBookingRepo{bookings: fullDay(8)}, blackouts, now)

	resp, err := uc.Execute(context.Background(), &Request{Month: 9, Year: 2026, ServiceID: "svc-1"})

	require.NoError(t, err)
	// Capacity disabling still applies even when blackout dates are unavailable
	assert.Equal(t, []int{8}, resp.DisabledDays)
}

func TestExecute_RejectsInvalidMonth(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlackoutRepo{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Month: 13, Year: 2026})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Month: 5, Year: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
