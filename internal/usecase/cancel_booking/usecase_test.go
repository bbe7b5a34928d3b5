package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumib/salon-booking-service/internal/domain"
	bookingStorage "github.com/lumib/salon-booking-service/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings  map[int64]*domain.Booking
	cancelErr error
	cancelled []int64
	reasons   []string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingStorage.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	f.reasons = append(f.reasons, reason)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		ServiceID: "svc-1",
		Date:      time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC),
		TimeLabel: "1:30 PM",
		Status:    domain.StatusConfirmed,
	}
}

func TestExecute_CancelsConfirmedBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[7] = confirmedBooking(7)
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7, CancellationReason: "client request"})

	require.NoError(t, err)
	require.Len(t, repo.cancelled, 1)
	assert.Equal(t, int64(7), repo.cancelled[0])
	assert.Equal(t, "client request", repo.reasons[0])
}

func TestExecute_UnknownBooking(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 404})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyCancelledBookingRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	booking := confirmedBooking(7)
	booking.Status = domain.StatusCancelled
	repo.bookings[7] = booking
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled, "guard must reject before the update")
}

func TestExecute_CompletedBookingRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	booking := confirmedBooking(7)
	booking.Status = domain.StatusCompleted
	repo.bookings[7] = booking
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestExecute_ConcurrentStateChangeSurfacesAsCannotCancel(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[7] = confirmedBooking(7)
	repo.cancelErr = bookingStorage.ErrCannotCancel
	uc := NewUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestExecute_InvalidID(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), nopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
