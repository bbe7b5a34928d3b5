package cancel_booking

import (
	"context"

	"github.com/lumib/salon-booking-service/internal/domain"
)

// BookingRepository is the repository surface needed to cancel a booking
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger is the logging surface required by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
