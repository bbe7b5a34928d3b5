package get_day_slots

import (
	"context"
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
)

// BookingRepository is the repository surface needed to resolve a day's slots
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider supplies the current instant (replaceable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface required by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
