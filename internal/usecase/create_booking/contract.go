package create_booking

import (
	"context"
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/internal/infra/sessionstore"
	"github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
	"github.com/lumib/salon-booking-service/internal/integrations/notifyservice"
)

// BookingRepository is the repository surface needed to create a booking
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlackoutRepository checks per-service blackout dates
type BlackoutRepository interface {
	IsBlackedOut(ctx context.Context, serviceID string, date time.Time) (bool, error)
}

// CatalogClient resolves services for price and name snapshots
type CatalogClient interface {
	GetService(ctx context.Context, serviceID string) (*catalogservice.Service, error)
}

// NotifyClient dispatches the post-booking confirmation
type NotifyClient interface {
	SendBookingConfirmation(ctx context.Context, confirmation notifyservice.BookingConfirmation) error
}

// SessionStore loads and saves the session's draft and cart, used when a
// queued cart item is submitted
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*sessionstore.State, error)
	Save(ctx context.Context, sessionID string, state *sessionstore.State) error
}

// TransactionManager runs the availability check and insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
