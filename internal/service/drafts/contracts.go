package drafts

import (
	"context"
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/internal/infra/sessionstore"
	"github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
)

// SessionStore loads and saves a session's draft and cart as one value
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*sessionstore.State, error)
	Save(ctx context.Context, sessionID string, state *sessionstore.State) error
}

// CatalogClient resolves services for validation and price snapshots
type CatalogClient interface {
	GetService(ctx context.Context, serviceID string) (*catalogservice.Service, error)
}

// BookingRepository supplies day occupancy, used to drop a held time that
// became unavailable after a date change
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TimeProvider supplies the current instant (replaceable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface required by the service
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
