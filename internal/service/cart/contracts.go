package cart

import (
	"context"

	"github.com/lumib/salon-booking-service/internal/infra/sessionstore"
	"github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
)

// SessionStore loads and saves a session's draft and cart as one value
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*sessionstore.State, error)
	Save(ctx context.Context, sessionID string, state *sessionstore.State) error
}

// CatalogClient resolves services when an item's service is replaced
type CatalogClient interface {
	GetService(ctx context.Context, serviceID string) (*catalogservice.Service, error)
}

// Logger is the logging surface required by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
