package get_draft

import (
	"context"

	"github.com/lumib/salon-booking-service/internal/service/drafts/models"
)

type DraftsService interface {
	Get(ctx context.Context, sessionID string) (*models.DraftView, error)
	Seed(ctx context.Context, sessionID, serviceID string) (*models.MutationResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
