package update_draft

import (
	"context"

	"github.com/lumib/salon-booking-service/internal/service/drafts/models"
	"github.com/lumib/salon-booking-service/pkg/types"
)

type DraftsService interface {
	SelectService(ctx context.Context, sessionID, serviceID string) (*models.MutationResult, error)
	SelectDay(ctx context.Context, sessionID string, day int) (*models.MutationResult, error)
	SelectTime(ctx context.Context, sessionID string, label types.TimeLabel) (*models.MutationResult, error)
	AttachPhoto(ctx context.Context, sessionID, url string) (*models.MutationResult, error)
	RemovePhoto(ctx context.Context, sessionID string, index int) (*models.MutationResult, error)
	Navigate(ctx context.Context, sessionID string, month, year int) (*models.MutationResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
