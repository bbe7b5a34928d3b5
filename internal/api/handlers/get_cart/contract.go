package get_cart

import (
	"context"

	"github.com/lumib/salon-booking-service/internal/service/cart/models"
)

type CartService interface {
	Get(ctx context.Context, sessionID string) (*models.CartView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
