package update_cart_item

import (
	"context"

	"github.com/lumib/salon-booking-service/internal/service/cart/models"
)

type CartService interface {
	Update(ctx context.Context, sessionID, itemID string, patch *models.ItemPatch) (*models.CartView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
