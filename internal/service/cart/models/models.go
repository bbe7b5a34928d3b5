package models

import (
	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/pkg/types"
)

// ItemView is the presentation model of a single cart entry
type ItemView struct {
	ID          string   `json:"id"`
	ServiceID   string   `json:"serviceId"`
	ServiceName string   `json:"serviceName"`
	Price       int64    `json:"price"`
	Date        string   `json:"date"`
	TimeLabel   string   `json:"timeLabel"`
	PhotoURLs   []string `json:"photoUrls"`
}

// CartView is the aggregate view of a session's cart
type CartView struct {
	Items      []ItemView `json:"items"`
	Count      int        `json:"count"`
	TotalPrice int64      `json:"totalPrice"`
}

// ItemPatch carries the optional fields of a cart item update. Nil
// fields stay untouched.
type ItemPatch struct {
	ServiceID *string          `json:"serviceId,omitempty"`
	Date      *string          `json:"date,omitempty"`
	TimeLabel *types.TimeLabel `json:"timeLabel,omitempty"`
	PhotoURLs *[]string        `json:"photoUrls,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p *ItemPatch) IsEmpty() bool {
	return p.ServiceID == nil && p.Date == nil && p.TimeLabel == nil && p.PhotoURLs == nil
}

// FromCart builds the aggregate view from the domain cart
func FromCart(cart *domain.Cart) CartView {
	items := make([]ItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		photos := item.PhotoURLs
		if photos == nil {
			photos = []string{}
		}
		items = append(items, ItemView{
			ID:          item.ID,
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Price:       item.Price,
			Date:        item.Date,
			TimeLabel:   item.TimeLabel.String(),
			PhotoURLs:   photos,
		})
	}
	return CartView{
		Items:      items,
		Count:      cart.Count(),
		TotalPrice: cart.Total(),
	}
}
