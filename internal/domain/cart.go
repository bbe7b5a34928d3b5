package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumib/salon-booking-service/pkg/types"
)

// CartItem is a committed draft awaiting final submission. ServiceName
// and Price are snapshots taken at add time; later catalog changes must
// not alter items already in the cart.
type CartItem struct {
	ID          string          `json:"id"`
	ServiceID   string          `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Price       int64           `json:"price"` // smallest currency unit
	Date        string          `json:"date"`  // YYYY-MM-DD
	TimeLabel   types.TimeLabel `json:"timeLabel"`
	PhotoURLs   []string        `json:"photoUrls"`
	AddedAt     time.Time       `json:"addedAt"`
}

// NewCartItemID composes an identifier from the selection plus a random
// suffix, so repeated additions of the same slot stay distinct
func NewCartItemID(serviceID, date string, label types.TimeLabel) string {
	return fmt.Sprintf("%s_%s_%s_%s", serviceID, date, label, uuid.NewString())
}

// Cart is the list of finalized selections awaiting checkout.
// Duplicate items for the same service+date+time are permitted; items are
// never merged.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add appends an item to the cart
func (c *Cart) Add(item CartItem) {
	c.Items = append(c.Items, item)
}

// Find returns a pointer to the item with the given id, or nil
func (c *Cart) Find(id string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// Remove deletes the item with the given id, reporting whether it existed
func (c *Cart) Remove(id string) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of items in the cart
func (c *Cart) Count() int {
	return len(c.Items)
}

// Total returns the sum of the items' snapshotted prices
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}
