package create_booking

import (
	"time"

	"github.com/lumib/salon-booking-service/pkg/types"
)

// Request asks to persist one reservation. Either CartItemID references a
// queued cart item of the session, or the selection fields are given
// directly (the live draft path).
type Request struct {
	SessionID  string
	CartItemID *string // submit a queued item; selection fields are ignored

	ServiceID string
	Date      time.Time // no time component
	TimeLabel types.TimeLabel
	PhotoURLs []string
}

// Response is the persisted reservation
type Response struct {
	ID        int64
	ServiceID string
	Date      time.Time
	TimeLabel types.TimeLabel
	Status    string

	// Snapshots taken at creation time
	ServiceName  string
	ServicePrice int64
	PhotoURLs    []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
