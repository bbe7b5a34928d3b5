package get_day_slots

import (
	"time"

	"github.com/lumib/salon-booking-service/pkg/types"
)

// Request asks for the slot availability of one service on one date
type Request struct {
	ServiceID string    // selected service
	Date      time.Time // target date (no time component)
}

// Response is the per-slot availability verdict for the date
type Response struct {
	Date      time.Time
	ServiceID string
	Slots     []SlotView
	AllPassed bool // today only: every slot's start time has elapsed
}

// SlotView annotates one catalog slot.
// Available=false with IsBooked=true means another reservation holds the
// slot; Available=false with IsBooked=false means its time has elapsed today.
type SlotView struct {
	Label     types.TimeLabel
	Available bool
	IsBooked  bool
}
