package get_month_view

import (
	"github.com/lumib/salon-booking-service/internal/domain"
)

// Request asks for one month's calendar view.
// ServiceID is optional; without it no day is disabled by occupancy.
type Request struct {
	Month     int // 1..12
	Year      int
	ServiceID string
}

// Response is the calendar view model: grid cells, per-day occupancy and
// the days excluded from selection. All fields are plain data.
type Response struct {
	Month        int
	Year         int
	Cells        []domain.CalendarCell
	DayCounts    map[int]int // day-of-month -> bookings across all services
	DisabledDays []int       // sorted, only populated when a service is selected
	TodayDay     int         // day-of-month of today, 0 when the shown month is not the current one
}
