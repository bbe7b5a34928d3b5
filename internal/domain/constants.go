package domain

// Capacity and selection limits
const (
	// DailyCapacity is the number of bookings after which a day counts as
	// fully booked on the calendar
	DailyCapacity = 6

	// MaxDraftPhotos limits how many reference photos can be attached to a
	// single selection
	MaxDraftPhotos = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses that do not occupy a slot.
// Used when counting occupancy for availability.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that occupy a slot
var ActiveStatuses = []BookingStatus{
	StatusCreated,
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
