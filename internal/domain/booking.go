package domain

import (
	"time"

	"github.com/lumib/salon-booking-service/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusCreated   BookingStatus = "created"
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a persisted salon reservation.
// Occupancy computations read only Date and TimeLabel; the rest is
// denormalized history taken at creation time.
type Booking struct {
	ID        int64
	ServiceID string
	Date      time.Time
	TimeLabel types.TimeLabel
	Status    BookingStatus

	// Denormalized snapshots for history
	ServiceName  string
	ServicePrice int64 // smallest currency unit
	PhotoURLs    []string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusCreated || b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter is the flexible filter for listing bookings.
// A nil field means "no constraint".
type BookingsFilter struct {
	ServiceID       *string    // filter by service (optional)
	StartDate       *time.Time // period start, inclusive (optional)
	EndDate         *time.Time // period end, inclusive (optional)
	IncludeInactive bool       // include cancelled bookings
}
