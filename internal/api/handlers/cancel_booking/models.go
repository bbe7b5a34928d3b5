package cancel_booking

import (
	cancelBooking "github.com/lumib/salon-booking-service/internal/usecase/cancel_booking"
)

// CancelBookingRequest is the optional HTTP request body
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CancelBookingRequest) ToUseCaseRequest(bookingID int64) *cancelBooking.Request {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &cancelBooking.Request{
		BookingID:          bookingID,
		CancellationReason: reason,
	}
}
