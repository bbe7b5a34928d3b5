package cancel_booking

// Request identifies the booking to cancel
type Request struct {
	BookingID          int64
	CancellationReason string
}
