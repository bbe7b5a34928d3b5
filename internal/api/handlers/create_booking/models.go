package create_booking

import (
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
	createBooking "github.com/lumib/salon-booking-service/internal/usecase/create_booking"
	"github.com/lumib/salon-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model. Either cartItemId references
// a queued cart item, or the selection fields are supplied directly.
type CreateBookingRequest struct {
	CartItemID *string  `json:"cartItemId,omitempty"`
	ServiceID  string   `json:"serviceId,omitempty"`
	Date       string   `json:"date,omitempty"` // YYYY-MM-DD
	TimeLabel  string   `json:"timeLabel,omitempty"`
	PhotoURLs  []string `json:"photoUrls,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64    `json:"id"`
	ServiceID    string   `json:"serviceId"`
	ServiceName  string   `json:"serviceName"`
	ServicePrice int64    `json:"servicePrice"`
	Date         string   `json:"date"`
	TimeLabel    string   `json:"timeLabel"`
	Status       string   `json:"status"`
	PhotoURLs    []string `json:"photoUrls"`
	CreatedAt    string   `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case request.
// The date is only parsed on the direct-selection path; cart submissions
// carry their own date.
func (r *CreateBookingRequest) ToUseCaseRequest(sessionID string) (*createBooking.Request, error) {
	req := &createBooking.Request{
		SessionID:  sessionID,
		CartItemID: r.CartItemID,
		ServiceID:  r.ServiceID,
		TimeLabel:  types.TimeLabel(r.TimeLabel),
		PhotoURLs:  r.PhotoURLs,
	}

	if r.CartItemID == nil && r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	photos := resp.PhotoURLs
	if photos == nil {
		photos = []string{}
	}

	return &BookingResponse{
		ID:           resp.ID,
		ServiceID:    resp.ServiceID,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		Date:         resp.Date.Format(domain.DateFormat),
		TimeLabel:    resp.TimeLabel.String(),
		Status:       resp.Status,
		PhotoURLs:    photos,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
