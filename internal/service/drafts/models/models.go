package models

import (
	"github.com/lumib/salon-booking-service/internal/domain"
	"github.com/lumib/salon-booking-service/internal/integrations/catalogservice"
)

// ServiceView is the resolved service record shown alongside the draft
type ServiceView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Rating      float64 `json:"rating,omitempty"`
	RatingCount int     `json:"ratingCount,omitempty"`
}

// DraftView is the presentation model of the in-progress selection.
// TotalPrice derives from the selected service; Complete mirrors the
// three required fields being set.
type DraftView struct {
	ServiceID  string       `json:"serviceId"`
	Day        int          `json:"day"`
	TimeLabel  string       `json:"timeLabel"`
	PhotoURLs  []string     `json:"photoUrls"`
	Month      int          `json:"month"`
	Year       int          `json:"year"`
	TotalPrice int64        `json:"totalPrice"`
	Service    *ServiceView `json:"service,omitempty"`
	Complete   bool         `json:"complete"`
}

// MutationResult reports the draft after a mutation and whether the
// mutation completed the selection and queued a cart item
type MutationResult struct {
	Draft           DraftView `json:"draft"`
	Committed       bool      `json:"committed"`
	CommittedItemID string    `json:"committedItemId,omitempty"`
	CartCount       int       `json:"cartCount"`
}

// FromDraft builds the view model for a draft and its resolved service
func FromDraft(draft *domain.DraftSelection, service *catalogservice.Service) DraftView {
	view := DraftView{
		ServiceID: draft.ServiceID,
		Day:       draft.Day,
		TimeLabel: draft.TimeLabel.String(),
		PhotoURLs: draft.PhotoURLs,
		Month:     int(draft.Month),
		Year:      draft.Year,
		Complete:  draft.IsComplete(),
	}
	if view.PhotoURLs == nil {
		view.PhotoURLs = []string{}
	}
	if service != nil {
		view.TotalPrice = service.Price
		view.Service = &ServiceView{
			ID:          service.ID,
			Name:        service.Name,
			Price:       service.Price,
			Rating:      service.Rating,
			RatingCount: service.RatingCount,
		}
	}
	return view
}
