package get_day_slots

import (
	"time"

	"github.com/lumib/salon-booking-service/internal/domain"
	getDaySlots "github.com/lumib/salon-booking-service/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date      string     `json:"date"`
	ServiceID string     `json:"serviceId"`
	Slots     []SlotView `json:"slots"`
	AllPassed bool       `json:"allPassed"`
}

// SlotView is the availability verdict of one catalog slot
type SlotView struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
	IsBooked  bool   `json:"isBooked"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotView, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotView{
			Label:     slot.Label.String(),
			Available: slot.Available,
			IsBooked:  slot.IsBooked,
		}
	}

	return &DaySlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Slots:     slots,
		AllPassed: resp.AllPassed,
	}
}

// ToUseCaseRequest builds the use case request from path and query input
func ToUseCaseRequest(serviceID, dateStr string) (*getDaySlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
