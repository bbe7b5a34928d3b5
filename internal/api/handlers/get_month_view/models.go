package get_month_view

import (
	getMonthView "github.com/lumib/salon-booking-service/internal/usecase/get_month_view"
)

// MonthViewResponse HTTP response model
type MonthViewResponse struct {
	Month        int            `json:"month"`
	Year         int            `json:"year"`
	Cells        []CalendarCell `json:"cells"`
	DayCounts    map[int]int    `json:"dayCounts"`
	DisabledDays []int          `json:"disabledDays"`
	TodayDay     int            `json:"todayDay,omitempty"`
}

// CalendarCell is one grid position; Day 0 marks leading padding
type CalendarCell struct {
	Day     int  `json:"day"`
	Padding bool `json:"padding"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getMonthView.Response) *MonthViewResponse {
	cells := make([]CalendarCell, len(resp.Cells))
	for i, cell := range resp.Cells {
		cells[i] = CalendarCell{
			Day:     cell.Day,
			Padding: cell.IsPadding(),
		}
	}

	dayCounts := resp.DayCounts
	if dayCounts == nil {
		dayCounts = map[int]int{}
	}
	disabled := resp.DisabledDays
	if disabled == nil {
		disabled = []int{}
	}

	return &MonthViewResponse{
		Month:        resp.Month,
		Year:         resp.Year,
		Cells:        cells,
		DayCounts:    dayCounts,
		DisabledDays: disabled,
		TodayDay:     resp.TodayDay,
	}
}
