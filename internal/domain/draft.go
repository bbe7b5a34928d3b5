package domain

import (
	"fmt"
	"time"

	"github.com/lumib/salon-booking-service/pkg/types"
)

// DraftSelection is the single in-flight booking selection of a session.
// Month and Year track the calendar view the day was picked from, so the
// committed date can be formatted without extra state.
type DraftSelection struct {
	ServiceID string          `json:"serviceId"`
	Day       int             `json:"day"` // 0 = unset
	TimeLabel types.TimeLabel `json:"timeLabel"`
	PhotoURLs []string        `json:"photoUrls"`
	Month     time.Month      `json:"month"`
	Year      int             `json:"year"`
}

// IsComplete reports whether the three required fields are all set.
// Photos are optional and never gate completion.
func (d *DraftSelection) IsComplete() bool {
	return d.ServiceID != "" && d.Day != 0 && !d.TimeLabel.IsZero()
}

// Reset clears service, day, time and photos together. The displayed
// month is kept so the calendar does not jump after a commit.
func (d *DraftSelection) Reset() {
	d.ServiceID = ""
	d.Day = 0
	d.TimeLabel = ""
	d.PhotoURLs = nil
}

// Date formats the selected day within the displayed month as YYYY-MM-DD
func (d *DraftSelection) Date() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
