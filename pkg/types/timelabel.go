package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeLabel is returned for labels that do not follow the 12-hour clock format
	ErrInvalidTimeLabel = errors.New("invalid time label format, expected H:MM AM/PM")
)

// TimeLabel is a 12-hour clock slot label such as "8:30 AM" or "1:30 PM".
// It is the wire and storage representation of a daily time slot.
type TimeLabel string

// String returns the label as a plain string
func (t TimeLabel) String() string {
	return string(t)
}

// IsZero returns true if the label is empty
func (t TimeLabel) IsZero() bool {
	return t == ""
}

// Parse converts the 12-hour label into a 24-hour hour/minute pair.
// "12 AM" maps to hour 0, "12 PM" maps to hour 12, other PM hours add 12.
func (t TimeLabel) Parse() (hour, minute int, err error) {
	parts := strings.Fields(string(t))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, t)
	}

	clock := strings.Split(parts[0], ":")
	if len(clock) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, t)
	}

	hour, err = strconv.Atoi(clock[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, t)
	}

	minute, err = strconv.Atoi(clock[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, t)
	}

	switch strings.ToUpper(parts[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, t)
	}

	return hour, minute, nil
}

// Validate checks that the label parses as a 12-hour clock time
func (t TimeLabel) Validate() error {
	_, _, err := t.Parse()
	return err
}

// MinuteOfDay returns the label's position within the day in minutes
func (t TimeLabel) MinuteOfDay() (int, error) {
	hour, minute, err := t.Parse()
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// AtOrBefore reports whether the label's time of day is at or before
// the given instant's time of day. Seconds within the current minute
// already count as elapsed.
func (t TimeLabel) AtOrBefore(now time.Time) (bool, error) {
	slot, err := t.MinuteOfDay()
	if err != nil {
		return false, err
	}
	return slot <= now.Hour()*60+now.Minute(), nil
}
