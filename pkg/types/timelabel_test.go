package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLabel_Parse(t *testing.T) {
	tests := []struct {
		name       string
		label      TimeLabel
		wantHour   int
		wantMinute int
	}{
		{name: "morning slot", label: "8:30 AM", wantHour: 8, wantMinute: 30},
		{name: "late morning", label: "10:00 AM", wantHour: 10, wantMinute: 0},
		{name: "before noon", label: "11:30 AM", wantHour: 11, wantMinute: 30},
		{name: "afternoon adds twelve", label: "1:30 PM", wantHour: 13, wantMinute: 30},
		{name: "mid afternoon", label: "3:00 PM", wantHour: 15, wantMinute: 0},
		{name: "late afternoon", label: "4:30 PM", wantHour: 16, wantMinute: 30},
		{name: "midnight is hour zero", label: "12:00 AM", wantHour: 0, wantMinute: 0},
		{name: "noon stays twelve", label: "12:00 PM", wantHour: 12, wantMinute: 0},
		{name: "lowercase meridiem", label: "9:15 am", wantHour: 9, wantMinute: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := tt.label.Parse()

			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestTimeLabel_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		label TimeLabel
	}{
		{name: "empty", label: ""},
		{name: "missing meridiem", label: "8:30"},
		{name: "missing minutes", label: "8 AM"},
		{name: "unknown meridiem", label: "8:30 XM"},
		{name: "hour zero", label: "0:30 AM"},
		{name: "hour above twelve", label: "13:00 PM"},
		{name: "minute out of range", label: "8:61 AM"},
		{name: "not a time", label: "half past eight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.label.Parse()

			assert.ErrorIs(t, err, ErrInvalidTimeLabel)
		})
	}
}

func TestTimeLabel_AtOrBefore(t *testing.T) {
	// 11:00 AM on an arbitrary day
	now := time.Date(2026, time.March, 10, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		label  TimeLabel
		passed bool
	}{
		{name: "earlier slot has passed", label: "8:30 AM", passed: true},
		{name: "slot at the exact minute counts as passed", label: "11:00 AM", passed: true},
		{name: "later slot has not passed", label: "11:30 AM", passed: false},
		{name: "afternoon slot has not passed", label: "4:30 PM", passed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, err := tt.label.AtOrBefore(now)

			require.NoError(t, err)
			assert.Equal(t, tt.passed, passed)
		})
	}
}

func TestTimeLabel_MinuteOfDay(t *testing.T) {
	minute, err := TimeLabel("1:30 PM").MinuteOfDay()

	require.NoError(t, err)
	assert.Equal(t, 13*60+30, minute)
}
