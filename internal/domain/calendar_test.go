package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		year  int
		want  int
	}{
		{name: "thirty-one days", month: time.January, year: 2026, want: 31},
		{name: "thirty days", month: time.April, year: 2026, want: 30},
		{name: "february", month: time.February, year: 2026, want: 28},
		{name: "leap february", month: time.February, year: 2024, want: 29},
		{name: "century non-leap", month: time.February, year: 1900, want: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.month, tt.year))
		})
	}
}

func TestLeadingBlanks(t *testing.T) {
	// June 2024 starts on a Saturday, September 2025 on a Monday,
	// February 2026 on a Sunday
	assert.Equal(t, 6, LeadingBlanks(time.June, 2024))
	assert.Equal(t, 1, LeadingBlanks(time.September, 2025))
	assert.Equal(t, 0, LeadingBlanks(time.February, 2026))
}

func TestBuildMonthGrid(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		cells := BuildMonthGrid(month, 2026)

		blanks := LeadingBlanks(month, 2026)
		days := DaysInMonth(month, 2026)
		assert.Len(t, cells, blanks+days)
		assert.GreaterOrEqual(t, blanks, 0)
		assert.LessOrEqual(t, blanks, 6)

		for i, cell := range cells {
			if i < blanks {
				assert.True(t, cell.IsPadding(), "cell %d of %s should be padding", i, month)
			} else {
				assert.Equal(t, i-blanks+1, cell.Day, "cell %d of %s", i, month)
			}
		}
	}
}
