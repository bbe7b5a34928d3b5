package domain

import "time"

// CalendarCell is one cell of the month grid. A zero Day is leading
// padding before the first of the month.
type CalendarCell struct {
	Day int
}

// IsPadding returns true for the blank cells aligning the 1st to its weekday
func (c CalendarCell) IsPadding() bool {
	return c.Day == 0
}

// DaysInMonth returns the number of days in the month using the
// day-zero-of-next-month trick, which handles leap years for free
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks returns the weekday index (0 = Sunday) of the first day
// of the month, which equals the number of padding cells in the grid
func LeadingBlanks(month time.Month, year int) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// BuildMonthGrid produces the padded calendar grid for a month: padding
// cells for weekday alignment followed by cells for days 1..N
func BuildMonthGrid(month time.Month, year int) []CalendarCell {
	blanks := LeadingBlanks(month, year)
	days := DaysInMonth(month, year)

	cells := make([]CalendarCell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, CalendarCell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, CalendarCell{Day: d})
	}
	return cells
}
