package booking

import "time"

const dateLayout = "2006-01-02"

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Disabled bool   `json:"disabled"`
}

// MonthGrid is a weekday-aligned month for the calendar selector. Rendering
// pads the first week with LeadingBlanks empty cells (Sunday-first).
type MonthGrid struct {
	Year          int           `json:"year"`
	Month         time.Month    `json:"month"`
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []CalendarDay `json:"days"`
}

// BuildMonthGrid lays out the given month. Days strictly before today are
// disabled; today itself stays selectable. Selecting a disabled day is a
// no-op, enforced in SelectDate rather than here.
func BuildMonthGrid(year int, month time.Month, now time.Time) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	today := startOfDay(now)

	grid := MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
	}
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		grid.Days = append(grid.Days, CalendarDay{
			Day:      d.Day(),
			Date:     d.Format(dateLayout),
			Disabled: d.Before(today),
		})
	}
	return grid
}

// AddMonths navigates the visible month by delta, normalizing across year
// boundaries.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// monthBounds returns the first and last day of a month.
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
