package booking

import (
	"time"

	"coursely/models"
)

// Pure transitions over the booking modal state. Everything here mutates
// only the passed session; network calls and persistence live in the
// session service.

// rateFor picks the course rate for a duration kind, falling back to the
// base price when a per-kind rate is not set.
func rateFor(course models.Course, kind models.DurationKind) float64 {
	if kind == models.DurationFullDay {
		if course.FullDayPrice > 0 {
			return course.FullDayPrice
		}
	} else if course.HalfDayPrice > 0 {
		return course.HalfDayPrice
	}
	return course.Price
}

// InitSession builds a fresh booking session for a course. The selection
// starts as a half-day booking with no date, looking at the current month.
func InitSession(course models.Course, userID string, now time.Time) *models.BookingSession {
	return &models.BookingSession{
		UserID:      userID,
		HalfDayRate: rateFor(course, models.DurationHalfDay),
		FullDayRate: rateFor(course, models.DurationFullDay),
		Selection: models.BookingSelection{
			CourseID:     course.ID,
			DurationKind: models.DurationHalfDay,
			Price:        rateFor(course, models.DurationHalfDay),
			SlotLabel:    models.DefaultSlotLabel(models.DurationHalfDay),
			VisibleYear:  now.Year(),
			VisibleMonth: int(now.Month()),
		},
		State: models.StateCollectingDetails,
	}
}

// SelectDuration sets the duration kind, resets the price to the kind's
// fixed rate and the slot label to the kind's default, regardless of any
// prior half-day sub-selection.
func SelectDuration(s *models.BookingSession, kind models.DurationKind) {
	s.Selection.DurationKind = kind
	if kind == models.DurationFullDay {
		s.Selection.Price = s.FullDayRate
	} else {
		s.Selection.Price = s.HalfDayRate
	}
	s.Selection.SlotLabel = models.DefaultSlotLabel(kind)
}

// SelectDate updates the selected date. Dates strictly before today are
// rejected as a no-op. When the date's month differs from the visible month
// the visible month moves with it, the stale month data is dropped and the
// caller must issue a fresh availability fetch.
func SelectDate(s *models.BookingSession, date time.Time, now time.Time) (monthChanged, ok bool) {
	day := startOfDay(date)
	if day.Before(startOfDay(now)) {
		return false, false
	}

	s.Selection.SelectedDate = day.Format(dateLayout)
	if day.Year() != s.Selection.VisibleYear || int(day.Month()) != s.Selection.VisibleMonth {
		setVisibleMonth(s, day.Year(), day.Month())
		return true, true
	}
	return false, true
}

// ChangeVisibleMonth moves the calendar without selecting a date. Returns
// false when the month is already visible.
func ChangeVisibleMonth(s *models.BookingSession, year int, month time.Month) bool {
	if year == s.Selection.VisibleYear && int(month) == s.Selection.VisibleMonth {
		return false
	}
	setVisibleMonth(s, year, month)
	return true
}

func setVisibleMonth(s *models.BookingSession, year int, month time.Month) {
	s.Selection.VisibleYear = year
	s.Selection.VisibleMonth = int(month)
	// The previous month's data must never gate the new month's slots.
	s.Days = nil
}

// BeginFetch commits a month change and tags the fetch about to be issued.
// A response is applied only if it still carries the latest tag, which makes
// "last request wins" explicit when the user flips months quickly.
func BeginFetch(s *models.BookingSession) uint64 {
	s.FetchTag++
	return s.FetchTag
}

// ApplyAvailability installs a month's availability, fully replacing any
// previous data. Stale responses (superseded tag or no-longer-visible month)
// are discarded.
func ApplyAvailability(s *models.BookingSession, tag uint64, year int, month time.Month, days []models.DayAvailability) bool {
	if tag != s.FetchTag {
		return false
	}
	if year != s.Selection.VisibleYear || int(month) != s.Selection.VisibleMonth {
		return false
	}
	s.Days = models.DayAvailabilityMap(days)
	return true
}

// SelectSlot accepts a slot label only when the slot selector reports it as
// offered for the current date and duration; otherwise it is a no-op.
func SelectSlot(s *models.BookingSession, label string) bool {
	day := dayFor(s, s.Selection.SelectedDate)
	if !slotOffered(s.Selection.DurationKind, day, label) {
		return false
	}
	s.Selection.SlotLabel = label
	return true
}

// IsCurrentSelectionAvailable reports whether the slot kind implied by the
// current (duration, label) pair is present in the selected date's
// availability. False while no data exists for the date (fetch pending or
// failed): booking cannot proceed until availability is confirmed.
func IsCurrentSelectionAvailable(s *models.BookingSession) bool {
	day := dayFor(s, s.Selection.SelectedDate)
	if day == nil {
		return false
	}
	return day.Has(models.SlotKindFor(s.Selection.DurationKind, s.Selection.SlotLabel))
}

// SlotOptions returns the gated slot options for the selected date.
func SlotOptions(s *models.BookingSession) []SlotOption {
	return OfferedSlots(s.Selection.DurationKind, dayFor(s, s.Selection.SelectedDate))
}

func dayFor(s *models.BookingSession, date string) *models.DayAvailability {
	if date == "" || s.Days == nil {
		return nil
	}
	day, ok := s.Days[date]
	if !ok {
		return nil
	}
	return &day
}
