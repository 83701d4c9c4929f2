package models

// SlotKind identifies a unit of bookable in-person training time.
type SlotKind string

const (
	SlotFullDay          SlotKind = "full-day"
	SlotHalfDayMorning   SlotKind = "half-day-morning"
	SlotHalfDayAfternoon SlotKind = "half-day-afternoon"
)

// DayAvailability is the set of slot kinds still bookable on a calendar date,
// as reported by the backend. Read-only to consumers.
type DayAvailability struct {
	Date  string     `json:"date"` // "2006-01-02"
	Slots []SlotKind `json:"slots"`
}

// Has reports whether the given slot kind is still bookable on this day.
func (d DayAvailability) Has(kind SlotKind) bool {
	for _, s := range d.Slots {
		if s == kind {
			return true
		}
	}
	return false
}

// DayAvailabilityMap keys a month's availability by date string for lookup.
func DayAvailabilityMap(days []DayAvailability) map[string]DayAvailability {
	m := make(map[string]DayAvailability, len(days))
	for _, d := range days {
		m[d.Date] = d
	}
	return m
}
