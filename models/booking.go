package models

// DurationKind is the user's course-duration choice.
type DurationKind string

const (
	DurationHalfDay DurationKind = "half-day"
	DurationFullDay DurationKind = "full-day"
)

// Slot labels shown to the user. Labels are drawn from this fixed set and
// must stay consistent with the duration kind (full-day selections always
// map to the full-day label).
const (
	SlotLabelMorning   = "Morning"
	SlotLabelAfternoon = "Afternoon"
	SlotLabelFullDay   = "Full day"
)

// DefaultSlotLabel returns the label a fresh selection of the given duration
// kind starts with.
func DefaultSlotLabel(kind DurationKind) string {
	if kind == DurationFullDay {
		return SlotLabelFullDay
	}
	return SlotLabelMorning
}

// SlotKindFor maps a (duration kind, slot label) pair to the backend slot kind.
func SlotKindFor(kind DurationKind, label string) SlotKind {
	if kind == DurationFullDay {
		return SlotFullDay
	}
	if label == SlotLabelAfternoon {
		return SlotHalfDayAfternoon
	}
	return SlotHalfDayMorning
}

// BookingSelection is the user's in-progress booking choice. It is owned by
// the booking session for the lifetime of the modal and discarded when the
// modal closes or the booking completes.
type BookingSelection struct {
	CourseID     string       `json:"courseId"`
	DurationKind DurationKind `json:"durationKind"`
	Price        float64      `json:"price"`
	SelectedDate string       `json:"selectedDate,omitempty"` // "2006-01-02", no time component
	SlotLabel    string       `json:"slotLabel"`
	VisibleYear  int          `json:"visibleYear"`
	VisibleMonth int          `json:"visibleMonth"` // 1..12
}

// ReservationDetails are the venue/participant fields collected before a
// payment intent is created.
type ReservationDetails struct {
	VenueName       string `json:"venueName"`
	StreetAddress   string `json:"streetAddress"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	Notes           string `json:"notes,omitempty"`
	MaxParticipants int    `json:"maxParticipants"`
}

// ReservationState is the phase of the reservation submitter.
type ReservationState string

const (
	StateCollectingDetails ReservationState = "collecting-details"
	StateCreatingIntent    ReservationState = "creating-intent"
	StateAwaitingPayment   ReservationState = "awaiting-payment"
	StateConfirmed         ReservationState = "confirmed"
	StateFailed            ReservationState = "failed"
)

// BookingSession holds the whole modal state between HTTP calls. Stored as
// JSON in Redis with a TTL; the server never mutates the backend-owned
// reservation directly, it only observes the creation call's outcome.
type BookingSession struct {
	SessionID string           `json:"sessionId"`
	UserID    string           `json:"userId,omitempty"`
	Selection BookingSelection `json:"selection"`

	// Fixed per-kind rates of the course being booked, captured at session
	// start so a duration switch can reset the price without a refetch.
	HalfDayRate float64 `json:"halfDayRate"`
	FullDayRate float64 `json:"fullDayRate"`

	// Availability for the visible month only; fully replaced on month change.
	Days     map[string]DayAvailability `json:"days,omitempty"`
	FetchTag uint64                     `json:"fetchTag"`

	State        ReservationState   `json:"state"`
	Details      ReservationDetails `json:"details,omitzero"`
	ClientSecret string             `json:"clientSecret,omitempty"`
	ErrorMessage string             `json:"errorMessage,omitempty"`
}

// Appointment is the server-owned reservation record, referenced by the
// admin dashboard. The client never mutates it directly.
type Appointment struct {
	ID              string `json:"id"`
	CourseID        string `json:"courseId"`
	CourseDuration  string `json:"courseDuration"`
	AppointmentType string `json:"appointmentType"`
	Date            string `json:"date"` // ISO timestamp
	Location        string `json:"location"`
	Notes           string `json:"notes,omitempty"`
	MaxParticipants int    `json:"maxParticipants"`
	Status          string `json:"status,omitempty"`
}
