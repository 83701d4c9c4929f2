package booking

import (
	"testing"
	"time"

	"coursely/models"
)

var testNow = time.Date(2025, time.April, 10, 9, 30, 0, 0, time.UTC)

func testCourse() models.Course {
	return models.Course{
		ID:           "course-1",
		Title:        "Forklift Safety",
		Price:        500,
		HalfDayPrice: 300,
		FullDayPrice: 550,
		InPerson:     true,
		Published:    true,
	}
}

func newTestSession() *models.BookingSession {
	return InitSession(testCourse(), "user-1", testNow)
}

func applyMonth(t *testing.T, s *models.BookingSession, days []models.DayAvailability) {
	t.Helper()
	tag := BeginFetch(s)
	if !ApplyAvailability(s, tag, s.Selection.VisibleYear, time.Month(s.Selection.VisibleMonth), days) {
		t.Fatalf("fresh availability unexpectedly discarded")
	}
}

func TestInitSessionDefaults(t *testing.T) {
	s := newTestSession()
	if s.Selection.DurationKind != models.DurationHalfDay {
		t.Fatalf("expected half-day default, got %s", s.Selection.DurationKind)
	}
	if s.Selection.Price != 300 {
		t.Fatalf("expected half-day rate 300, got %v", s.Selection.Price)
	}
	if s.Selection.SlotLabel != models.SlotLabelMorning {
		t.Fatalf("expected default label Morning, got %q", s.Selection.SlotLabel)
	}
	if s.Selection.VisibleYear != 2025 || s.Selection.VisibleMonth != 4 {
		t.Fatalf("expected visible month 2025-04, got %d-%d", s.Selection.VisibleYear, s.Selection.VisibleMonth)
	}
	if s.State != models.StateCollectingDetails {
		t.Fatalf("expected collecting-details, got %s", s.State)
	}
}

func TestSelectDatePastDateIsNoOp(t *testing.T) {
	s := newTestSession()
	yesterday := testNow.AddDate(0, 0, -1)

	monthChanged, ok := SelectDate(s, yesterday, testNow)
	if ok || monthChanged {
		t.Fatalf("past date should be rejected, got ok=%v monthChanged=%v", ok, monthChanged)
	}
	if s.Selection.SelectedDate != "" {
		t.Fatalf("selected date changed on rejected selection: %q", s.Selection.SelectedDate)
	}
}

func TestSelectDateTodayIsAllowed(t *testing.T) {
	s := newTestSession()
	if _, ok := SelectDate(s, testNow, testNow); !ok {
		t.Fatalf("today should be selectable")
	}
	if s.Selection.SelectedDate != "2025-04-10" {
		t.Fatalf("expected 2025-04-10, got %q", s.Selection.SelectedDate)
	}
}

func TestSelectDateMonthChangeDropsStaleDays(t *testing.T) {
	s := newTestSession()
	applyMonth(t, s, []models.DayAvailability{
		{Date: "2025-04-16", Slots: []models.SlotKind{models.SlotFullDay}},
	})

	monthChanged, ok := SelectDate(s, time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC), testNow)
	if !ok || !monthChanged {
		t.Fatalf("expected accepted month-changing selection, got ok=%v monthChanged=%v", ok, monthChanged)
	}
	if s.Selection.VisibleYear != 2025 || s.Selection.VisibleMonth != 5 {
		t.Fatalf("visible month not moved, got %d-%d", s.Selection.VisibleYear, s.Selection.VisibleMonth)
	}
	if s.Days != nil {
		t.Fatalf("stale month data must be dropped on month change")
	}
	if IsCurrentSelectionAvailable(s) {
		t.Fatalf("selection cannot be available before the new month is fetched")
	}
}

func TestSelectDurationResetsLabelAndPrice(t *testing.T) {
	s := newTestSession()
	applyMonth(t, s, []models.DayAvailability{
		{Date: "2025-04-16", Slots: []models.SlotKind{models.SlotHalfDayMorning, models.SlotHalfDayAfternoon}},
	})
	if _, ok := SelectDate(s, time.Date(2025, time.April, 16, 0, 0, 0, 0, time.UTC), testNow); !ok {
		t.Fatalf("date selection failed")
	}
	if !SelectSlot(s, models.SlotLabelAfternoon) {
		t.Fatalf("afternoon slot should be selectable")
	}

	SelectDuration(s, models.DurationFullDay)
	if s.Selection.SlotLabel != models.SlotLabelFullDay {
		t.Fatalf("full-day switch must reset the label, got %q", s.Selection.SlotLabel)
	}
	if s.Selection.Price != 550 {
		t.Fatalf("full-day switch must reset the price, got %v", s.Selection.Price)
	}

	SelectDuration(s, models.DurationHalfDay)
	if s.Selection.SlotLabel != models.SlotLabelMorning || s.Selection.Price != 300 {
		t.Fatalf("half-day switch must reset label/price, got %q/%v", s.Selection.SlotLabel, s.Selection.Price)
	}
}

func TestFullDayUnavailableWhenDayExcludesIt(t *testing.T) {
	s := newTestSession()
	applyMonth(t, s, []models.DayAvailability{
		{Date: "2025-04-16", Slots: []models.SlotKind{models.SlotHalfDayMorning}},
	})
	if _, ok := SelectDate(s, time.Date(2025, time.April, 16, 0, 0, 0, 0, time.UTC), testNow); !ok {
		t.Fatalf("date selection failed")
	}

	SelectDuration(s, models.DurationFullDay)
	if IsCurrentSelectionAvailable(s) {
		t.Fatalf("full-day must be unavailable when the day offers no full-day slot")
	}
}

func TestSelectSlotRejectsUnofferedLabel(t *testing.T) {
	s := newTestSession()
	applyMonth(t, s, []models.DayAvailability{
		{Date: "2025-04-16", Slots: []models.SlotKind{models.SlotHalfDayMorning}},
	})
	if _, ok := SelectDate(s, time.Date(2025, time.April, 16, 0, 0, 0, 0, time.UTC), testNow); !ok {
		t.Fatalf("date selection failed")
	}

	before := s.Selection.SlotLabel
	if SelectSlot(s, models.SlotLabelAfternoon) {
		t.Fatalf("afternoon must be rejected when only morning is available")
	}
	if s.Selection.SlotLabel != before {
		t.Fatalf("rejected selection must not change state")
	}

	if !SelectSlot(s, models.SlotLabelMorning) {
		t.Fatalf("morning should be selectable")
	}
	if !IsCurrentSelectionAvailable(s) {
		t.Fatalf("morning selection should be available")
	}
}

func TestIsCurrentSelectionAvailableWithoutData(t *testing.T) {
	s := newTestSession()
	if _, ok := SelectDate(s, time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC), testNow); !ok {
		t.Fatalf("date selection failed")
	}
	// No availability applied: fetch pending or failed.
	if IsCurrentSelectionAvailable(s) {
		t.Fatalf("selection must not be available before availability is confirmed")
	}
}

func TestApplyAvailabilityLastRequestWins(t *testing.T) {
	s := newTestSession()

	staleTag := BeginFetch(s)
	freshTag := BeginFetch(s)

	stale := []models.DayAvailability{{Date: "2025-04-01", Slots: []models.SlotKind{models.SlotFullDay}}}
	fresh := []models.DayAvailability{{Date: "2025-04-02", Slots: []models.SlotKind{models.SlotHalfDayMorning}}}

	if ApplyAvailability(s, staleTag, 2025, time.April, stale) {
		t.Fatalf("superseded fetch must be discarded")
	}
	if !ApplyAvailability(s, freshTag, 2025, time.April, fresh) {
		t.Fatalf("latest fetch must be applied")
	}
	if _, ok := s.Days["2025-04-01"]; ok {
		t.Fatalf("stale data leaked into the session")
	}
	if _, ok := s.Days["2025-04-02"]; !ok {
		t.Fatalf("fresh data missing from the session")
	}
}

func TestApplyAvailabilityRejectsWrongMonth(t *testing.T) {
	s := newTestSession()
	tag := BeginFetch(s)

	if !ChangeVisibleMonth(s, 2025, time.May) {
		t.Fatalf("month change expected")
	}
	if ApplyAvailability(s, tag, 2025, time.April, []models.DayAvailability{{Date: "2025-04-01"}}) {
		t.Fatalf("response for a no-longer-visible month must be discarded")
	}
}
