package booking

import (
	"testing"

	"coursely/models"
)

func TestOfferedSlotsFullDay(t *testing.T) {
	day := &models.DayAvailability{Date: "2025-04-16", Slots: []models.SlotKind{models.SlotFullDay}}

	opts := OfferedSlots(models.DurationFullDay, day)
	if len(opts) != 1 {
		t.Fatalf("full-day duration offers exactly one option, got %d", len(opts))
	}
	if opts[0].Label != models.SlotLabelFullDay || !opts[0].Offered {
		t.Fatalf("full-day option should be offered, got %+v", opts[0])
	}
}

func TestOfferedSlotsHalfDayGating(t *testing.T) {
	day := &models.DayAvailability{Date: "2025-04-16", Slots: []models.SlotKind{models.SlotHalfDayMorning}}

	opts := OfferedSlots(models.DurationHalfDay, day)
	if len(opts) != 2 {
		t.Fatalf("half-day duration offers two options, got %d", len(opts))
	}
	if opts[0].Label != models.SlotLabelMorning || !opts[0].Offered {
		t.Fatalf("morning should be offered, got %+v", opts[0])
	}
	if opts[1].Label != models.SlotLabelAfternoon || opts[1].Offered {
		t.Fatalf("afternoon should not be offered, got %+v", opts[1])
	}
}

func TestOfferedSlotsNilDayOffersNothing(t *testing.T) {
	for _, kind := range []models.DurationKind{models.DurationHalfDay, models.DurationFullDay} {
		for _, opt := range OfferedSlots(kind, nil) {
			if opt.Offered {
				t.Fatalf("no slot may be offered without availability data, got %+v", opt)
			}
		}
	}
}
