package booking

import "coursely/models"

// SlotOption is one selectable slot radio in the booking modal.
type SlotOption struct {
	Label   string          `json:"label"`
	Kind    models.SlotKind `json:"kind"`
	Offered bool            `json:"offered"`
}

// OfferedSlots gates the up-to-three slot options for a duration kind against
// the day's availability. A nil day (fetch pending or failed) offers nothing.
// Full-day selections show only the full-day option; half-day selections show
// morning and afternoon, each gated independently.
func OfferedSlots(kind models.DurationKind, day *models.DayAvailability) []SlotOption {
	if kind == models.DurationFullDay {
		return []SlotOption{
			{Label: models.SlotLabelFullDay, Kind: models.SlotFullDay, Offered: day != nil && day.Has(models.SlotFullDay)},
		}
	}
	return []SlotOption{
		{Label: models.SlotLabelMorning, Kind: models.SlotHalfDayMorning, Offered: day != nil && day.Has(models.SlotHalfDayMorning)},
		{Label: models.SlotLabelAfternoon, Kind: models.SlotHalfDayAfternoon, Offered: day != nil && day.Has(models.SlotHalfDayAfternoon)},
	}
}

// slotOffered reports whether the given label is currently selectable.
func slotOffered(kind models.DurationKind, day *models.DayAvailability, label string) bool {
	for _, opt := range OfferedSlots(kind, day) {
		if opt.Label == label {
			return opt.Offered
		}
	}
	return false
}
