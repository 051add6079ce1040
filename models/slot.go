package models

// Slot classification statuses, in precedence order: a slot in the past is
// always "past"; a future slot overlapping a break is "break" even when it
// also overlaps booking data.
const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
	SlotBreak     = "break"
	SlotPast      = "past"
)

// Slot is a generated, ephemeral candidate start time for a booking. Slots
// are computed fresh on every availability query and never persisted.
type Slot struct {
	Time   string `json:"time"` // "HH:MM"
	Start  int    `json:"start"`
	Status string `json:"status"`
}

// DayAvailability is the availability response for one professional on one
// date. Reason is set when Slots is empty so clients can render a day-off or
// fully-booked day differently from a fetch failure.
type DayAvailability struct {
	ProfessionalID string `json:"professionalId"`
	Date           string `json:"date"`
	DurationMins   int    `json:"durationMins"`
	Slots          []Slot `json:"slots"`
	Reason         string `json:"reason,omitempty"`
}
