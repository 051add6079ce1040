package booking

import (
	"testing"
	"time"

	"glambook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, slots []models.Slot, clock string) models.Slot {
	t.Helper()
	for _, s := range slots {
		if s.Time == clock {
			return s
		}
	}
	t.Fatalf("no slot at %s", clock)
	return models.Slot{}
}

func hasSlotAt(slots []models.Slot, clock string) bool {
	for _, s := range slots {
		if s.Time == clock {
			return true
		}
	}
	return false
}

func statusByTime(slots []models.Slot) map[string]string {
	m := make(map[string]string, len(slots))
	for _, s := range slots {
		m[s.Time] = s.Status
	}
	return m
}

// Morning shift, nothing booked: every quarter-hour start that still fits
// the 30-minute service before close.
func TestGenerateSlotsOpenMorning(t *testing.T) {
	day := models.DailyAvailability{
		WorkIntervals: []models.TimeInterval{{Start: 540, End: 720}}, // 09:00-12:00
	}
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, nil, 30, "2026-09-07", now)

	require.Len(t, slots, 11)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "11:30", slots[len(slots)-1].Time)
	// 11:45 would run past close.
	assert.False(t, hasSlotAt(slots, "11:45"))
	for _, s := range slots {
		assert.Equal(t, models.SlotAvailable, s.Status, s.Time)
	}
}

// A booking 10:00-10:30 shadows every candidate whose half-open window
// intersects it. The 09:30 candidate ends exactly at 10:00 and stays free.
func TestGenerateSlotsWithBooking(t *testing.T) {
	day := models.DailyAvailability{
		WorkIntervals: []models.TimeInterval{{Start: 540, End: 720}},
	}
	booked := []models.TimeInterval{{Start: 600, End: 630}}
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, booked, 30, "2026-09-07", now)
	byTime := statusByTime(slots)

	assert.Equal(t, models.SlotBooked, byTime["09:45"])
	assert.Equal(t, models.SlotBooked, byTime["10:00"])
	assert.Equal(t, models.SlotBooked, byTime["10:15"])
	assert.Equal(t, models.SlotAvailable, byTime["09:30"])
	assert.Equal(t, models.SlotAvailable, byTime["10:30"])
}

// Midday query: everything before the clock is past, the lunch break is
// break, the afternoon is open.
func TestGenerateSlotsMiddayWithBreak(t *testing.T) {
	day := models.DailyAvailability{
		WorkIntervals:  []models.TimeInterval{{Start: 540, End: 1080}}, // 09:00-18:00
		BreakIntervals: []models.TimeInterval{{Start: 720, End: 780}},  // 12:00-13:00
	}
	now := time.Date(2026, 9, 7, 11, 50, 0, 0, time.UTC)

	slots := GenerateSlots(day, nil, 15, "2026-09-07", now)
	byTime := statusByTime(slots)

	assert.Equal(t, models.SlotPast, byTime["09:00"])
	assert.Equal(t, models.SlotPast, byTime["11:45"]) // 11:45 < 11:50
	assert.Equal(t, models.SlotBreak, byTime["12:00"])
	assert.Equal(t, models.SlotBreak, byTime["12:45"])
	assert.Equal(t, models.SlotAvailable, byTime["13:00"])
	assert.Equal(t, models.SlotAvailable, byTime["17:45"])
}

func TestGenerateSlotsDayOffShortCircuit(t *testing.T) {
	day := models.DailyAvailability{
		IsDayOff:      true,
		WorkIntervals: []models.TimeInterval{{Start: 540, End: 1020}},
	}
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

	assert.Empty(t, GenerateSlots(day, nil, 30, "2026-09-07", now))
}

// A future slot inside a break reports break even when booking data also
// covers it; a past slot inside a break reports past.
func TestGenerateSlotsClassificationPrecedence(t *testing.T) {
	day := models.DailyAvailability{
		WorkIntervals:  []models.TimeInterval{{Start: 540, End: 1080}},
		BreakIntervals: []models.TimeInterval{{Start: 720, End: 780}},
	}
	booked := []models.TimeInterval{{Start: 720, End: 750}, {Start: 555, End: 585}}
	now := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, booked, 15, "2026-09-07", now)
	byTime := statusByTime(slots)

	assert.Equal(t, models.SlotBreak, byTime["12:00"])
	assert.Equal(t, models.SlotPast, byTime["09:15"])
}

func TestGenerateSlotsPastOnlyAppliesToQueryDate(t *testing.T) {
	day := models.DailyAvailability{
		WorkIntervals: []models.TimeInterval{{Start: 540, End: 720}},
	}
	now := time.Date(2026, 9, 7, 23, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, nil, 30, "2026-09-08", now)
	for _, s := range slots {
		assert.Equal(t, models.SlotAvailable, s.Status, s.Time)
	}
}

func TestGenerateSlotsShortIntervalYieldsNothing(t *testing.T) {
	day := models.DailyAvailability{
		WorkIntervals: []models.TimeInterval{{Start: 540, End: 560}}, // 20 min
	}
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

	assert.Empty(t, GenerateSlots(day, nil, 30, "2026-09-07", now))
}

// Overlapping work intervals must not duplicate a start time; first
// classification wins.
func TestGenerateSlotsDeduplicatesOverlappingWorkIntervals(t *testing.T) {
	day := models.DailyAvailability{
		WorkIntervals: []models.TimeInterval{
			{Start: 540, End: 720},
			{Start: 600, End: 840},
		},
	}
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, nil, 30, "2026-09-07", now)

	seen := make(map[int]bool)
	for _, s := range slots {
		require.False(t, seen[s.Start], "duplicate slot at %s", s.Time)
		seen[s.Start] = true
	}
	// Sorted ascending across both intervals.
	for i := 1; i < len(slots); i++ {
		require.Less(t, slots[i-1].Start, slots[i].Start)
	}
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "13:30", slots[len(slots)-1].Time)
}

func TestGenerateSlotsIdempotent(t *testing.T) {
	day := models.DailyAvailability{
		WorkIntervals:  []models.TimeInterval{{Start: 540, End: 1080}},
		BreakIntervals: []models.TimeInterval{{Start: 720, End: 780}},
	}
	booked := []models.TimeInterval{{Start: 600, End: 660}}
	now := time.Date(2026, 9, 7, 11, 50, 0, 0, time.UTC)

	first := GenerateSlots(day, booked, 30, "2026-09-07", now)
	second := GenerateSlots(day, booked, 30, "2026-09-07", now)
	assert.Equal(t, first, second)
}

func TestGenerateSlotsLongServiceStaysOnQuarterHours(t *testing.T) {
	day := models.DailyAvailability{
		WorkIntervals: []models.TimeInterval{{Start: 540, End: 720}},
	}
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, nil, 50, "2026-09-07", now)

	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.Zero(t, s.Start%SlotStepMins, s.Time)
	}
	// Last start must still fit 50 minutes before 12:00.
	last := slots[len(slots)-1]
	assert.LessOrEqual(t, last.Start+50, 720)
	assert.Equal(t, "11:00", last.Time)

	_ = mustSlot(t, slots, "09:15")
}
