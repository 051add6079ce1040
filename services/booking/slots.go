package booking

import (
	"sort"
	"time"

	"glambook/models"
)

// SlotStepMins is the cursor step between candidate start times. It is
// deliberately independent of service duration so slot starts always land
// on quarter-hour boundaries no matter how long the service runs.
const SlotStepMins = 15

// GenerateSlots computes the classified slot candidates for one professional
// on one date. It is pure: schedule, booked intervals, duration and clock
// all come in as arguments, so two calls with identical inputs yield
// identical output.
//
// Classification precedence per candidate: past, then break, then booked.
// A slot already in the past reports past even during a break; a future slot
// overlapping both a break and a booking reports break, since the break
// should never have been bookable in the first place.
func GenerateSlots(day models.DailyAvailability, booked []models.TimeInterval, durationMins int, date string, now time.Time) []models.Slot {
	if day.IsDayOff {
		return nil
	}

	isToday := now.Format("2006-01-02") == date
	nowMins := now.Hour()*60 + now.Minute()

	// Work intervals may overlap; the first classification for a given
	// start time wins.
	seen := make(map[int]bool)
	var slots []models.Slot

	for _, work := range day.WorkIntervals {
		for cursor := work.Start; cursor+durationMins <= work.End; cursor += SlotStepMins {
			if seen[cursor] {
				continue
			}
			seen[cursor] = true

			candidate := models.TimeInterval{Start: cursor, End: cursor + durationMins}
			status := models.SlotAvailable
			switch {
			case isToday && cursor < nowMins:
				status = models.SlotPast
			case overlapsAny(candidate, day.BreakIntervals):
				status = models.SlotBreak
			case overlapsAny(candidate, booked):
				status = models.SlotBooked
			}

			slots = append(slots, models.Slot{
				Time:   models.FormatClock(cursor),
				Start:  cursor,
				Status: status,
			})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start < slots[j].Start
	})
	return slots
}

func overlapsAny(candidate models.TimeInterval, intervals []models.TimeInterval) bool {
	for _, iv := range intervals {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// bookedIntervals projects appointments onto their time windows.
func bookedIntervals(appts []models.Appointment) []models.TimeInterval {
	intervals := make([]models.TimeInterval, 0, len(appts))
	for _, a := range appts {
		intervals = append(intervals, a.Interval())
	}
	return intervals
}
