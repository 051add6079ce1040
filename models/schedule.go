package models

import (
	"fmt"
	"time"
)

// DailyAvailability describes one professional's working pattern for a
// single day of the week. WorkIntervals may hold several disjoint ranges
// (split shifts); BreakIntervals are carved out of the working ranges.
// Either representation of a lunch break is accepted: an explicit break
// interval, or two disjoint work intervals with the gap already excluded.
type DailyAvailability struct {
	IsDayOff       bool           `bson:"isDayOff" json:"isDayOff"`
	WorkIntervals  []TimeInterval `bson:"workIntervals" json:"workIntervals"`
	BreakIntervals []TimeInterval `bson:"breakIntervals,omitempty" json:"breakIntervals,omitempty"`
}

// WeeklySchedule maps each day of the week (Sunday..Saturday) to its
// availability record. Owned by a Professional; mutated only through the
// provider-side schedule endpoints, read-only from the booking flow.
type WeeklySchedule [7]DailyAvailability

// ForDate returns the availability record governing the given civil date.
func (w WeeklySchedule) ForDate(date time.Time) DailyAvailability {
	return w[int(date.Weekday())]
}

// Validate checks every interval of every day for well-formedness.
func (w WeeklySchedule) Validate() error {
	for day, d := range w {
		for _, iv := range d.WorkIntervals {
			if !iv.Valid() {
				return fmt.Errorf("work interval %s-%s on %s is invalid",
					FormatClock(iv.Start), FormatClock(iv.End), time.Weekday(day))
			}
		}
		for _, iv := range d.BreakIntervals {
			if !iv.Valid() {
				return fmt.Errorf("break interval %s-%s on %s is invalid",
					FormatClock(iv.Start), FormatClock(iv.End), time.Weekday(day))
			}
		}
	}
	return nil
}

// LegacyDaySchedule is the retired per-day shape some professional documents
// still carry: one contiguous range and an active flag, no multi-interval or
// break support. It is upgraded to DailyAvailability on first read and the
// document rewritten; the rest of the codebase never sees it.
type LegacyDaySchedule struct {
	Active    bool   `bson:"active" json:"active"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// Upgrade converts a legacy record to the multi-interval shape.
func (l LegacyDaySchedule) Upgrade() (DailyAvailability, error) {
	if !l.Active {
		return DailyAvailability{IsDayOff: true}, nil
	}
	start, err := ParseClock(l.StartTime)
	if err != nil {
		return DailyAvailability{}, fmt.Errorf("legacy start time: %w", err)
	}
	end, err := ParseClock(l.EndTime)
	if err != nil {
		return DailyAvailability{}, fmt.Errorf("legacy end time: %w", err)
	}
	if start >= end {
		return DailyAvailability{}, fmt.Errorf("legacy range %s-%s is empty", l.StartTime, l.EndTime)
	}
	return DailyAvailability{
		WorkIntervals: []TimeInterval{{Start: start, End: end}},
	}, nil
}
