package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeInterval is a half-open [Start, End) range on a single civil day,
// expressed in minutes from midnight (e.g., 540 for 9:00 AM).
type TimeInterval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overlaps reports whether two half-open intervals intersect. An interval
// ending exactly where another begins does not overlap.
func (a TimeInterval) Overlaps(b TimeInterval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Contains reports whether a candidate of the given duration starting at
// start fits entirely inside the interval.
func (a TimeInterval) Contains(start, durationMins int) bool {
	return start >= a.Start && start+durationMins <= a.End
}

// Valid reports whether the interval is well-formed.
func (a TimeInterval) Valid() bool {
	return a.Start >= 0 && a.End <= 24*60 && a.Start < a.End
}

// ParseClock converts an "HH:MM" wall-clock string to minutes from midnight.
func ParseClock(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", hhmm, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", hhmm, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", hhmm)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes from midnight back to "HH:MM".
func FormatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
