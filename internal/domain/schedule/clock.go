package schedule

import (
	"fmt"
	"time"
)

// ClockTime is a time of day expressed as minutes since midnight.
type ClockTime int

// MinutesPerDay is the number of ClockTime units in one day.
const MinutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q (expected HH:MM): %w", s, err)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

// ClockOf truncates a wall-clock instant to its minute of day.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}
