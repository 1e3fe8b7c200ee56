package launch

import (
	"fmt"
	"time"
)

// DaysUntilLaunch returns the number of calendar days in UTC from the clock's
// current time to launchDate. It is positive for a future date, negative for
// a past one and zero when both fall on the same UTC day. A nil clock means
// SystemClock.
func DaysUntilLaunch(clock Clock, launchDate time.Time) (int, error) {
	return DaysUntilLaunchIn(clock, launchDate, time.UTC)
}

// DaysUntilLaunchIn is DaysUntilLaunch with day boundaries taken in loc.
// A nil loc means UTC.
func DaysUntilLaunchIn(clock Clock, launchDate time.Time, loc *time.Location) (int, error) {
	if launchDate.IsZero() {
		return 0, fmt.Errorf("%w: launch date is unset", ErrInvalidInput)
	}
	if clock == nil {
		clock = SystemClock
	}
	return DaysBetween(clock.Now(), launchDate, loc), nil
}

// DaysBetween returns the difference in civil days between from and to as
// observed in loc. Time of day is ignored, so 23:59 to 00:01 the next day is
// one day.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	return dayNumber(to.In(loc)) - dayNumber(from.In(loc))
}

// dayNumber returns the Julian Day Number of t's civil date, the integer part
// of the Julian Date at noon. Valid for dates after March 1, 4801 BC.
func dayNumber(t time.Time) int {
	y, m, d := t.Date()

	// Shift the year to start in March so the leap day falls last.
	a := (14 - int(m)) / 12
	yy := y + 4800 - a
	mm := int(m) + 12*a - 3

	return d + (153*mm+2)/5 + 365*yy + yy/4 - yy/100 + yy/400 - 32045
}
