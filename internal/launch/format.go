package launch

import (
	"fmt"
	"time"
)

// DateUnavailable is shown in place of a launch date that cannot be parsed.
const DateUnavailable = "Date unavailable"

const launchDateLayout = "Jan 2, 2006 at 3:04 PM"

// FormatCountdown renders a countdown in seconds as MM:SS. Minutes are not
// wrapped into hours; negative values render as 00:00.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatLaunchDate renders an RFC 3339 launch date in loc, e.g.
// "Mar 24, 2006 at 10:30 PM". A nil loc means UTC.
func FormatLaunchDate(dateUTC string, loc *time.Location) string {
	t, ok := ParseDate(dateUTC)
	if !ok {
		return DateUnavailable
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(launchDateLayout)
}
