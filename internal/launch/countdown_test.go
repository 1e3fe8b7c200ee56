package launch

import (
	"errors"
	"sync"
	"testing"
	"time"
)

var newYear2024 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDaysUntilLaunch_TenDays(t *testing.T) {
	launchDate := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	got, err := DaysUntilLaunch(FixedClock(newYear2024), launchDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Errorf("DaysUntilLaunch = %d, want 10", got)
	}
}

func TestDaysUntilLaunch_NowIsZero(t *testing.T) {
	now := time.Date(2024, 7, 4, 13, 37, 0, 0, time.UTC)
	got, err := DaysUntilLaunch(FixedClock(now), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("DaysUntilLaunch(now) = %d, want 0", got)
	}
}

func TestDaysUntilLaunch_Sign(t *testing.T) {
	clock := FixedClock(newYear2024)
	tests := []struct {
		name   string
		launch time.Time
		want   int
	}{
		{"one day ahead", newYear2024.Add(24 * time.Hour), 1},
		{"one day behind", newYear2024.Add(-24 * time.Hour), -1},
		{"a year behind", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), -365},
		{"leap year ahead", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 366},
		{"later same day", newYear2024.Add(23*time.Hour + 59*time.Minute), 0},
		{"one minute before midnight", newYear2024.Add(-time.Minute), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysUntilLaunch(clock, tt.launch)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DaysUntilLaunch(%s) = %d, want %d", tt.launch.Format(time.RFC3339), got, tt.want)
			}
		})
	}
}

func TestDaysUntilLaunch_CalendarBoundary(t *testing.T) {
	// Two minutes apart but on different UTC days.
	now := time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)
	launchDate := time.Date(2024, 3, 10, 0, 1, 0, 0, time.UTC)
	got, _ := DaysUntilLaunch(FixedClock(now), launchDate)
	if got != 1 {
		t.Errorf("DaysUntilLaunch across midnight = %d, want 1", got)
	}
}

func TestDaysUntilLaunch_Monotonic(t *testing.T) {
	clock := FixedClock(time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC))
	start := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	prev, err := DaysUntilLaunch(clock, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for d := start.Add(7 * time.Hour); d.Before(start.AddDate(1, 0, 0)); d = d.Add(7 * time.Hour) {
		got, err := DaysUntilLaunch(clock, d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got < prev {
			t.Fatalf("DaysUntilLaunch decreased from %d to %d at %s", prev, got, d.Format(time.RFC3339))
		}
		prev = got
	}
}

func TestDaysUntilLaunch_ZeroDate(t *testing.T) {
	_, err := DaysUntilLaunch(FixedClock(newYear2024), time.Time{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero launch date error = %v, want ErrInvalidInput", err)
	}
}

func TestDaysUntilLaunch_NilClockUsesSystemClock(t *testing.T) {
	future := time.Now().AddDate(0, 0, 30)
	got, err := DaysUntilLaunch(nil, future)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Allow one day of slack if the test straddles UTC midnight.
	if got < 29 || got > 31 {
		t.Errorf("DaysUntilLaunch(nil, +30d) = %d, want ~30", got)
	}
}

func TestDaysUntilLaunchIn_Location(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 2024-01-01 20:00 UTC is already Jan 2 in Tokyo.
	now := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	launchDate := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	utcDays, _ := DaysUntilLaunchIn(FixedClock(now), launchDate, nil)
	if utcDays != 1 {
		t.Errorf("UTC days = %d, want 1", utcDays)
	}
	tokyoDays, _ := DaysUntilLaunchIn(FixedClock(now), launchDate, tokyo)
	if tokyoDays != 0 {
		t.Errorf("Tokyo days = %d, want 0", tokyoDays)
	}
}

func TestDaysBetween_LongSpan(t *testing.T) {
	from := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	to := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	// 100 years with 25 leap days (2000 is leap, 2100 falls outside).
	if got := DaysBetween(from, to, time.UTC); got != 36525 {
		t.Errorf("DaysBetween(2000, 2100) = %d, want 36525", got)
	}
	if got := DaysBetween(to, from, time.UTC); got != -36525 {
		t.Errorf("DaysBetween(2100, 2000) = %d, want -36525", got)
	}
}

func TestDayNumber_J2000(t *testing.T) {
	// J2000.0 falls on JDN 2451545.
	if got := dayNumber(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)); got != 2451545 {
		t.Errorf("dayNumber(2000-01-01) = %d, want 2451545", got)
	}
}

func TestDaysUntilLaunch_Concurrent(t *testing.T) {
	clock := FixedClock(newYear2024)
	launchDate := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	errs := make(chan int, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, _ := DaysUntilLaunch(clock, launchDate); got != 10 {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent DaysUntilLaunch = %d, want 10", got)
	}
}
