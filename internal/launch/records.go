package launch

import (
	"sort"
	"strings"
	"time"
)

// Launch is a single launch record as published by the SpaceX v5 API.
type Launch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DateUTC  string `json:"date_utc"`
	Success  *bool  `json:"success"`
	Details  string `json:"details,omitempty"`
	Links    Links  `json:"links"`
	Rocket   string `json:"rocket"`
	Upcoming bool   `json:"upcoming"`
}

// Links holds the media links of a launch.
type Links struct {
	Patch   PatchLinks `json:"patch"`
	Webcast string     `json:"webcast,omitempty"`
}

// PatchLinks holds mission patch image URLs.
type PatchLinks struct {
	Small string `json:"small,omitempty"`
	Large string `json:"large,omitempty"`
}

// Rocket describes a launch vehicle.
type Rocket struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ParseDate parses an RFC 3339 timestamp with or without fractional seconds.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Date returns the parsed launch time.
func (l Launch) Date() (time.Time, bool) {
	return ParseDate(l.DateUTC)
}

// DaysUntil returns the UTC calendar days until the launch, or 0 when the
// launch date cannot be parsed.
func (l Launch) DaysUntil(clock Clock) int {
	t, ok := l.Date()
	if !ok {
		return 0
	}
	days, err := DaysUntilLaunch(clock, t)
	if err != nil {
		return 0
	}
	return days
}

// Statistics summarizes launch outcomes.
type Statistics struct {
	Total      int
	Successful int
	Failed     int
}

// Stats counts launches by outcome. Launches without an outcome only count
// toward Total.
func Stats(launches []Launch) Statistics {
	s := Statistics{Total: len(launches)}
	for _, l := range launches {
		if l.Success == nil {
			continue
		}
		if *l.Success {
			s.Successful++
		} else {
			s.Failed++
		}
	}
	return s
}

// Query selects launches by name and outcome.
type Query struct {
	// Search matches case-insensitively anywhere in the name. Empty matches all.
	Search string
	// Success, when set, keeps only launches with that outcome.
	Success *bool
}

// Match reports whether l satisfies q.
func (q Query) Match(l Launch) bool {
	if q.Search != "" && !strings.Contains(strings.ToLower(l.Name), strings.ToLower(q.Search)) {
		return false
	}
	if q.Success != nil && (l.Success == nil || *l.Success != *q.Success) {
		return false
	}
	return true
}

// Filter returns the launches matching q, preserving order.
func Filter(launches []Launch, q Query) []Launch {
	var out []Launch
	for _, l := range launches {
		if q.Match(l) {
			out = append(out, l)
		}
	}
	return out
}

// NewestFirst returns a copy of launches sorted by date, most recent first.
// Launches whose date does not parse go last, in their original order.
func NewestFirst(launches []Launch) []Launch {
	out := make([]Launch, len(launches))
	copy(out, launches)
	sort.SliceStable(out, func(i, j int) bool {
		di, okI := out[i].Date()
		dj, okJ := out[j].Date()
		if okI != okJ {
			return okI
		}
		if !okI {
			return false
		}
		return di.After(dj)
	})
	return out
}

// Upcoming returns the launches flagged as upcoming, preserving order.
func Upcoming(launches []Launch) []Launch {
	var out []Launch
	for _, l := range launches {
		if l.Upcoming {
			out = append(out, l)
		}
	}
	return out
}

// Favorites is a set of favorite launch IDs. The zero value is empty and
// ready to use. Not safe for concurrent use.
type Favorites struct {
	ids map[string]struct{}
}

// NewFavorites returns a set holding ids.
func NewFavorites(ids ...string) *Favorites {
	f := &Favorites{}
	for _, id := range ids {
		f.add(id)
	}
	return f
}

func (f *Favorites) add(id string) {
	if f.ids == nil {
		f.ids = make(map[string]struct{})
	}
	f.ids[id] = struct{}{}
}

// Toggle adds id if absent and removes it otherwise. It reports whether id is
// a favorite afterwards.
func (f *Favorites) Toggle(id string) bool {
	if f.Contains(id) {
		delete(f.ids, id)
		return false
	}
	f.add(id)
	return true
}

// Contains reports whether id is a favorite.
func (f *Favorites) Contains(id string) bool {
	_, ok := f.ids[id]
	return ok
}

// IDs returns the favorite IDs in sorted order.
func (f *Favorites) IDs() []string {
	ids := make([]string, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
