package picks

import "time"

// DateLayout is the feed's date format.
const DateLayout = "2006-01-02"

// LoadLocation resolves the configured timezone name, falling back to a
// fixed EAT (UTC+3) zone when the zone database cannot supply it.
func LoadLocation(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.FixedZone("EAT", 3*3600)
}

// Today returns the reference date string for "today" in loc.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(DateLayout)
}

// Yesterday returns the reference date string for "yesterday" in loc.
func Yesterday(now time.Time, loc *time.Location) string {
	return now.In(loc).AddDate(0, 0, -1).Format(DateLayout)
}

// ZoneLabel returns the abbreviation used to annotate kick-off times.
func ZoneLabel(now time.Time, loc *time.Location) string {
	return now.In(loc).Format("MST")
}
