package timezone

import (
	"strings"
	"time"
)

const DefaultTimezone = "Local"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to the server's local zone.
func Location(tz string) *time.Location {
	if strings.EqualFold(tz, DefaultTimezone) || !IsValid(tz) {
		return time.Local
	}
	loc, _ := time.LoadLocation(tz)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayRange returns the half-open calendar day [start, end) containing t,
// in t's location. DST days are 23 or 25 hours long.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
