package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Asia/Kolkata"

// Clock returns the current instant. Handlers and use cases take one so
// tests can pin "now".
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone and then UTC.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
