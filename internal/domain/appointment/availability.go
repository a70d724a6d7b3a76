package appointment

import "time"

// Slots is the fixed daily booking grid, one slot per hour.
var Slots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

type SlotAvailability struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

func IsValidSlot(hm string) bool {
	for _, s := range Slots {
		if s == hm {
			return true
		}
	}
	return false
}

// BuildAvailability marks every slot in the grid that appears in booked.
func BuildAvailability(booked []string) []SlotAvailability {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	out := make([]SlotAvailability, 0, len(Slots))
	for _, s := range Slots {
		_, ok := taken[s]
		out = append(out, SlotAvailability{Time: s, Booked: ok})
	}
	return out
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsBeforeDay reports whether day falls on a calendar date before now's.
func IsBeforeDay(day, now time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(n)
}
