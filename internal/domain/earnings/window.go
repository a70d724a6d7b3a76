package earnings

import "time"

const dateLayout = "2006-01-02"

// DateRange is an inclusive window. Appointment dates are calendar days, so
// containment is decided on the calendar date alone.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) FirstDay() string { return r.From.Format(dateLayout) }
func (r DateRange) LastDay() string  { return r.To.Format(dateLayout) }

func (r DateRange) Contains(day time.Time) bool {
	k := dayKey(day)
	return k >= dayKey(r.From) && k <= dayKey(r.To)
}

// MonthWindow spans the first day 00:00:00.000 through the last day
// 23:59:59.999 of now's month, in now's location.
func MonthWindow(now time.Time) DateRange {
	loc := now.Location()
	return DateRange{
		From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc),
		To:   time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, int(999*time.Millisecond), loc),
	}
}

// WeekWindow spans Monday 00:00 through Sunday 23:59:59.999 of the week
// containing now. Sunday closes the week that began six days earlier.
func WeekWindow(now time.Time) DateRange {
	loc := now.Location()

	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	monday := time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, loc)
	sunday := time.Date(monday.Year(), monday.Month(), monday.Day()+6, 23, 59, 59, int(999*time.Millisecond), loc)

	return DateRange{From: monday, To: sunday}
}

// DaysInMonth of now's month.
func DaysInMonth(now time.Time) int {
	return MonthWindow(now).To.Day()
}

// weekIndex maps a calendar date to 0=Monday .. 6=Sunday.
func weekIndex(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}

func dayKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
