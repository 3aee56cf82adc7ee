package entity

import (
	"time"
)

// DaySchedule is the per-weekday entry stored under "hours.<weekday>".
type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// DefaultDaySchedule is used when a weekday has no entry.
var DefaultDaySchedule = DaySchedule{Open: "18:00", Close: "23:00"}

// WeekdayKey maps time.Weekday (Sunday=0) to the settings key suffix.
func WeekdayKey(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "sunday"
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	}
	return ""
}
