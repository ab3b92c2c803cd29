package utils

import "time"

// DateKeyLayout is the calendar-day key used by the analytics chart.
const DateKeyLayout = "2006-01-02"

// StartOfDay returns midnight of t's UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfISOWeek returns midnight UTC of the Monday that starts t's ISO week.
func StartOfISOWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func DateKey(t time.Time) string {
	return t.UTC().Format(DateKeyLayout)
}
