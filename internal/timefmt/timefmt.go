// Package timefmt turns a moment into the strings shown on the watch face.
package timefmt

import (
	"fmt"
	"time"
)

// Formatted holds display-ready strings for one tick.
type Formatted struct {
	Hours   string
	Minutes string
	AmPm    string
	Weekday string
	Date    string
}

// Format renders t for display. Hours are 1-12 without padding when use12Hour
// is set and zero-padded 00-23 otherwise. The locale only affects Weekday and
// Date; unsupported locales fall back to DefaultLocale.
func Format(t time.Time, use12Hour bool, locale string) Formatted {
	l := resolve(locale)
	return Formatted{
		Hours:   FormatHours(t.Hour(), use12Hour),
		Minutes: FormatMinutes(t.Minute()),
		AmPm:    FormatAmPm(t.Hour()),
		Weekday: l.weekdays[t.Weekday()],
		Date:    l.date(t.Day(), t.Month(), l.months[t.Month()-1]),
	}
}

// FormatHours formats an hour of day (0-23).
func FormatHours(hour int, use12Hour bool) string {
	if !use12Hour {
		return fmt.Sprintf("%02d", hour)
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d", h)
}

// FormatMinutes formats a minute (0-59) as two digits.
func FormatMinutes(minute int) string {
	return fmt.Sprintf("%02d", minute)
}

// FormatAmPm returns "AM" before noon and "PM" from noon on.
func FormatAmPm(hour int) string {
	if hour < 12 {
		return "AM"
	}
	return "PM"
}
