// Package timeutil converts between "HH:MM" clock strings and minute
// offsets within a day, and formats the YYYY-MM-DD date keys used by the
// per-date ledgers.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60
	maxMinute     = minutesPerDay - 1
)

// ToMinutes parses "HH:MM" into a minute offset in [0, 1439].
func ToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q (expected HH:MM)", clock)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q (expected HH:MM)", clock)
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q (expected HH:MM)", clock)
	}
	mins := h*60 + m
	if h < 0 || m < 0 || m > 59 || mins > maxMinute {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}
	return mins, nil
}

// ToClockTime formats a minute offset as "HH:MM". Out-of-range input is
// saturated to the day's bounds rather than wrapped, so a shift can never
// move a reminder across midnight.
func ToClockTime(mins int) string {
	if mins < 0 {
		mins = 0
	}
	if mins > maxMinute {
		mins = maxMinute
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// CurrentClock returns now as "HH:MM".
func CurrentClock(now time.Time) string {
	return fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())
}

// IsPast reports whether clock is at or before now, at minute granularity.
func IsPast(clock string, now time.Time) (bool, error) {
	target, err := ToMinutes(clock)
	if err != nil {
		return false, err
	}
	current := now.Hour()*60 + now.Minute()
	return current >= target, nil
}

// DateKey formats t as the YYYY-MM-DD ledger key in local time.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Format12Hour renders "HH:MM" as "H:MM AM/PM" for display.
func Format12Hour(clock string) string {
	mins, err := ToMinutes(clock)
	if err != nil {
		return clock
	}
	h := mins / 60
	m := mins % 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, period)
}

// FormatDateLong renders a date key as e.g. "Monday, Aug 31".
func FormatDateLong(dateKey string) string {
	t, err := time.ParseInLocation("2006-01-02", dateKey, time.Local)
	if err != nil {
		return dateKey
	}
	return t.Format("Monday, Jan 2")
}

// Greeting returns the time-of-day salutation for the header line.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
