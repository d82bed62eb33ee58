// Package datex implements the calendar arithmetic behind reservation
// due dates and remaining-day counts.
//
// Reservation dates carry no time-of-day: "2026-08-29" means midnight UTC.
// The due date is plain calendar addition (date + duration days), and the
// remaining-day count is derived from the distance between that midnight
// boundary and the current instant. Both call sites that display or act on
// remaining days go through RemainingDays so they can never disagree.
package datex

import (
	"fmt"
	"time"

	"github.com/acortes/libreserve/internal/common"
)

// Layout is the wire and storage format for reservation dates.
const Layout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as midnight UTC. Malformed input is
// reported as common.ErrInvalidDate.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, s)
	}
	return t, nil
}

// DueDate computes the maximum return date: the reservation date plus the
// duration in calendar days. It is deterministic in its inputs, so the value
// stored at creation time can be re-derived and checked at any later point.
func DueDate(date string, durationDays int) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return d.AddDate(0, 0, durationDays), nil
}

// RemainingDays reports the whole number of days left between now and the
// due-date midnight.
//
// The fractional distance is delta hours / 24. Anything at or below one day
// — including overdue reservations, which come out zero or negative — is
// clamped to 1, and larger values round up, so a reservation due in 23 hours
// reports 1 rather than 0. The reminder trigger keys on the value 1.
func RemainingDays(due time.Time, now time.Time) int {
	frac := due.Sub(now).Hours() / 24
	if frac <= 1 {
		return 1
	}
	return int(frac) + 1
}

// Overdue reports whether the due-date midnight has already passed. The
// remaining-day clamp makes overdue reservations indistinguishable from
// "due tomorrow", so listings carry this separately for display.
func Overdue(due time.Time, now time.Time) bool {
	return !due.After(now)
}
