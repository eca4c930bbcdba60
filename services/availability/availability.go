// Package availability answers whether a date range is bookable for an
// accommodation (or resort-wide) against a set of blocked-date records.
// Manually curated blocks and blocks derived from confirmed reservations
// feed the same predicate; only the admin surface tells them apart.
package availability

import (
	"time"

	"palmera/models"
)

const dateLayout = "2006-01-02"

// parseDate returns the parsed date and whether it was well formed.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// rangeOverlaps reports whether [s, e) intersects [bs, be).
func rangeOverlaps(s, e, bs, be time.Time) bool {
	return s.Before(be) && e.After(bs)
}

// Conflicts returns every blocked range intersecting the proposed
// [startDate, endDate) window for the given accommodation. Resort-wide
// blocks (no accommodation id) always apply. Malformed records are
// skipped: this check fails open for display, and confirmation re-checks
// against the authoritative store.
func Conflicts(startDate, endDate, accommodationID string, ranges []models.BlockedRange) []models.BlockedRange {
	s, ok := parseDate(startDate)
	if !ok {
		return nil
	}
	e, ok := parseDate(endDate)
	if !ok {
		// A single-day stay is the window [start, start+1d).
		e = s.AddDate(0, 0, 1)
	}

	var hits []models.BlockedRange
	for _, r := range ranges {
		if !r.AppliesTo(accommodationID) {
			continue
		}
		bs, ok := parseDate(r.StartDate)
		if !ok {
			continue
		}
		be, ok := parseDate(r.EndDate)
		if !ok {
			continue
		}
		if rangeOverlaps(s, e, bs, be) {
			hits = append(hits, r)
		}
	}
	return hits
}

// IsBlocked reports whether the proposed [startDate, endDate) window
// conflicts with any blocked range for the accommodation.
func IsBlocked(startDate, endDate, accommodationID string, ranges []models.BlockedRange) bool {
	return len(Conflicts(startDate, endDate, accommodationID, ranges)) > 0
}

// IsDateBlocked reports whether a single calendar date is blocked. The
// date is treated as the one-day window [date, date+1d).
func IsDateBlocked(date, accommodationID string, ranges []models.BlockedRange) bool {
	d, ok := parseDate(date)
	if !ok {
		return false
	}
	return IsBlocked(date, d.AddDate(0, 0, 1).Format(dateLayout), accommodationID, ranges)
}
