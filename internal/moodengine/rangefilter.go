package moodengine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thrivetrack/backend/internal/models"
)

// Range is a trailing time window used to filter records before aggregation.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeAll   Range = "all"
)

// DefaultRange is used when the caller does not pick one.
const DefaultRange = RangeWeek

// ErrInvalidRange is returned by ParseRange for unknown range keys.
var ErrInvalidRange = errors.New("invalid range")

// ParseRange parses a range key. The empty string yields DefaultRange.
func ParseRange(s string) (Range, error) {
	switch r := Range(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return DefaultRange, nil
	case RangeWeek, RangeMonth, RangeAll:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q (want week, month or all)", ErrInvalidRange, s)
	}
}

// Days returns the window length in calendar days, or 0 for RangeAll.
func (r Range) Days() int {
	switch r {
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	default:
		return 0
	}
}

// Start returns the inclusive lower bound of the window relative to now.
// ok is false for an unbounded range.
func (r Range) Start(now time.Time) (start time.Time, ok bool) {
	days := r.Days()
	if days == 0 {
		return time.Time{}, false
	}
	return now.AddDate(0, 0, -days), true
}

// FilterEntries keeps raw entries created at or after the window start.
func FilterEntries(entries []models.MoodEntry, r Range, now time.Time) []models.MoodEntry {
	return filterByTime(entries, func(e models.MoodEntry) time.Time { return e.CreatedAt }, r, now)
}

// FilterRecords keeps normalized records created at or after the window start.
// Derive filters raw entries; this variant lets tests check that filtering
// before or after normalization selects the same records.
func FilterRecords(records []Record, r Range, now time.Time) []Record {
	return filterByTime(records, func(rec Record) time.Time { return rec.CreatedAt }, r, now)
}

func filterByTime[T any](items []T, at func(T) time.Time, r Range, now time.Time) []T {
	start, bounded := r.Start(now)
	if !bounded {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !at(it).Before(start) {
			out = append(out, it)
		}
	}
	return out
}
