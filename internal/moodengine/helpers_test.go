package moodengine

import (
	"time"

	"github.com/thrivetrack/backend/internal/models"
)

// Week of Monday 2026-10-12 .. Sunday 2026-10-18; "now" is Sunday evening.
var (
	monday  = time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	testNow = time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)
)

func day(offset int) time.Time {
	return monday.AddDate(0, 0, offset)
}

func floatPtr(f float64) *float64 {
	return &f
}

func entry(mood string, value *float64, at time.Time) models.MoodEntry {
	return models.MoodEntry{
		ID:        at.Format(time.RFC3339Nano),
		UserID:    "demo-student-1",
		Mood:      mood,
		MoodValue: value,
		CreatedAt: at,
	}
}

func record(c Category, at time.Time) Record {
	return Record{Key: c, Value: c.Value(), CreatedAt: at}
}

func recordsWithValues(values ...int) []Record {
	out := make([]Record, 0, len(values))
	for i, v := range values {
		c, _ := CategoryForValue(v)
		out = append(out, Record{Key: c, Value: v, CreatedAt: monday.Add(time.Duration(i) * time.Hour)})
	}
	return out
}
