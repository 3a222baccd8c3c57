package moodengine

import (
	"math"
	"time"

	"github.com/thrivetrack/backend/internal/models"
)

// Record is a mood entry reduced to its category, a 1-5 value and the
// creation instant. Records are derived on every evaluation and never stored.
type Record struct {
	Key       Category  `json:"mood_key"`
	Value     int       `json:"mood_value"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry converts the record back into the raw wire shape. Normalizing the
// result yields the same record; tests use it to check that property.
func (r Record) Entry() models.MoodEntry {
	v := float64(r.Value)
	return models.MoodEntry{
		Mood:      string(r.Key),
		MoodValue: &v,
		CreatedAt: r.CreatedAt,
	}
}

// Normalize converts a raw entry into a Record. The explicit mood_value wins
// over the label lookup; entries with neither a known label nor a usable
// value are rejected (ok == false) rather than defaulted, so they cannot skew
// averages.
func Normalize(e models.MoodEntry) (Record, bool) {
	labelKey, labelKnown := ParseCategory(e.Mood)

	var value int
	switch {
	case e.MoodValue != nil && !math.IsNaN(*e.MoodValue) && !math.IsInf(*e.MoodValue, 0):
		value = clampValue(*e.MoodValue)
	case labelKnown:
		value = labelKey.Value()
	default:
		return Record{}, false
	}

	key := labelKey
	if !key.Valid() {
		// Unmapped label with an explicit value: file it under the value's
		// category so breakdown counts still sum to the total.
		key, _ = CategoryForValue(value)
	}

	return Record{Key: key, Value: value, CreatedAt: e.CreatedAt}, true
}

// NormalizeAll normalizes every entry, silently dropping rejected ones.
// The number of rejected entries is returned for logging.
func NormalizeAll(entries []models.MoodEntry) ([]Record, int) {
	records := make([]Record, 0, len(entries))
	rejected := 0
	for _, e := range entries {
		r, ok := Normalize(e)
		if !ok {
			rejected++
			continue
		}
		records = append(records, r)
	}
	return records, rejected
}

// clampValue bounds v to the 1-5 scale before rounding, so values beyond the
// int range still land on the nearest end of the scale.
func clampValue(v float64) int {
	return int(math.Round(math.Max(MinValue, math.Min(MaxValue, v))))
}
