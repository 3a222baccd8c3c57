package moodengine

import (
	"time"

	"github.com/thrivetrack/backend/internal/models"
)

// Options carries the evaluation context.
type Options struct {
	// Now is the evaluation instant the range windows are measured from.
	Now time.Time
	// Location decides weekdays and date labels; UTC when nil.
	Location *time.Location
}

// Result holds every derived view for one range.
type Result struct {
	Range      Range
	Aggregates Aggregates
	Trend      []TrendPoint
	Breakdown  Breakdown
	Insights   []string
	// Rejected counts in-range entries dropped by the normalizer.
	Rejected int
}

// Derive runs the range filter, normalizer, aggregator, trend, breakdown and
// insight rules over one snapshot. The support prompt is evaluated separately
// because it looks at the whole history and carries per-visit state.
func Derive(entries []models.MoodEntry, r Range, opts Options) Result {
	inRange := FilterEntries(entries, r, opts.Now)
	records, rejected := NormalizeAll(inRange)

	agg := Aggregate(records)
	trend := BuildTrend(records, r, opts.Location)

	return Result{
		Range:      r,
		Aggregates: agg,
		Trend:      trend,
		Breakdown:  BuildBreakdown(agg.CategoryCounts, agg.TotalEntries),
		Insights:   GenerateInsights(agg, trend),
		Rejected:   rejected,
	}
}
