package moodengine

import (
	"sort"
	"time"
)

// MaxRecentPoints is the number of records plotted for month and all ranges.
const MaxRecentPoints = 7

// dateLabelLayout renders e.g. "05 Mar".
const dateLabelLayout = "02 Jan"

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// TrendPoint is one plotted value on the mood-over-time chart.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	// Interpolated marks carried-forward points so the chart can hide
	// their marker.
	Interpolated bool `json:"interpolated"`
}

// BuildTrend turns records into a chart series. For RangeWeek it returns
// seven Monday-first weekday points; otherwise the most recent
// MaxRecentPoints records in chronological order. Weekdays and date labels
// are computed in loc (UTC when nil). No records yields an empty series.
func BuildTrend(records []Record, r Range, loc *time.Location) []TrendPoint {
	if len(records) == 0 {
		return []TrendPoint{}
	}
	if loc == nil {
		loc = time.UTC
	}
	if r == RangeWeek {
		return weekdayTrend(records, loc)
	}
	return recentTrend(records, loc)
}

func weekdayTrend(records []Record, loc *time.Location) []TrendPoint {
	var buckets [7][]int
	for _, rec := range records {
		i := mondayIndex(rec.CreatedAt.In(loc).Weekday())
		buckets[i] = append(buckets[i], rec.Value)
	}

	points := make([]TrendPoint, 0, len(weekdayLabels))
	lastKnown := float64(MinValue)
	for i, label := range weekdayLabels {
		vals := buckets[i]
		if len(vals) == 0 {
			// Carry the last real value forward; before any data exists
			// the floor keeps the line inside the 1-5 scale.
			points = append(points, TrendPoint{Label: label, Value: lastKnown, Interpolated: true})
			continue
		}
		sum := 0
		for _, v := range vals {
			sum += v
		}
		avg := float64(sum) / float64(len(vals))
		lastKnown = avg
		points = append(points, TrendPoint{Label: label, Value: avg})
	}
	return points
}

func recentTrend(records []Record, loc *time.Location) []TrendPoint {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	if len(sorted) > MaxRecentPoints {
		sorted = sorted[len(sorted)-MaxRecentPoints:]
	}

	points := make([]TrendPoint, 0, len(sorted))
	for _, rec := range sorted {
		points = append(points, TrendPoint{
			Label: rec.CreatedAt.In(loc).Format(dateLabelLayout),
			Value: float64(rec.Value),
		})
	}
	return points
}

// mondayIndex maps time.Weekday (Sunday == 0) onto a Monday-first index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
