package moodengine

import "strconv"

// NoMostCommon is reported as the most common category when there is no data.
const NoMostCommon = "—"

// Counts holds per-category record counts. All five categories are always
// present.
type Counts map[Category]int

func newCounts() Counts {
	c := make(Counts, len(DisplayOrder))
	for _, k := range DisplayOrder {
		c[k] = 0
	}
	return c
}

// Aggregates summarises the records of one range.
type Aggregates struct {
	TotalEntries int
	// Mean is the unrounded arithmetic mean; 0 when TotalEntries is 0.
	Mean           float64
	CategoryCounts Counts
	// MostCommon is empty when there are no records.
	MostCommon Category
}

// Aggregate computes count, mean, per-category counts and the mode.
func Aggregate(records []Record) Aggregates {
	agg := Aggregates{CategoryCounts: newCounts()}
	if len(records) == 0 {
		return agg
	}

	sum := 0
	for _, r := range records {
		sum += r.Value
		agg.CategoryCounts[r.Key]++
	}
	agg.TotalEntries = len(records)
	agg.Mean = float64(sum) / float64(agg.TotalEntries)
	agg.MostCommon = mostCommon(agg.CategoryCounts)

	return agg
}

// mostCommon walks DisplayOrder and only replaces the leader on a strictly
// higher count, so ties go to the higher-valued category.
func mostCommon(counts Counts) Category {
	var best Category
	bestCount := 0
	for _, c := range DisplayOrder {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}

// AverageMood renders the mean with one decimal place, "0.0" when empty.
func (a Aggregates) AverageMood() string {
	if a.TotalEntries == 0 {
		return "0.0"
	}
	return formatOneDecimal(a.Mean)
}

// MostCommonLabel returns the display label of the mode, or NoMostCommon.
func (a Aggregates) MostCommonLabel() string {
	if a.MostCommon == "" {
		return NoMostCommon
	}
	return a.MostCommon.Label()
}

func formatOneDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
