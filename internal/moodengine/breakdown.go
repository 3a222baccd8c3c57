package moodengine

import "math"

// BreakdownRow is one category's share of the entries in the active range.
type BreakdownRow struct {
	Category       Category `json:"category"`
	Label          string   `json:"label"`
	Count          int      `json:"count"`
	PercentOfTotal int      `json:"percent_of_total"`
	Color          string   `json:"color"`
}

// Breakdown feeds the donut chart (Slices, non-zero only) and its legend
// table (Rows, always all five categories).
type Breakdown struct {
	Slices []BreakdownRow `json:"slices"`
	Rows   []BreakdownRow `json:"rows"`
}

// BuildBreakdown converts category counts into percentage shares. Each row
// is rounded on its own, so the percentages need not add up to 100.
func BuildBreakdown(counts Counts, total int) Breakdown {
	denom := total
	if denom < 1 {
		denom = 1
	}

	b := Breakdown{
		Slices: make([]BreakdownRow, 0, len(DisplayOrder)),
		Rows:   make([]BreakdownRow, 0, len(DisplayOrder)),
	}
	for _, c := range DisplayOrder {
		n := counts[c]
		row := BreakdownRow{
			Category:       c,
			Label:          c.Label(),
			Count:          n,
			PercentOfTotal: int(math.Round(100 * float64(n) / float64(denom))),
			Color:          c.Color(),
		}
		b.Rows = append(b.Rows, row)
		if n > 0 {
			b.Slices = append(b.Slices, row)
		}
	}
	return b
}
