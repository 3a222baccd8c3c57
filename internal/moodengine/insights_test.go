package moodengine

import (
	"fmt"
	"testing"
	"time"
)

func TestAverageLevelRuleBoundaries(t *testing.T) {
	tests := []struct {
		mean float64
		want string
	}{
		{mean: 5, want: InsightVeryPositive},
		{mean: 4.2, want: InsightVeryPositive},
		{mean: 4.19, want: InsightMostlyPositive},
		{mean: 3.5, want: InsightMostlyPositive},
		{mean: 3.49, want: InsightMixed},
		{mean: 2.6, want: InsightMixed},
		{mean: 2.59, want: InsightTough},
		{mean: 1, want: InsightTough},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.2f", tt.mean), func(t *testing.T) {
			got, ok := averageLevelRule(Aggregates{TotalEntries: 1, Mean: tt.mean}, nil)
			if !ok || got != tt.want {
				t.Errorf("averageLevelRule(%v) = %q, want %q", tt.mean, got, tt.want)
			}
		})
	}
}

func TestAverageExactly42FromRecords(t *testing.T) {
	agg := Aggregate(recordsWithValues(5, 4, 4, 4, 4))
	if agg.AverageMood() != "4.2" {
		t.Fatalf("AverageMood() = %q, want \"4.2\"", agg.AverageMood())
	}
	got := GenerateInsights(agg, nil)
	if len(got) == 0 || got[0] != InsightVeryPositive {
		t.Errorf("first insight = %v, want %q", got, InsightVeryPositive)
	}
}

func TestTrendDirectionRule(t *testing.T) {
	pts := func(values ...float64) []TrendPoint {
		out := make([]TrendPoint, len(values))
		for i, v := range values {
			out[i] = TrendPoint{Label: fmt.Sprint(i), Value: v}
		}
		return out
	}

	tests := []struct {
		name   string
		trend  []TrendPoint
		want   string
		wantOK bool
	}{
		{name: "upward", trend: pts(2, 3, 2.35), want: InsightTrendUp, wantOK: true},
		{name: "downward", trend: pts(4, 4, 3.65), want: InsightTrendDown, wantOK: true},
		{name: "steady", trend: pts(3, 1, 3.3), want: InsightTrendSteady, wantOK: true},
		{name: "zeros ignored", trend: pts(0, 2, 0, 4, 0), want: InsightTrendUp, wantOK: true},
		{name: "single value", trend: pts(3), wantOK: false},
		{name: "single non-zero value", trend: pts(0, 3, 0), wantOK: false},
		{name: "empty", trend: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := trendDirectionRule(Aggregates{}, tt.trend)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryRatioRule(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{name: "more positive", values: []int{4, 5, 4, 1, 3}, want: InsightMorePositive},
		{name: "many difficult", values: []int{1, 2, 3, 4}, want: InsightManyDifficult},
		{name: "balanced", values: []int{1, 3, 3, 4, 5}, want: InsightBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := categoryRatioRule(Aggregate(recordsWithValues(tt.values...)), nil)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateInsightsGolden(t *testing.T) {
	records := []Record{
		record(Low, day(0)),
		record(Okay, day(1)),
		record(Good, day(2)),
		record(Amazing, day(3)),
		record(Good, day(4)),
	}
	agg := Aggregate(records)
	trend := BuildTrend(records, RangeWeek, time.UTC)

	got := GenerateInsights(agg, trend)

	want := []string{
		InsightMostlyPositive, // mean 3.6
		InsightTrendUp,        // Mon 2 -> Sun 4 (carried)
		InsightMorePositive,   // 3 of 5 positive
		"Your most common mood in this period was Good.",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d insights %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("insight %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateInsightsCappedAndEmpty(t *testing.T) {
	if got := GenerateInsights(Aggregate(nil), nil); got == nil || len(got) != 0 {
		t.Errorf("GenerateInsights(empty) = %#v, want empty non-nil slice", got)
	}

	agg := Aggregate(recordsWithValues(1, 1, 1))
	trend := BuildTrend(recordsWithValues(1, 1, 1), RangeMonth, time.UTC)
	if got := GenerateInsights(agg, trend); len(got) > MaxInsights {
		t.Errorf("len = %d, exceeds cap %d", len(got), MaxInsights)
	}
}
