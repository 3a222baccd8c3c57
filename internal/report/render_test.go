package report

import (
	"strings"
	"testing"

	"github.com/thrivetrack/backend/internal/moodengine"
	"github.com/thrivetrack/backend/internal/service"
)

func TestRenderIncludesSections(t *testing.T) {
	r := &service.InsightsReport{
		Range:              moodengine.RangeWeek,
		TotalEntries:       2,
		AverageMood:        "3.5",
		MostCommonCategory: "Good",
		TrendPoints: []moodengine.TrendPoint{
			{Label: "Mon", Value: 4},
			{Label: "Tue", Value: 4, Interpolated: true},
		},
		BreakdownRows: []moodengine.BreakdownRow{
			{Category: moodengine.Good, Label: "Good", Count: 1, PercentOfTotal: 50, Color: "#f8a7c3"},
		},
		Insights: []string{moodengine.InsightMostlyPositive},
		SupportPrompt: &service.SupportPromptView{
			SupportPrompt: moodengine.SupportPrompt{Message: moodengine.SupportMessage},
			ResourcesURL:  service.ResourcesURL,
		},
	}

	out := Render("demo-student-1", r)
	for _, want := range []string{"demo-student-1", "Average: 3.5", "Mon", "carried forward", "Good", "50%", moodengine.InsightMostlyPositive, "/api/v1/resources"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	out := Render("u", &service.InsightsReport{Range: moodengine.RangeAll, AverageMood: "0.0", MostCommonCategory: moodengine.NoMostCommon})
	if !strings.Contains(out, "No check-ins in this period yet.") {
		t.Errorf("empty output:\n%s", out)
	}
}

func TestBar(t *testing.T) {
	if got := bar(1); got != strings.Repeat("█", barWidth) {
		t.Errorf("bar(1) = %q", got)
	}
	if got := bar(0); got != strings.Repeat("░", barWidth) {
		t.Errorf("bar(0) = %q", got)
	}
}
