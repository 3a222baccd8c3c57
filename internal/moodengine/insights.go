package moodengine

import "fmt"

const (
	// MaxInsights caps the insight list; later rules are dropped once hit.
	MaxInsights = 4

	// Average-level thresholds (on the unrounded mean)
	AverageVeryPositive   = 4.2
	AverageMostlyPositive = 3.5
	AverageMixed          = 2.6

	// Minimum last-minus-first change for an up/down trend
	TrendDirectionDelta = 0.35

	// Category ratio thresholds
	PositiveRatioThreshold  = 0.6
	DifficultRatioThreshold = 0.5
)

// Insight messages, one per rule branch.
const (
	InsightVeryPositive   = "Overall, your mood has been very positive in this period."
	InsightMostlyPositive = "Overall, your mood has been mostly positive in this period."
	InsightMixed          = "Overall, your mood has been mixed, with some good days and some tougher days."
	InsightTough          = "Overall, this period looks tough. Be kind to yourself and take small steps."

	InsightTrendUp     = "Your mood is trending upward across this period."
	InsightTrendDown   = "Your mood is trending downward across this period."
	InsightTrendSteady = "Your mood has stayed fairly steady across this period."

	InsightMorePositive  = "You've had more positive days (Good/Amazing) than difficult ones."
	InsightManyDifficult = "A lot of days have been difficult (Low/Struggling). Consider extra self-care support."
	InsightBalanced      = "Your days are balanced between positive and difficult moods."

	insightMostCommonFormat = "Your most common mood in this period was %s."
)

// insightRule contributes at most one message.
type insightRule func(agg Aggregates, trend []TrendPoint) (string, bool)

// insightRules run in declaration order; the order is part of the output
// contract because of the MaxInsights cap.
var insightRules = []insightRule{
	averageLevelRule,
	trendDirectionRule,
	categoryRatioRule,
	mostCommonRule,
}

// GenerateInsights evaluates the rules against the aggregates and trend of
// one range. No records yields an empty list.
func GenerateInsights(agg Aggregates, trend []TrendPoint) []string {
	out := make([]string, 0, MaxInsights)
	if agg.TotalEntries == 0 {
		return out
	}
	for _, rule := range insightRules {
		if len(out) == MaxInsights {
			break
		}
		if msg, ok := rule(agg, trend); ok {
			out = append(out, msg)
		}
	}
	return out
}

func averageLevelRule(agg Aggregates, _ []TrendPoint) (string, bool) {
	switch avg := agg.Mean; {
	case avg >= AverageVeryPositive:
		return InsightVeryPositive, true
	case avg >= AverageMostlyPositive:
		return InsightMostlyPositive, true
	case avg >= AverageMixed:
		return InsightMixed, true
	default:
		return InsightTough, true
	}
}

func trendDirectionRule(_ Aggregates, trend []TrendPoint) (string, bool) {
	series := make([]float64, 0, len(trend))
	for _, p := range trend {
		if p.Value > 0 {
			series = append(series, p.Value)
		}
	}
	if len(series) < 2 {
		return "", false
	}

	diff := series[len(series)-1] - series[0]
	switch {
	case diff >= TrendDirectionDelta:
		return InsightTrendUp, true
	case diff <= -TrendDirectionDelta:
		return InsightTrendDown, true
	default:
		return InsightTrendSteady, true
	}
}

func categoryRatioRule(agg Aggregates, _ []TrendPoint) (string, bool) {
	total := float64(agg.TotalEntries)
	c := agg.CategoryCounts
	positive := float64(c[Good]+c[Amazing]) / total
	difficult := float64(c[Low]+c[Struggling]) / total

	switch {
	case positive >= PositiveRatioThreshold:
		return InsightMorePositive, true
	case difficult >= DifficultRatioThreshold:
		return InsightManyDifficult, true
	default:
		return InsightBalanced, true
	}
}

func mostCommonRule(agg Aggregates, _ []TrendPoint) (string, bool) {
	if agg.MostCommon == "" {
		return "", false
	}
	return fmt.Sprintf(insightMostCommonFormat, agg.MostCommon.Label()), true
}
