package moodengine

import "sort"

const (
	// SupportWindow is the number of most recent check-ins considered.
	SupportWindow = 5
	// SupportThreshold is the exclusive upper bound on their mean.
	SupportThreshold = 2.0

	SupportMessage = "It looks like your last few check-ins have been on the tougher side. " +
		"If you'd like, you can explore some gentle support resources."
	SupportDismissLabel = "Not right now"
)

// SupportPromptState tracks the prompt within one screen visit. It is owned
// by the caller and never persisted.
type SupportPromptState struct {
	Shown bool `json:"shown"`
	// Avg is the average that triggered the prompt, frozen when it fired.
	Avg string `json:"avg,omitempty"`
}

// SupportPrompt is surfaced when recent check-ins are persistently low. It
// is a gentle nudge towards resources, not an assessment.
type SupportPrompt struct {
	Avg          string `json:"avg"`
	Message      string `json:"message"`
	DismissLabel string `json:"dismiss_label"`
}

// RecentAverage returns the mean of the SupportWindow most recently created
// records, and false when fewer records exist.
func RecentAverage(records []Record) (float64, bool) {
	if len(records) < SupportWindow {
		return 0, false
	}
	recent := make([]Record, len(records))
	copy(recent, records)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	sum := 0
	for _, r := range recent[:SupportWindow] {
		sum += r.Value
	}
	return float64(sum) / SupportWindow, true
}

// EvaluateSupportPrompt checks the rule against the full history (not the
// active range). It fires at most once per state: when state.Shown is set
// the prompt is suppressed and the state returned unchanged.
func EvaluateSupportPrompt(records []Record, state SupportPromptState) (*SupportPrompt, SupportPromptState) {
	if state.Shown {
		return nil, state
	}
	avg, ok := RecentAverage(records)
	if !ok || avg >= SupportThreshold {
		return nil, state
	}

	frozen := formatOneDecimal(avg)
	next := SupportPromptState{Shown: true, Avg: frozen}
	return &SupportPrompt{
		Avg:          frozen,
		Message:      SupportMessage,
		DismissLabel: SupportDismissLabel,
	}, next
}
