package models

import "time"

// MoodEntry is a mood check-in as stored. MoodValue is optional: older rows
// carry only the label.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mood      string    `json:"mood"`
	MoodValue *float64  `json:"mood_value,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMoodEntryRequest represents the request to record a check-in
type CreateMoodEntryRequest struct {
	Mood      string   `json:"mood"`
	MoodValue *float64 `json:"mood_value"`
	Notes     *string  `json:"notes"`
}

// UpdateMoodEntryRequest represents a partial update of a check-in
type UpdateMoodEntryRequest struct {
	Mood      *string         `json:"mood"`
	MoodValue NullableFloat64 `json:"mood_value"`
	Notes     NullableString  `json:"notes"`
}

// Visit is one opening of the insights screen. It scopes the support prompt
// so it is shown at most once until the user navigates away.
type Visit struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StartedAt time.Time `json:"started_at"`
}
