package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/thrivetrack/backend/internal/models"
	"github.com/thrivetrack/backend/pkg/supabase"
)

const moodEntriesTable = "mood_entries"

type postgrestMoodEntryRepository struct {
	client *supabase.Client
}

// NewPostgRESTMoodEntryRepository creates a repository backed by the
// hosted mood_entries table
func NewPostgRESTMoodEntryRepository(client *supabase.Client) MoodEntryRepository {
	return &postgrestMoodEntryRepository{client: client}
}

func ownedBy(userID, id string) url.Values {
	return url.Values{
		"id":      {"eq." + id},
		"user_id": {"eq." + userID},
	}
}

func decodeEntries(body []byte) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return entries, nil
}

func firstEntry(body []byte) (*models.MoodEntry, error) {
	entries, err := decodeEntries(body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return &entries[0], nil
}

func (r *postgrestMoodEntryRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	data := map[string]interface{}{
		"id":         entry.ID,
		"user_id":    entry.UserID,
		"mood":       entry.Mood,
		"mood_value": entry.MoodValue,
		"notes":      entry.Notes,
		"created_at": entry.CreatedAt,
	}

	body, err := r.client.Insert(ctx, moodEntriesTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	created, err := firstEntry(body)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return created, nil
}

func (r *postgrestMoodEntryRepository) GetByID(ctx context.Context, userID, id string) (*models.MoodEntry, error) {
	body, err := r.client.Query(ctx, moodEntriesTable, ownedBy(userID, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}
	return firstEntry(body)
}

func (r *postgrestMoodEntryRepository) ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	query := url.Values{
		"user_id": {"eq." + userID},
		"order":   {"created_at.desc"},
	}

	body, err := r.client.Query(ctx, moodEntriesTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	return entries, nil
}

func (r *postgrestMoodEntryRepository) Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	data := map[string]interface{}{
		"mood":       entry.Mood,
		"mood_value": entry.MoodValue,
		"notes":      entry.Notes,
	}

	body, err := r.client.UpdateWhere(ctx, moodEntriesTable, ownedBy(entry.UserID, entry.ID), data)
	if err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}
	return firstEntry(body)
}

func (r *postgrestMoodEntryRepository) Delete(ctx context.Context, userID, id string) error {
	body, err := r.client.DeleteWhere(ctx, moodEntriesTable, ownedBy(userID, id))
	if err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	_, err = firstEntry(body)
	return err
}

func (r *postgrestMoodEntryRepository) Ping(ctx context.Context) error {
	query := url.Values{"select": {"id"}, "limit": {"1"}}
	if _, err := r.client.Query(ctx, moodEntriesTable, query); err != nil {
		return fmt.Errorf("postgrest unreachable: %w", err)
	}
	return nil
}
