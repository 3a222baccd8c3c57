package repository

import (
	"context"
	"errors"

	"github.com/thrivetrack/backend/internal/models"
)

// ErrNotFound is returned when no entry matches both the id and the user.
var ErrNotFound = errors.New("mood entry not found")

// MoodEntryRepository defines the interface for mood entry data access.
// Every lookup is scoped to a user; an entry owned by someone else is
// reported as ErrNotFound.
type MoodEntryRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetByID(ctx context.Context, userID, id string) (*models.MoodEntry, error)
	// ListByUser returns every entry of the user, newest first
	ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error)
	// Update replaces mood, mood_value and notes of an existing entry
	Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	Delete(ctx context.Context, userID, id string) error
	Ping(ctx context.Context) error
}
