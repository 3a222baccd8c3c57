package service

import (
	"context"

	"github.com/thrivetrack/backend/internal/models"
)

// MoodEntryService defines the interface for mood check-in business logic
type MoodEntryService interface {
	CreateEntry(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error)
	ListEntries(ctx context.Context, userID string) ([]models.MoodEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateMoodEntryRequest) (*models.MoodEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// MoodInsightsService defines the interface for the insights screen
type MoodInsightsService interface {
	// GetInsights derives the report for rangeKey ("" means week). With an
	// empty visitID the support prompt is evaluated as a single-use visit.
	GetInsights(ctx context.Context, userID, rangeKey, visitID string) (*InsightsReport, error)
	StartVisit(ctx context.Context, userID string) (*models.Visit, error)
	// EndVisit is idempotent
	EndVisit(ctx context.Context, userID, visitID string) error
}
