package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/thrivetrack/backend/internal/logger"
	"github.com/thrivetrack/backend/internal/models"
	"github.com/thrivetrack/backend/internal/moodengine"
	"github.com/thrivetrack/backend/internal/repository"
)

// MaxNotesLength bounds the free-text note on a check-in
const MaxNotesLength = 2000

type moodEntryService struct {
	repo  repository.MoodEntryRepository
	clock clockwork.Clock
}

// NewMoodEntryService creates a new mood entry service
func NewMoodEntryService(repo repository.MoodEntryRepository, clock clockwork.Clock) MoodEntryService {
	return &moodEntryService{repo: repo, clock: clock}
}

func (s *moodEntryService) CreateEntry(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	verr := &ValidationError{}
	mood := strings.TrimSpace(req.Mood)
	value := validateMood(verr, mood, req.MoodValue)
	validateNotes(verr, req.Notes)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	entry := &models.MoodEntry{
		ID:        NewID(),
		UserID:    userID,
		Mood:      mood,
		MoodValue: value,
		Notes:     req.Notes,
		CreatedAt: s.clock.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info("mood entry recorded",
		logger.String("entry_id", created.ID),
		logger.String("mood", created.Mood),
	)
	return created, nil
}

func (s *moodEntryService) ListEntries(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *moodEntryService) UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateMoodEntryRequest) (*models.MoodEntry, error) {
	if err := validateEntryID(entryID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	valueChanged := req.MoodValue.Set
	if req.Mood != nil {
		updated.Mood = strings.TrimSpace(*req.Mood)
		// A new label without a new value re-derives the value from the label
		if !valueChanged {
			updated.MoodValue = nil
		}
	}
	if valueChanged {
		updated.MoodValue = req.MoodValue.ToPtr()
	}
	if req.Notes.Set {
		updated.Notes = req.Notes.ToPtr()
	}

	verr := &ValidationError{}
	updated.MoodValue = validateMood(verr, updated.Mood, updated.MoodValue)
	validateNotes(verr, updated.Notes)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, &updated)
}

func (s *moodEntryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := validateEntryID(entryID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID, entryID); err != nil {
		return err
	}
	logger.Ctx(ctx).Info("mood entry deleted", logger.String("entry_id", entryID))
	return nil
}

func validateEntryID(id string) error {
	if ValidateUUID(id) != nil {
		verr := &ValidationError{}
		verr.add("id", "must be a valid UUID", "invalid_uuid")
		return verr
	}
	return nil
}

// validateMood checks the label/value pair and returns the value to store.
// When no value is given the known label's value is stored; a label the
// engine cannot place must come with an explicit value.
func validateMood(verr *ValidationError, mood string, value *float64) *float64 {
	if mood == "" {
		verr.add("mood", "is required", "required")
		return value
	}

	if value != nil {
		v := *value
		if math.IsNaN(v) || math.IsInf(v, 0) || v < moodengine.MinValue || v > moodengine.MaxValue {
			verr.add("mood_value", fmt.Sprintf("must be between %d and %d", moodengine.MinValue, moodengine.MaxValue), "out_of_range")
		}
		return value
	}

	c, ok := moodengine.ParseCategory(mood)
	if !ok {
		verr.add("mood", "must be one of amazing, good, okay, low, struggling or come with a mood_value", "unknown_mood")
		return nil
	}
	v := float64(c.Value())
	return &v
}

func validateNotes(verr *ValidationError, notes *string) {
	if notes != nil && len([]rune(*notes)) > MaxNotesLength {
		verr.add("notes", fmt.Sprintf("must be at most %d characters", MaxNotesLength), "too_long")
	}
}
