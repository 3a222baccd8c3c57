package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/thrivetrack/backend/internal/models"
	"github.com/thrivetrack/backend/internal/repository"
)

// fakeMoodEntryRepository is an in-memory MoodEntryRepository for tests
type fakeMoodEntryRepository struct {
	mu        sync.Mutex
	entries   map[string]models.MoodEntry
	listErr   error
	listCalls int
}

func newFakeMoodEntryRepository(seed ...models.MoodEntry) *fakeMoodEntryRepository {
	r := &fakeMoodEntryRepository{entries: make(map[string]models.MoodEntry)}
	for _, e := range seed {
		r.entries[e.ID] = e
	}
	return r
}

func (r *fakeMoodEntryRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = *entry
	out := *entry
	return &out, nil
}

func (r *fakeMoodEntryRepository) GetByID(ctx context.Context, userID, id string) (*models.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *fakeMoodEntryRepository) ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []models.MoodEntry{}
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMoodEntryRepository) Update(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[entry.ID]
	if !ok || e.UserID != entry.UserID {
		return nil, repository.ErrNotFound
	}
	e.Mood, e.MoodValue, e.Notes = entry.Mood, entry.MoodValue, entry.Notes
	r.entries[entry.ID] = e
	return &e, nil
}

func (r *fakeMoodEntryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeMoodEntryRepository) Ping(ctx context.Context) error {
	if r.listErr != nil {
		return errors.New("store down")
	}
	return nil
}
