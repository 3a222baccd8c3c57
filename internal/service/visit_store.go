package service

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jonboulle/clockwork"

	"github.com/thrivetrack/backend/internal/models"
	"github.com/thrivetrack/backend/internal/moodengine"
)

type visitState struct {
	visit  models.Visit
	prompt moodengine.SupportPromptState
}

// VisitStore keeps the support prompt state of open insights screens.
// Visits expire after ttl; the least recently used visit is evicted once
// capacity is reached.
type VisitStore struct {
	// mu serializes the read-modify-write of a visit's prompt state
	mu     sync.Mutex
	visits *expirable.LRU[string, *visitState]
	clock  clockwork.Clock
}

// NewVisitStore creates a visit store
func NewVisitStore(capacity int, ttl time.Duration, clock clockwork.Clock) *VisitStore {
	return &VisitStore{
		visits: expirable.NewLRU[string, *visitState](capacity, nil, ttl),
		clock:  clock,
	}
}

// Start opens a new visit for userID
func (s *VisitStore) Start(userID string) models.Visit {
	v := models.Visit{
		ID:        NewID(),
		UserID:    userID,
		StartedAt: s.clock.Now().UTC(),
	}
	s.visits.Add(v.ID, &visitState{visit: v})
	return v
}

// End closes a visit. Unknown visits and visits of other users are ignored.
func (s *VisitStore) End(userID, visitID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.visits.Peek(visitID); ok && st.visit.UserID == userID {
		s.visits.Remove(visitID)
	}
}

// EvaluateSupportPrompt runs the support rule against the visit's state and
// stores the result. Concurrent calls for one visit are serialized, so a
// prompt is returned at most once per visit.
func (s *VisitStore) EvaluateSupportPrompt(userID, visitID string, records []moodengine.Record) (*moodengine.SupportPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.visits.Get(visitID)
	if !ok || st.visit.UserID != userID {
		return nil, ErrVisitNotFound
	}

	prompt, next := moodengine.EvaluateSupportPrompt(records, st.prompt)
	st.prompt = next
	return prompt, nil
}

// Len reports the number of open visits
func (s *VisitStore) Len() int {
	return s.visits.Len()
}
