package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestVisitStoreStart(t *testing.T) {
	clock := clockwork.NewFakeClockAt(clockStart)
	store := NewVisitStore(10, time.Hour, clock)

	v := store.Start("u1")
	if v.UserID != "u1" || !v.StartedAt.Equal(clockStart) {
		t.Errorf("visit = %+v", v)
	}
	if ValidateUUID(v.ID) != nil {
		t.Errorf("visit ID %q is not a UUID", v.ID)
	}
}

func TestVisitStoreCapacity(t *testing.T) {
	store := NewVisitStore(2, time.Hour, clockwork.NewFakeClock())

	oldest := store.Start("u1")
	store.Start("u1")
	store.Start("u1")

	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
	if _, err := store.EvaluateSupportPrompt("u1", oldest.ID, nil); !errors.Is(err, ErrVisitNotFound) {
		t.Errorf("evicted visit error = %v, want ErrVisitNotFound", err)
	}
}

func TestVisitStoreExpires(t *testing.T) {
	store := NewVisitStore(10, 20*time.Millisecond, clockwork.NewFakeClock())
	v := store.Start("u1")

	time.Sleep(60 * time.Millisecond)

	if _, err := store.EvaluateSupportPrompt("u1", v.ID, nil); !errors.Is(err, ErrVisitNotFound) {
		t.Errorf("expired visit error = %v, want ErrVisitNotFound", err)
	}
}

func TestVisitStoreReadsDoNotExtendVisit(t *testing.T) {
	store := NewVisitStore(10, 100*time.Millisecond, clockwork.NewFakeClock())
	v := store.Start("u1")

	time.Sleep(60 * time.Millisecond)
	if _, err := store.EvaluateSupportPrompt("u1", v.ID, nil); err != nil {
		t.Fatalf("EvaluateSupportPrompt() before expiry error: %v", err)
	}

	// 130ms after start: expired, even though a read happened at 60ms
	time.Sleep(70 * time.Millisecond)
	if _, err := store.EvaluateSupportPrompt("u1", v.ID, nil); !errors.Is(err, ErrVisitNotFound) {
		t.Errorf("error = %v, want ErrVisitNotFound", err)
	}
}
