package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"github.com/thrivetrack/backend/internal/apierror"
	"github.com/thrivetrack/backend/internal/middleware"
	"github.com/thrivetrack/backend/internal/models"
	"github.com/thrivetrack/backend/internal/repository"
	"github.com/thrivetrack/backend/internal/resources"
	"github.com/thrivetrack/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testNow = time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)

// failingRepository fails every read, standing in for an unreachable store
type failingRepository struct {
	repository.MoodEntryRepository
}

func (failingRepository) ListByUser(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func (failingRepository) Ping(ctx context.Context) error {
	return errors.New("dial tcp: connection refused")
}

type testServer struct {
	router *gin.Engine
	clock  *clockwork.FakeClock
}

func newTestServer(t *testing.T, repo repository.MoodEntryRepository) *testServer {
	t.Helper()
	if repo == nil {
		db, err := repository.OpenSQLite(":memory:")
		if err != nil {
			t.Fatalf("OpenSQLite() error: %v", err)
		}
		t.Cleanup(func() { db.Close() })
		repo, err = repository.NewSQLiteMoodEntryRepository(context.Background(), db)
		if err != nil {
			t.Fatalf("NewSQLiteMoodEntryRepository() error: %v", err)
		}
	}

	catalog, err := resources.Default()
	if err != nil {
		t.Fatalf("resources.Default() error: %v", err)
	}

	clock := clockwork.NewFakeClockAt(testNow)
	visits := service.NewVisitStore(100, time.Hour, clock)

	r := gin.New()
	r.Use(middleware.UserScope("demo-student-1"))
	r.GET("/health", NewHealthHandler(repo, "sqlite").Health)
	RegisterRoutes(r.Group("/api/v1"),
		NewMoodEntryHandler(service.NewMoodEntryService(repo, clock)),
		NewMoodInsightsHandler(service.NewMoodInsightsService(repo, visits, clock, time.UTC)),
		NewResourcesHandler(catalog),
	)
	return &testServer{router: r, clock: clock}
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func TestMoodEntryLifecycle(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/v1/mood-entries", map[string]any{"mood": "Good", "notes": "gym"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	created := decode[models.MoodEntry](t, w)
	if created.UserID != "demo-student-1" || created.MoodValue == nil || *created.MoodValue != 4 {
		t.Errorf("created = %+v", created)
	}

	w = s.do(t, http.MethodPatch, "/api/v1/mood-entries/"+created.ID, map[string]any{"mood": "amazing", "notes": nil})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	updated := decode[models.MoodEntry](t, w)
	if updated.Mood != "amazing" || *updated.MoodValue != 5 || updated.Notes != nil {
		t.Errorf("updated = %+v", updated)
	}

	w = s.do(t, http.MethodGet, "/api/v1/mood-entries", nil)
	if list := decode[[]models.MoodEntry](t, w); len(list) != 1 {
		t.Errorf("list = %v", list)
	}

	w = s.do(t, http.MethodGet, "/api/v1/mood-entries?user_id=someone-else", nil)
	if list := decode[[]models.MoodEntry](t, w); len(list) != 0 {
		t.Errorf("other user's list = %v, want empty", list)
	}

	if w = s.do(t, http.MethodDelete, "/api/v1/mood-entries/"+created.ID, nil); w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", w.Code)
	}
	if w = s.do(t, http.MethodDelete, "/api/v1/mood-entries/"+created.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestCreateEntryErrors(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name     string
		body     any
		wantType string
	}{
		{name: "malformed json", body: `{"mood":`, wantType: apierror.TypeBadRequest},
		{name: "missing mood", body: map[string]any{"notes": "hi"}, wantType: apierror.TypeValidation},
		{name: "value out of range", body: map[string]any{"mood": "good", "mood_value": 9}, wantType: apierror.TypeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/v1/mood-entries", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if p := decode[apierror.ProblemDetails](t, w); p.Type != tt.wantType {
				t.Errorf("type = %q, want %q", p.Type, tt.wantType)
			}
		})
	}

	w := s.do(t, http.MethodDelete, "/api/v1/mood-entries/not-a-uuid", nil)
	if p := decode[apierror.ProblemDetails](t, w); w.Code != http.StatusBadRequest || len(p.Errors) != 1 || p.Errors[0].Field != "id" {
		t.Errorf("delete invalid id = %d %+v", w.Code, p)
	}
}

func TestMoodInsightsFlow(t *testing.T) {
	s := newTestServer(t, nil)

	// Five tough check-ins over the last five hours
	for _, mood := range []string{"low", "struggling", "struggling", "low", "struggling"} {
		if w := s.do(t, http.MethodPost, "/api/v1/mood-entries", map[string]any{"mood": mood}); w.Code != http.StatusCreated {
			t.Fatalf("seed status = %d", w.Code)
		}
		s.clock.Advance(time.Hour)
	}

	w := s.do(t, http.MethodPost, "/api/v1/mood-insights/visits", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("start visit status = %d", w.Code)
	}
	visit := decode[models.Visit](t, w)

	w = s.do(t, http.MethodGet, "/api/v1/mood-insights?range=week&visit_id="+visit.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("insights status = %d: %s", w.Code, w.Body.String())
	}
	report := decode[service.InsightsReport](t, w)
	if report.TotalEntries != 5 || report.AverageMood != "1.4" || report.MostCommonCategory != "Struggling" {
		t.Errorf("report = %+v", report)
	}
	if len(report.TrendPoints) != 7 || len(report.BreakdownRows) != 5 {
		t.Errorf("trend=%d rows=%d", len(report.TrendPoints), len(report.BreakdownRows))
	}
	if report.SupportPrompt == nil || report.SupportPrompt.ResourcesURL != "/api/v1/resources" {
		t.Fatalf("support prompt = %+v", report.SupportPrompt)
	}

	w = s.do(t, http.MethodGet, "/api/v1/mood-insights?range=month&visit_id="+visit.ID, nil)
	if again := decode[service.InsightsReport](t, w); again.SupportPrompt != nil {
		t.Error("support prompt shown twice in one visit")
	}

	if w = s.do(t, http.MethodDelete, "/api/v1/mood-insights/visits/"+visit.ID, nil); w.Code != http.StatusNoContent {
		t.Errorf("end visit status = %d", w.Code)
	}
	w = s.do(t, http.MethodGet, "/api/v1/mood-insights?visit_id="+visit.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("ended visit status = %d, want 404", w.Code)
	}
	if p := decode[apierror.ProblemDetails](t, w); p.Action != apierror.ActionStartVisit {
		t.Errorf("ended visit action = %q, want %q", p.Action, apierror.ActionStartVisit)
	}
}

func TestMoodInsightsErrors(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(t, http.MethodGet, "/api/v1/mood-insights?range=year", nil)
	if p := decode[apierror.ProblemDetails](t, w); w.Code != http.StatusBadRequest || p.Type != apierror.TypeInvalidRange {
		t.Errorf("invalid range = %d %+v", w.Code, p)
	}

	down := newTestServer(t, failingRepository{})
	w = down.do(t, http.MethodGet, "/api/v1/mood-insights?range=week", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	p := decode[apierror.ProblemDetails](t, w)
	if p.Type != apierror.TypeSnapshotUnavailable || p.UserMessage != apierror.SnapshotUnavailableMessage {
		t.Errorf("problem = %+v", p)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("connection refused")) {
		t.Error("internal error detail leaked to client")
	}
	if bytes.Contains(w.Body.Bytes(), []byte("average_mood")) {
		t.Error("partial insights returned with the error")
	}

	if w = down.do(t, http.MethodGet, "/health", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("health status = %d, want 503", w.Code)
	}
}

func TestGetResources(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(t, http.MethodGet, "/api/v1/resources", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	catalog := decode[resources.Catalog](t, w)
	if len(catalog.QuickSupport.Items) == 0 || catalog.QuickSupport.Items[0].Href == "" {
		t.Errorf("catalog = %+v", catalog.QuickSupport)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	if w := s.do(t, http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}
