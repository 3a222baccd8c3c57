package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/thrivetrack/backend/internal/logger"
	"github.com/thrivetrack/backend/internal/models"
	"github.com/thrivetrack/backend/internal/moodengine"
	"github.com/thrivetrack/backend/internal/repository"
)

// ResourcesURL is where the support prompt sends the user
const ResourcesURL = "/api/v1/resources"

// InsightsReport is everything the insights screen renders for one range
type InsightsReport struct {
	Range              moodengine.Range          `json:"range"`
	TotalEntries       int                       `json:"total_entries"`
	AverageMood        string                    `json:"average_mood"`
	MostCommonCategory string                    `json:"most_common_category"`
	TrendPoints        []moodengine.TrendPoint   `json:"trend_points"`
	BreakdownSlices    []moodengine.BreakdownRow `json:"breakdown_slices"`
	BreakdownRows      []moodengine.BreakdownRow `json:"breakdown_rows"`
	Insights           []string                  `json:"insights"`
	SupportPrompt      *SupportPromptView        `json:"support_prompt"`
	GeneratedAt        time.Time                 `json:"generated_at"`
}

// SupportPromptView is the support prompt plus the link it offers
type SupportPromptView struct {
	moodengine.SupportPrompt
	ResourcesURL string `json:"resources_url"`
}

type moodInsightsService struct {
	repo     repository.MoodEntryRepository
	visits   *VisitStore
	clock    clockwork.Clock
	location *time.Location
}

// NewMoodInsightsService creates the insights service. loc decides which
// weekday a check-in falls on.
func NewMoodInsightsService(repo repository.MoodEntryRepository, visits *VisitStore, clock clockwork.Clock, loc *time.Location) MoodInsightsService {
	if loc == nil {
		loc = time.UTC
	}
	return &moodInsightsService{
		repo:     repo,
		visits:   visits,
		clock:    clock,
		location: loc,
	}
}

func (s *moodInsightsService) GetInsights(ctx context.Context, userID, rangeKey, visitID string) (*InsightsReport, error) {
	r, err := moodengine.ParseRange(rangeKey)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}

	now := s.clock.Now()
	result := moodengine.Derive(entries, r, moodengine.Options{Now: now, Location: s.location})

	log := logger.Ctx(ctx)
	if result.Rejected > 0 {
		log.Debug("skipped unreadable mood entries", logger.Int("count", result.Rejected))
	}

	// The prompt looks at the whole history, not the selected range
	history, _ := moodengine.NormalizeAll(entries)
	var prompt *moodengine.SupportPrompt
	if visitID == "" {
		prompt, _ = moodengine.EvaluateSupportPrompt(history, moodengine.SupportPromptState{})
	} else {
		prompt, err = s.visits.EvaluateSupportPrompt(userID, visitID, history)
		if err != nil {
			return nil, err
		}
	}

	report := &InsightsReport{
		Range:              r,
		TotalEntries:       result.Aggregates.TotalEntries,
		AverageMood:        result.Aggregates.AverageMood(),
		MostCommonCategory: result.Aggregates.MostCommonLabel(),
		TrendPoints:        result.Trend,
		BreakdownSlices:    result.Breakdown.Slices,
		BreakdownRows:      result.Breakdown.Rows,
		Insights:           result.Insights,
		GeneratedAt:        now.UTC(),
	}
	if prompt != nil {
		report.SupportPrompt = &SupportPromptView{SupportPrompt: *prompt, ResourcesURL: ResourcesURL}
		log.Info("support prompt shown", logger.String("avg", prompt.Avg))
		if visitID == "" {
			// Nothing remembers this prompt; the next call shows it again
			log.Debug("support prompt shown without a visit")
		}
	}

	log.Debug("mood insights derived",
		logger.String("range", string(r)),
		logger.Int("total_entries", report.TotalEntries),
	)
	return report, nil
}

func (s *moodInsightsService) StartVisit(ctx context.Context, userID string) (*models.Visit, error) {
	v := s.visits.Start(userID)
	logger.Ctx(ctx).Debug("insights visit started", logger.String("visit_id", v.ID))
	return &v, nil
}

func (s *moodInsightsService) EndVisit(ctx context.Context, userID, visitID string) error {
	s.visits.End(userID, visitID)
	return nil
}
