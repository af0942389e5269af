package service

import (
	"context"
	"fmt"

	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SummaryService loads a user's events for a window and aggregates them.
type SummaryService struct {
	activityStore domain.ActivityStore
	clock         Clock
	logger        *zap.Logger
}

func NewSummaryService(as domain.ActivityStore, clock Clock, logger *zap.Logger) *SummaryService {
	return &SummaryService{activityStore: as, clock: clock, logger: logger}
}

// Summarize resolves label (a question or range keyword) and summarizes
// the resulting window.
func (s *SummaryService) Summarize(ctx context.Context, userID uuid.UUID, label string) (domain.BehaviorSummary, error) {
	return s.summarizeWindow(ctx, userID, ResolveTimeRange(label, s.clock.Now()))
}

// SummarizeRange summarizes explicit ISO 8601 bounds. Unusable bounds fall
// back to the default window.
func (s *SummaryService) SummarizeRange(ctx context.Context, userID uuid.UUID, start, end string) (domain.BehaviorSummary, error) {
	return s.summarizeWindow(ctx, userID, ResolveCustomRange(start, end, s.clock.Now()))
}

func (s *SummaryService) summarizeWindow(ctx context.Context, userID uuid.UUID, window domain.TimeWindow) (domain.BehaviorSummary, error) {
	workouts, err := s.activityStore.ListWorkoutEvents(ctx, userID, window.Start, window.End)
	if err != nil {
		return domain.BehaviorSummary{}, fmt.Errorf("load workout events: %w", err)
	}

	reminders, err := s.activityStore.ListReminderEvents(ctx, userID, window.Start, window.End)
	if err != nil {
		return domain.BehaviorSummary{}, fmt.Errorf("load reminder events: %w", err)
	}

	nutrition, err := s.activityStore.ListNutritionLogs(ctx, userID, window.Start, window.End)
	if err != nil {
		return domain.BehaviorSummary{}, fmt.Errorf("load nutrition logs: %w", err)
	}

	summary := Aggregate(workouts, reminders, nutrition, window)

	s.logger.Debug("behavior summary built",
		zap.String("user_id", userID.String()),
		zap.String("granularity", string(window.Granularity)),
		zap.Float64("consistency", summary.Consistency.Score),
		zap.Strings("signals", summary.Signals))

	return summary, nil
}
