package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// How far back task outcomes feed the adaptive context.
const adaptiveHistoryDays = 14

// Insight is the full pipeline result for one user and window.
type Insight struct {
	Summary   domain.BehaviorSummary `json:"summary"`
	Reasoning domain.ReasoningOutput `json:"reasoning"`
	Answer    domain.PlacedAnswer    `json:"answer"`
}

// InsightService runs summary, adaptive context, rules and curation.
type InsightService struct {
	summaries *SummaryService
	taskStore domain.TaskStore
	memories  *MemoryService
	engine    *ReasoningEngine
	clock     Clock
	logger    *zap.Logger
}

func NewInsightService(summaries *SummaryService, ts domain.TaskStore, memories *MemoryService, clock Clock, logger *zap.Logger) *InsightService {
	return &InsightService{
		summaries: summaries,
		taskStore: ts,
		memories:  memories,
		engine:    NewReasoningEngine(clock),
		clock:     clock,
		logger:    logger,
	}
}

// Reason summarizes the window named by label and runs the rule engine
// with the user's recent task history merged in.
func (s *InsightService) Reason(ctx context.Context, userID uuid.UUID, label string) (domain.BehaviorSummary, domain.ReasoningOutput, error) {
	summary, err := s.summaries.Summarize(ctx, userID, label)
	if err != nil {
		return domain.BehaviorSummary{}, domain.ReasoningOutput{}, err
	}

	since := startOfDay(s.clock.Now()).AddDate(0, 0, -adaptiveHistoryDays)
	tasks, err := s.taskStore.ListSince(ctx, userID, since)
	if err != nil {
		return domain.BehaviorSummary{}, domain.ReasoningOutput{}, fmt.Errorf("load task history: %w", err)
	}
	adaptive := BuildAdaptiveContext(tasks)

	output := s.engine.Analyze(summary, string(summary.TimeRange.Granularity), &adaptive)
	return summary, output, nil
}

// Generate runs the whole pipeline and curates the primary decision. The
// reasoning is kept as an ai_insight memory; failing to store it does not
// fail the request.
func (s *InsightService) Generate(ctx context.Context, userID uuid.UUID, label string) (*Insight, error) {
	summary, output, err := s.Reason(ctx, userID, label)
	if err != nil {
		return nil, err
	}

	severity := domain.SeverityForConsistency(summary.Consistency.Label)
	primary := output.Primary()
	responseType := responseTypeFor(primary, severity)

	answer := CurateAnswer(domain.CurationInput{
		Action:               primary.Action,
		Reason:               primary.Reason,
		ResponseType:         responseType,
		Severity:             severity,
		Confidence:           output.ConfidenceScore,
		RequiresConfirmation: primary.RequiresConfirmation,
	})

	if err := s.memories.RecordJSON(ctx, userID, domain.MemoryCategoryAIInsight, insightRecord{
		TimeWindow:  output.TimeWindow,
		Why:         output.Why,
		Decisions:   output.Decisions,
		Confidence:  output.ConfidenceScore,
		Consistency: summary.Consistency,
		GeneratedAt: output.GeneratedAt,
	}); err != nil {
		s.logger.Warn("failed to record insight memory",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}

	return &Insight{
		Summary:   summary,
		Reasoning: output,
		Answer: domain.PlacedAnswer{
			CuratedAnswer: answer,
			Placement:     MapPlacement(responseType, severity),
		},
	}, nil
}

type insightRecord struct {
	TimeWindow  string             `json:"time_window"`
	Why         []string           `json:"why"`
	Decisions   []domain.Decision  `json:"decisions"`
	Confidence  float64            `json:"confidence_score"`
	Consistency domain.Consistency `json:"consistency"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// responseTypeFor asks when the user must confirm, warns on high severity
// and informs otherwise.
func responseTypeFor(d domain.Decision, severity domain.Severity) domain.ResponseType {
	switch {
	case d.RequiresConfirmation:
		return domain.ResponseAsk
	case severity == domain.SeverityHigh && d.Action != domain.ActionNoAction:
		return domain.ResponseWarn
	default:
		return domain.ResponseInform
	}
}
