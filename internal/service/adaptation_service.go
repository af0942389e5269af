package service

import (
	"context"
	"fmt"

	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdaptationResult splits planned diffs into those persisted and those
// waiting for the user's confirmation.
type AdaptationResult struct {
	Applied             []domain.TaskDiff `json:"applied"`
	PendingConfirmation []domain.TaskDiff `json:"pending_confirmation"`
}

// AdaptationService plans and persists adjustments to today's tasks.
type AdaptationService struct {
	taskStore     domain.TaskStore
	exerciseStore domain.ExerciseStore
	memories      *MemoryService
	clock         Clock
	logger        *zap.Logger
}

func NewAdaptationService(ts domain.TaskStore, es domain.ExerciseStore, memories *MemoryService, clock Clock, logger *zap.Logger) *AdaptationService {
	return &AdaptationService{
		taskStore:     ts,
		exerciseStore: es,
		memories:      memories,
		clock:         clock,
		logger:        logger,
	}
}

// Preview plans today's adaptations without persisting anything. Caller
// decisions are tried before the ones derived from task history.
func (s *AdaptationService) Preview(ctx context.Context, userID uuid.UUID, decisions []domain.Decision) ([]domain.TaskDiff, error) {
	diffs, _, err := s.plan(ctx, userID, decisions)
	return diffs, err
}

// plan returns today's diffs together with the current status of every
// task it looked at.
func (s *AdaptationService) plan(ctx context.Context, userID uuid.UUID, decisions []domain.Decision) ([]domain.TaskDiff, map[uuid.UUID]domain.TaskStatus, error) {
	now := s.clock.Now()
	today := startOfDay(now)

	tasks, err := s.taskStore.ListByDate(ctx, userID, today)
	if err != nil {
		return nil, nil, fmt.Errorf("load today's tasks: %w", err)
	}
	tasks = notYetAdapted(tasks)
	if len(tasks) == 0 {
		return []domain.TaskDiff{}, nil, nil
	}

	history, err := s.taskStore.ListSince(ctx, userID, today.AddDate(0, 0, -adaptiveHistoryDays))
	if err != nil {
		return nil, nil, fmt.Errorf("load task history: %w", err)
	}

	exercises, err := s.exerciseStore.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load exercises: %w", err)
	}

	adaptive := BuildAdaptiveContext(history)
	all := make([]domain.Decision, 0, len(decisions)+len(adaptive.Decisions))
	all = append(all, decisions...)
	all = append(all, adaptive.Decisions...)

	statuses := make(map[uuid.UUID]domain.TaskStatus, len(tasks))
	for _, t := range tasks {
		statuses[t.ID] = t.Status
	}

	return PlanAdaptations(tasks, all, exercises, today, now), statuses, nil
}

// adaptedStatus is the status a task takes once its plan is rewritten.
// Only pending tasks become modified; a recorded miss stays a miss.
func adaptedStatus(current domain.TaskStatus) domain.TaskStatus {
	if current == domain.TaskStatusPending {
		return domain.TaskStatusModified
	}
	return current
}

// Apply persists planned diffs. Diffs that require confirmation are only
// persisted when confirmed is true.
func (s *AdaptationService) Apply(ctx context.Context, userID uuid.UUID, decisions []domain.Decision, confirmed bool) (*AdaptationResult, error) {
	diffs, statuses, err := s.plan(ctx, userID, decisions)
	if err != nil {
		return nil, err
	}

	result := &AdaptationResult{
		Applied:             []domain.TaskDiff{},
		PendingConfirmation: []domain.TaskDiff{},
	}

	for _, diff := range diffs {
		if diff.RequiresConfirmation && !confirmed {
			result.PendingConfirmation = append(result.PendingConfirmation, diff)
			continue
		}

		if err := s.taskStore.UpdatePlan(ctx, diff.TaskID, diff.UpdatedPayload, adaptedStatus(statuses[diff.TaskID])); err != nil {
			return result, fmt.Errorf("update task %s: %w", diff.TaskID, err)
		}
		result.Applied = append(result.Applied, diff)

		if err := s.memories.RecordJSON(ctx, userID, domain.MemoryCategoryAdaptation, adaptationRecord{
			TaskID:   diff.TaskID,
			TaskType: diff.TaskType,
			Action:   diff.Action,
			Reason:   diff.Reason,
		}); err != nil {
			s.logger.Warn("failed to record adaptation memory",
				zap.String("task_id", diff.TaskID.String()),
				zap.Error(err))
		}
	}

	if len(result.Applied) > 0 {
		s.logger.Info("tasks adapted",
			zap.String("user_id", userID.String()),
			zap.Int("applied", len(result.Applied)),
			zap.Int("pending", len(result.PendingConfirmation)))
	}

	return result, nil
}

// notYetAdapted drops tasks an earlier pass already rewrote, so repeated
// runs never stack adjustments on the same plan.
func notYetAdapted(tasks []domain.Task) []domain.Task {
	out := tasks[:0:0]
	for _, t := range tasks {
		if modified, _ := t.PlannedPayload["ai_modified"].(bool); modified {
			continue
		}
		out = append(out, t)
	}
	return out
}

type adaptationRecord struct {
	TaskID   uuid.UUID       `json:"task_id"`
	TaskType domain.TaskType `json:"task_type"`
	Action   domain.Action   `json:"action"`
	Reason   string          `json:"reason"`
}
