package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/store"
	"github.com/google/uuid"
)

var (
	ErrWorkoutNameMissing   = errors.New("workout_name is required")
	ErrReminderTitleMissing = errors.New("title is required")
	ErrReminderTimeMissing  = errors.New("scheduled_at is required")
	ErrReminderNotFound     = errors.New("reminder not found")
	ErrNutritionEmpty       = errors.New("description is required")
)

// ActivityService records the raw events the behavior summary is built
// from.
type ActivityService struct {
	store    domain.ActivityStore
	memories *MemoryService
}

func NewActivityService(s domain.ActivityStore, memories *MemoryService) *ActivityService {
	return &ActivityService{store: s, memories: memories}
}

func (s *ActivityService) LogWorkout(ctx context.Context, w *domain.WorkoutLog) error {
	if strings.TrimSpace(w.WorkoutName) == "" {
		return ErrWorkoutNameMissing
	}
	return s.store.CreateWorkoutLog(ctx, w)
}

func (s *ActivityService) CreateReminder(ctx context.Context, r *domain.Reminder) error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrReminderTitleMissing
	}
	if r.ScheduledAt.IsZero() {
		return ErrReminderTimeMissing
	}
	if r.Kind == "" {
		r.Kind = "general"
	}
	return s.store.CreateReminder(ctx, r)
}

// AcknowledgeReminder appends a log for the reminder; the latest log
// decides how the reminder is counted.
func (s *ActivityService) AcknowledgeReminder(ctx context.Context, reminderID, userID uuid.UUID, acknowledged bool) (*domain.ReminderLog, error) {
	if _, err := s.store.GetReminder(ctx, reminderID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}

	l := &domain.ReminderLog{ReminderID: reminderID, UserID: userID, Acknowledged: acknowledged}
	if err := s.store.CreateReminderLog(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// LogNutrition stores a nutrition entry as a user-sourced health memory.
func (s *ActivityService) LogNutrition(ctx context.Context, userID uuid.UUID, description string, metadata map[string]any) (*domain.HealthMemory, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrNutritionEmpty
	}

	m := &domain.HealthMemory{
		UserID:   userID,
		Category: domain.MemoryCategoryNutrition,
		Source:   domain.MemorySourceUser,
		Content:  description,
		Metadata: metadata,
	}
	if err := s.memories.Record(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
