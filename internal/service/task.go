package service

import (
	"context"
	"errors"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/store"
	"github.com/google/uuid"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskType   = errors.New("invalid task_type")
	ErrInvalidTaskStatus = errors.New("invalid status")
	ErrTaskDateMissing   = errors.New("scheduled_for is required")
)

type TaskService struct {
	store domain.TaskStore
	clock Clock
}

func NewTaskService(s domain.TaskStore, clock Clock) *TaskService {
	return &TaskService{store: s, clock: clock}
}

func (s *TaskService) Create(ctx context.Context, t *domain.Task) error {
	if !domain.ValidTaskType(string(t.TaskType)) {
		return ErrInvalidTaskType
	}
	if t.Status != "" && !domain.ValidTaskStatus(string(t.Status)) {
		return ErrInvalidTaskStatus
	}
	if t.ScheduledFor.IsZero() {
		return ErrTaskDateMissing
	}
	return s.store.Create(ctx, t)
}

// ListForDay returns the user's tasks on day, or today when day is zero.
func (s *TaskService) ListForDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.Task, error) {
	if day.IsZero() {
		day = startOfDay(s.clock.Now())
	}
	tasks, err := s.store.ListByDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	if !domain.ValidTaskStatus(string(status)) {
		return nil, ErrInvalidTaskStatus
	}
	if err := s.store.UpdateStatus(ctx, id, userID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	t, err := s.store.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}
