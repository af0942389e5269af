package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserStore interface {
	Create(ctx context.Context, u *User) error
	GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*User, error)
}

// ActivityStore reads and records the raw events the summary is built from.
type ActivityStore interface {
	CreateWorkoutLog(ctx context.Context, w *WorkoutLog) error
	CreateReminder(ctx context.Context, r *Reminder) error
	CreateReminderLog(ctx context.Context, l *ReminderLog) error
	GetReminder(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Reminder, error)

	ListWorkoutEvents(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]WorkoutEvent, error)
	ListReminderEvents(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]ReminderEvent, error)
	ListNutritionLogs(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]NutritionLog, error)
}

type TaskStore interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Task, error)
	ListByDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]Task, error)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, status TaskStatus) error
	UpdatePlan(ctx context.Context, id uuid.UUID, payload map[string]any, status TaskStatus) error
	ListUserIDsWithOpenTasks(ctx context.Context, day time.Time) ([]uuid.UUID, error)
}

type ExerciseStore interface {
	Create(ctx context.Context, e *Exercise) error
	List(ctx context.Context) ([]Exercise, error)
}

type HealthMemoryStore interface {
	Create(ctx context.Context, m *HealthMemory) error
	ListByCategory(ctx context.Context, userID uuid.UUID, category MemoryCategory, limit int) ([]HealthMemory, error)
	Recall(ctx context.Context, userID uuid.UUID, embedding []float32, topK int) ([]MemoryWithScore, error)
}

type EmbeddingClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// TextGenerator is the opaque language model call used by agents.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
