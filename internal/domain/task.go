package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskType string

const (
	TaskTypeWorkout  TaskType = "workout"
	TaskTypeDiet     TaskType = "diet"
	TaskTypeRecovery TaskType = "recovery"
)

func ValidTaskType(t string) bool {
	switch TaskType(t) {
	case TaskTypeWorkout, TaskTypeDiet, TaskTypeRecovery:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusMissed    TaskStatus = "missed"
	TaskStatusModified  TaskStatus = "modified"
)

func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusCompleted, TaskStatusMissed, TaskStatusModified:
		return true
	}
	return false
}

// Task is one planned item for one day. ScheduledFor carries a calendar
// date; its clock component is ignored.
type Task struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	TaskType       TaskType       `json:"task_type"`
	Status         TaskStatus     `json:"status"`
	ScheduledFor   time.Time      `json:"scheduled_for"`
	PlannedPayload map[string]any `json:"planned_payload,omitempty"`
	ActualPayload  map[string]any `json:"actual_payload,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// SameDay reports whether a and b carry the same calendar date, each read
// in its own location. Dates loaded from DATE columns arrive as UTC
// midnight and must not be shifted.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TaskDiff is one explainable, not yet persisted mutation of a task's plan.
type TaskDiff struct {
	TaskID               uuid.UUID      `json:"task_id"`
	TaskType             TaskType       `json:"task_type"`
	OriginalPayload      map[string]any `json:"original_payload"`
	UpdatedPayload       map[string]any `json:"updated_payload"`
	Action               Action         `json:"action"`
	Reason               string         `json:"reason"`
	RequiresConfirmation bool           `json:"requires_confirmation"`
	AppliedAt            time.Time      `json:"applied_at"`
}
