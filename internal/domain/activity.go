package domain

import (
	"time"

	"github.com/google/uuid"
)

type WorkoutLog struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"user_id"`
	WorkoutName     string         `json:"workout_name"`
	DurationMinutes int            `json:"duration_minutes,omitempty"`
	Details         map[string]any `json:"details,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

type Reminder struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Kind        string    `json:"kind"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReminderLog records how the user reacted to one reminder. The latest log
// for a reminder decides whether it counts as acknowledged.
type ReminderLog struct {
	ID           uuid.UUID `json:"id"`
	ReminderID   uuid.UUID `json:"reminder_id"`
	UserID       uuid.UUID `json:"user_id"`
	Acknowledged bool      `json:"acknowledged"`
	CreatedAt    time.Time `json:"created_at"`
}
