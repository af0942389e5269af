package domain

import "time"

// WorkoutEvent is one workout observation inside a window. A logged
// workout is completed; a scheduled workout task that was missed is not.
type WorkoutEvent struct {
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type ReminderStatus string

const (
	ReminderAcknowledged ReminderStatus = "acknowledged"
	ReminderMissed       ReminderStatus = "missed"
)

// ReminderEvent is a reminder whose outcome has already been classified.
type ReminderEvent struct {
	Status      ReminderStatus `json:"status"`
	ScheduledAt time.Time      `json:"scheduled_at"`
}

// NutritionLog marks a day on which the user logged food.
type NutritionLog struct {
	LoggedAt time.Time `json:"logged_at"`
}

const (
	SignalWorkoutDrop        = "workout_drop"
	SignalReminderFatigue    = "reminder_fatigue"
	SignalNutritionNotLogged = "nutrition_not_logged"
	SignalStableBehavior     = "stable_behavior"
)

type WorkoutCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Missed    int `json:"missed"`
}

type ReminderCounts struct {
	Sent         int `json:"sent"`
	Acknowledged int `json:"acknowledged"`
	Missed       int `json:"missed"`
}

type NutritionCounts struct {
	LoggedDays int `json:"logged_days"`
}

type Consistency struct {
	Score float64          `json:"score"`
	Label ConsistencyLabel `json:"label"`
}

// BehaviorSummary aggregates one user's activity over one window.
type BehaviorSummary struct {
	TimeRange   TimeWindow      `json:"time_range"`
	Workouts    WorkoutCounts   `json:"workouts"`
	Reminders   ReminderCounts  `json:"reminders"`
	Nutrition   NutritionCounts `json:"nutrition"`
	Consistency Consistency     `json:"consistency"`
	Signals     []string        `json:"signals"`
}

// HasSignal reports whether the summary carries the named signal.
func (s BehaviorSummary) HasSignal(name string) bool {
	for _, sig := range s.Signals {
		if sig == name {
			return true
		}
	}
	return false
}
