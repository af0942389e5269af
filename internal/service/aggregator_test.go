package service

import (
	"testing"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/stretchr/testify/assert"
)

func workouts(completed, missed int) []domain.WorkoutEvent {
	var out []domain.WorkoutEvent
	for i := 0; i < completed; i++ {
		out = append(out, domain.WorkoutEvent{Completed: true, CreatedAt: testNow})
	}
	for i := 0; i < missed; i++ {
		out = append(out, domain.WorkoutEvent{Completed: false, CreatedAt: testNow})
	}
	return out
}

func reminders(acknowledged, missed int) []domain.ReminderEvent {
	var out []domain.ReminderEvent
	for i := 0; i < acknowledged; i++ {
		out = append(out, domain.ReminderEvent{Status: domain.ReminderAcknowledged, ScheduledAt: testNow})
	}
	for i := 0; i < missed; i++ {
		out = append(out, domain.ReminderEvent{Status: domain.ReminderMissed, ScheduledAt: testNow})
	}
	return out
}

func nutritionDays(n int) []domain.NutritionLog {
	var out []domain.NutritionLog
	for i := 0; i < n; i++ {
		out = append(out, domain.NutritionLog{LoggedAt: testNow.AddDate(0, 0, -i)})
	}
	return out
}

func TestAggregate_Empty(t *testing.T) {
	window := ResolveTimeRange("weekly", testNow)
	got := Aggregate(nil, nil, nil, window)

	assert.Equal(t, 0.0, got.Consistency.Score)
	assert.Equal(t, domain.ConsistencyNeedsAttention, got.Consistency.Label)
	assert.Equal(t, []string{domain.SignalNutritionNotLogged}, got.Signals)
	assert.Equal(t, domain.WorkoutCounts{}, got.Workouts)
	assert.Equal(t, domain.ReminderCounts{}, got.Reminders)
	assert.Equal(t, window, got.TimeRange)
}

func TestAggregate_Idempotent(t *testing.T) {
	window := ResolveTimeRange("30d", testNow)
	w, r, n := workouts(3, 2), reminders(1, 4), nutritionDays(2)

	first := Aggregate(w, r, n, window)
	second := Aggregate(w, r, n, window)

	assert.Equal(t, first, second)
}

func TestAggregate_Counts(t *testing.T) {
	got := Aggregate(workouts(4, 1), reminders(3, 2), nutritionDays(5), domain.TimeWindow{})

	assert.Equal(t, domain.WorkoutCounts{Total: 5, Completed: 4, Missed: 1}, got.Workouts)
	assert.Equal(t, domain.ReminderCounts{Sent: 5, Acknowledged: 3, Missed: 2}, got.Reminders)
	assert.Equal(t, 5, got.Nutrition.LoggedDays)
	assert.Equal(t, []string{domain.SignalStableBehavior}, got.Signals)
}

func TestConsistencyScore(t *testing.T) {
	tests := []struct {
		name string
		w    domain.WorkoutCounts
		r    domain.ReminderCounts
		n    domain.NutritionCounts
		want float64
	}{
		{"nothing", domain.WorkoutCounts{}, domain.ReminderCounts{}, domain.NutritionCounts{}, 0},
		{"perfect", domain.WorkoutCounts{Total: 3, Completed: 3}, domain.ReminderCounts{Sent: 2, Acknowledged: 2}, domain.NutritionCounts{LoggedDays: 1}, 1.0},
		{"nutrition only", domain.WorkoutCounts{}, domain.ReminderCounts{}, domain.NutritionCounts{LoggedDays: 3}, 0.13},
		{"half workouts", domain.WorkoutCounts{Total: 2, Completed: 1}, domain.ReminderCounts{}, domain.NutritionCounts{}, 0.25},
		{"thirds round", domain.WorkoutCounts{Total: 3, Completed: 2}, domain.ReminderCounts{Sent: 3, Acknowledged: 1}, domain.NutritionCounts{}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConsistencyScore(tt.w, tt.r, tt.n)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestExtractSignals(t *testing.T) {
	t.Run("order is fixed", func(t *testing.T) {
		got := ExtractSignals(
			domain.WorkoutCounts{Total: 3, Completed: 1, Missed: 2},
			domain.ReminderCounts{Sent: 3, Acknowledged: 1, Missed: 2},
			domain.NutritionCounts{},
		)
		assert.Equal(t, []string{domain.SignalWorkoutDrop, domain.SignalReminderFatigue, domain.SignalNutritionNotLogged}, got)
	})

	t.Run("ties do not fire", func(t *testing.T) {
		got := ExtractSignals(
			domain.WorkoutCounts{Total: 2, Completed: 1, Missed: 1},
			domain.ReminderCounts{Sent: 2, Acknowledged: 1, Missed: 1},
			domain.NutritionCounts{LoggedDays: 1},
		)
		assert.Equal(t, []string{domain.SignalStableBehavior}, got)
	})
}

func TestAggregate_DoesNotFilterByWindow(t *testing.T) {
	// The store already windowed the events; the aggregator counts what it is given.
	old := []domain.WorkoutEvent{{Completed: true, CreatedAt: testNow.AddDate(-1, 0, 0)}}
	window := domain.TimeWindow{Start: testNow.Add(-time.Hour), End: testNow}

	got := Aggregate(old, nil, nil, window)
	assert.Equal(t, 1, got.Workouts.Completed)
}
