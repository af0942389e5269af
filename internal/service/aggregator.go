package service

import (
	"math"

	"github.com/fitnova/central/internal/domain"
)

const nutritionLoggedBonus = 0.25

// Aggregate folds raw events inside window into a BehaviorSummary. It is
// a pure function of its inputs.
func Aggregate(workouts []domain.WorkoutEvent, reminders []domain.ReminderEvent, nutrition []domain.NutritionLog, window domain.TimeWindow) domain.BehaviorSummary {
	var w domain.WorkoutCounts
	w.Total = len(workouts)
	for _, e := range workouts {
		if e.Completed {
			w.Completed++
		}
	}
	w.Missed = w.Total - w.Completed

	var r domain.ReminderCounts
	r.Sent = len(reminders)
	for _, e := range reminders {
		switch e.Status {
		case domain.ReminderAcknowledged:
			r.Acknowledged++
		case domain.ReminderMissed:
			r.Missed++
		}
	}

	n := domain.NutritionCounts{LoggedDays: len(nutrition)}

	score := ConsistencyScore(w, r, n)

	return domain.BehaviorSummary{
		TimeRange: window,
		Workouts:  w,
		Reminders: r,
		Nutrition: n,
		Consistency: domain.Consistency{
			Score: score,
			Label: domain.ComputeConsistencyLabel(score),
		},
		Signals: ExtractSignals(w, r, n),
	}
}

// ConsistencyScore blends workout completion, reminder acknowledgement and
// a flat bonus for any nutrition logging. The raw sum (at most 2.25) is
// halved, clamped to [0,1] and rounded to two decimals.
func ConsistencyScore(w domain.WorkoutCounts, r domain.ReminderCounts, n domain.NutritionCounts) float64 {
	raw := 0.0
	if w.Total > 0 {
		raw += float64(w.Completed) / float64(w.Total)
	}
	if r.Sent > 0 {
		raw += float64(r.Acknowledged) / float64(r.Sent)
	}
	if n.LoggedDays > 0 {
		raw += nutritionLoggedBonus
	}

	score := math.Min(raw/2, 1.0)
	if score < 0 {
		score = 0
	}
	return math.Round(score*100) / 100
}

// ExtractSignals returns categorical tags in a fixed order. The
// stable_behavior tag appears only when nothing else fired.
func ExtractSignals(w domain.WorkoutCounts, r domain.ReminderCounts, n domain.NutritionCounts) []string {
	signals := []string{}

	if w.Missed > w.Completed {
		signals = append(signals, domain.SignalWorkoutDrop)
	}
	if r.Missed > r.Acknowledged {
		signals = append(signals, domain.SignalReminderFatigue)
	}
	if n.LoggedDays == 0 {
		signals = append(signals, domain.SignalNutritionNotLogged)
	}

	if len(signals) == 0 {
		signals = append(signals, domain.SignalStableBehavior)
	}
	return signals
}
