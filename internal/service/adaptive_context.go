package service

import "github.com/fitnova/central/internal/domain"

// Repeated misses or edits of the same kind before a plan is adapted.
const adaptiveThreshold = 2

// BuildAdaptiveContext turns recent task outcomes into decisions the rule
// engine can merge.
func BuildAdaptiveContext(tasks []domain.Task) domain.AdaptiveContext {
	var signals domain.AdaptiveSignals

	for _, t := range tasks {
		switch t.TaskType {
		case domain.TaskTypeWorkout:
			switch t.Status {
			case domain.TaskStatusMissed:
				signals.MissedWorkouts++
			case domain.TaskStatusModified:
				signals.ModifiedWorkouts++
			}
		case domain.TaskTypeDiet:
			if t.Status == domain.TaskStatusMissed {
				signals.MissedDiets++
			}
		}
	}

	decisions := []domain.Decision{}

	if signals.MissedWorkouts >= adaptiveThreshold {
		decisions = append(decisions, domain.Decision{
			Action: domain.ActionReduceWorkoutIntensity,
			Reason: "Multiple workouts were missed recently",
		})
	}
	if signals.ModifiedWorkouts >= adaptiveThreshold {
		decisions = append(decisions, domain.Decision{
			Action: domain.ActionSimplifyWorkoutPlan,
			Reason: "Workout plans were frequently modified",
		})
	}
	if signals.MissedDiets >= adaptiveThreshold {
		decisions = append(decisions, domain.Decision{
			Action: domain.ActionSimplifyDietPlan,
			Reason: "Diet adherence has been low",
		})
	}

	return domain.AdaptiveContext{Decisions: decisions, Signals: signals}
}
