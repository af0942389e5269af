package service

import (
	"strings"

	"github.com/fitnova/central/internal/domain"
)

const (
	workoutMissRatioThreshold = 0.3

	reasonWorkoutRegression = "Workout adherence dropped significantly during this period."
	reasonReminderIssues    = "More reminders were missed than acknowledged."

	signalUsedWorkouts  = "workouts"
	signalUsedReminders = "reminders"
	signalUsedAdaptive  = "adaptive"

	confidenceActionable = 0.9
	confidenceNoAction   = 0.6
)

// DetectWorkoutRegression returns a reason when at least 30% of the
// observed workouts were missed. No data means no regression.
func DetectWorkoutRegression(summary domain.BehaviorSummary) []string {
	completed := summary.Workouts.Completed
	missed := summary.Workouts.Missed

	if completed+missed == 0 {
		return nil
	}

	missRatio := float64(missed) / float64(max(1, completed+missed))
	if missRatio >= workoutMissRatioThreshold {
		return []string{reasonWorkoutRegression}
	}
	return nil
}

// DetectReminderIssues returns a reason when strictly more reminders were
// missed than acknowledged.
func DetectReminderIssues(summary domain.BehaviorSummary) []string {
	if summary.Reminders.Missed > summary.Reminders.Acknowledged {
		return []string{reasonReminderIssues}
	}
	return nil
}

// DeriveDecisions turns reasons into decisions, one per recognized reason,
// in reason order. It never returns an empty list.
func DeriveDecisions(reasons []string) []domain.Decision {
	var decisions []domain.Decision

	for _, reason := range reasons {
		if strings.Contains(reason, "Workout adherence dropped") {
			decisions = append(decisions, domain.Decision{
				Action: domain.ActionSuggestLighterWorkout,
				Reason: "Lower adherence suggests current intensity may be too high.",
			})
		}
		if strings.Contains(reason, "reminders were missed") {
			decisions = append(decisions, domain.Decision{
				Action: domain.ActionAdjustReminderTime,
				Reason: "High reminder miss rate detected.",
			})
		}
	}

	if len(decisions) == 0 {
		decisions = append(decisions, domain.Decision{
			Action: domain.ActionNoAction,
			Reason: "No significant issues detected.",
		})
	}
	return decisions
}

// ReasoningEngine explains a summary and proposes ranked decisions.
type ReasoningEngine struct {
	clock Clock
}

func NewReasoningEngine(clock Clock) *ReasoningEngine {
	return &ReasoningEngine{clock: clock}
}

// Analyze runs the rules over summary. Adaptive decisions, when present,
// are appended after the rule decisions and never reorder them; confidence
// is read from the first decision only.
func (e *ReasoningEngine) Analyze(summary domain.BehaviorSummary, timeWindow string, adaptive *domain.AdaptiveContext) domain.ReasoningOutput {
	why := []string{}
	signalsUsed := []string{}

	if reasons := DetectWorkoutRegression(summary); len(reasons) > 0 {
		why = append(why, reasons...)
		signalsUsed = append(signalsUsed, signalUsedWorkouts)
	}

	if reasons := DetectReminderIssues(summary); len(reasons) > 0 {
		why = append(why, reasons...)
		signalsUsed = append(signalsUsed, signalUsedReminders)
	}

	decisions := DeriveDecisions(why)

	if adaptive != nil && len(adaptive.Decisions) > 0 {
		decisions = append(decisions, adaptive.Decisions...)
		signalsUsed = append(signalsUsed, signalUsedAdaptive)
	}

	confidence := confidenceNoAction
	if decisions[0].Action != domain.ActionNoAction {
		confidence = confidenceActionable
	}

	return domain.ReasoningOutput{
		ReasoningType:   domain.ReasoningTypeBehaviorAnalysis,
		Why:             why,
		SignalsUsed:     signalsUsed,
		Decisions:       decisions,
		ConfidenceScore: confidence,
		TimeWindow:      timeWindow,
		GeneratedAt:     e.clock.Now(),
	}
}
