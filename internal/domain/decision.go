package domain

import "time"

type Action string

const (
	ActionAdjustReminderTime     Action = "adjust_reminder_time"
	ActionSuggestLighterWorkout  Action = "suggest_lighter_workout"
	ActionSuggestRestDay         Action = "suggest_rest_day"
	ActionRequestUserFeedback    Action = "request_user_feedback"
	ActionReduceWorkoutIntensity Action = "reduce_workout_intensity"
	ActionSimplifyWorkoutPlan    Action = "simplify_workout_plan"
	ActionSimplifyDietPlan       Action = "simplify_diet_plan"
	ActionSubstituteExercise     Action = "substitute_exercise"
	ActionNoAction               Action = "no_action"
)

func ValidAction(a string) bool {
	switch Action(a) {
	case ActionAdjustReminderTime, ActionSuggestLighterWorkout, ActionSuggestRestDay,
		ActionRequestUserFeedback, ActionReduceWorkoutIntensity, ActionSimplifyWorkoutPlan,
		ActionSimplifyDietPlan, ActionSubstituteExercise, ActionNoAction:
		return true
	}
	return false
}

// Decision is a candidate behavioral adjustment. The first decision in a
// list is the primary one and the only one shown to the user.
type Decision struct {
	Action               Action `json:"action"`
	Reason               string `json:"reason"`
	RequiresConfirmation bool   `json:"requires_confirmation,omitempty"`
}

// AdaptiveSignals counts task outcomes over the recent history.
type AdaptiveSignals struct {
	MissedWorkouts   int `json:"missed_workouts"`
	ModifiedWorkouts int `json:"modified_workouts"`
	MissedDiets      int `json:"missed_diets"`
}

// AdaptiveContext carries decisions derived from task history into the
// rule engine.
type AdaptiveContext struct {
	Decisions []Decision      `json:"decisions"`
	Signals   AdaptiveSignals `json:"signals"`
}

const ReasoningTypeBehaviorAnalysis = "behavior_analysis"

type ReasoningOutput struct {
	ReasoningType   string     `json:"reasoning_type"`
	Why             []string   `json:"why"`
	SignalsUsed     []string   `json:"signals_used"`
	Decisions       []Decision `json:"decisions"`
	ConfidenceScore float64    `json:"confidence_score"`
	TimeWindow      string     `json:"time_window"`
	GeneratedAt     time.Time  `json:"generated_at"`
}

// Primary returns the decision surfaced to the user.
func (o ReasoningOutput) Primary() Decision {
	if len(o.Decisions) == 0 {
		return Decision{Action: ActionNoAction}
	}
	return o.Decisions[0]
}
