package service

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/fitnova/central/internal/domain"
)

const (
	noteReducedIntensity = "Workout intensity reduced due to missed sessions"
	noteSubstituted      = "Exercise substituted to reduce fatigue"
	noteDietSimplified   = "Diet plan simplified for better adherence"

	dietCalorieFactor = 0.9
	minSets           = 1
)

// actionHandler mutates payload in place and reports whether it applied.
// requiresConfirmation marks diffs the user must approve before they are
// persisted.
type actionHandler func(payload map[string]any, exercises []domain.Exercise) (applied bool, requiresConfirmation bool)

var actionHandlers = map[domain.TaskType]map[domain.Action]actionHandler{
	domain.TaskTypeWorkout: {
		domain.ActionReduceWorkoutIntensity: reduceWorkoutIntensity,
		domain.ActionSubstituteExercise:     substituteExercise,
	},
	domain.TaskTypeDiet: {
		domain.ActionSimplifyDietPlan: simplifyDietPlan,
	},
}

// IsEligibleForAdaptation reports whether the planner may touch t on today.
func IsEligibleForAdaptation(t domain.Task, today time.Time) bool {
	return t.Status != domain.TaskStatusCompleted &&
		len(t.PlannedPayload) > 0 &&
		domain.SameDay(today, t.ScheduledFor)
}

// PlanAdaptations applies at most one decision to each eligible task and
// returns the resulting diffs. Decisions are tried in order; the first one
// with an applicable handler wins. Tasks are never modified: handlers run
// on deep copies of the planned payload.
func PlanAdaptations(tasks []domain.Task, decisions []domain.Decision, exercises []domain.Exercise, today time.Time, appliedAt time.Time) []domain.TaskDiff {
	diffs := []domain.TaskDiff{}

	for _, task := range tasks {
		if !IsEligibleForAdaptation(task, today) {
			continue
		}

		handlers := actionHandlers[task.TaskType]
		if len(handlers) == 0 {
			continue
		}

		for _, decision := range decisions {
			handle, ok := handlers[decision.Action]
			if !ok {
				continue
			}

			updated := copyPayload(task.PlannedPayload)
			applied, confirm := handle(updated, exercises)
			if !applied {
				continue
			}

			diffs = append(diffs, domain.TaskDiff{
				TaskID:               task.ID,
				TaskType:             task.TaskType,
				OriginalPayload:      copyPayload(task.PlannedPayload),
				UpdatedPayload:       updated,
				Action:               decision.Action,
				Reason:               decision.Reason,
				RequiresConfirmation: confirm,
				AppliedAt:            appliedAt,
			})
			break
		}
	}

	return diffs
}

func reduceWorkoutIntensity(payload map[string]any, _ []domain.Exercise) (bool, bool) {
	if sets, ok := intValue(payload["sets"]); ok {
		payload["sets"] = max(minSets, sets-1)
	}
	markModified(payload, noteReducedIntensity)
	return true, false
}

func substituteExercise(payload map[string]any, exercises []domain.Exercise) (bool, bool) {
	failedID, ok := payload["exercise_id"].(string)
	if !ok || failedID == "" {
		return false, false
	}

	var failed *domain.Exercise
	for i := range exercises {
		if exercises[i].ID.String() == failedID {
			failed = &exercises[i]
			break
		}
	}
	if failed == nil {
		return false, false
	}

	replacement := SuggestExerciseSubstitution(*failed, exercises)
	if replacement == nil {
		return false, false
	}

	payload["exercise_id"] = replacement.ID.String()
	markModified(payload, noteSubstituted)
	return true, true
}

func simplifyDietPlan(payload map[string]any, _ []domain.Exercise) (bool, bool) {
	if calories, ok := intValue(payload["calories"]); ok {
		payload["calories"] = int(float64(calories) * dietCalorieFactor)
	}
	markModified(payload, noteDietSimplified)
	return true, false
}

func markModified(payload map[string]any, note string) {
	payload["ai_modified"] = true
	payload["ai_note"] = note
}

// SuggestExerciseSubstitution picks the least fatiguing exercise with the
// same movement pattern and a different fatigue profile. Ties are broken
// by name, then id, so the choice is stable for a given pool.
func SuggestExerciseSubstitution(failed domain.Exercise, all []domain.Exercise) *domain.Exercise {
	var candidates []domain.Exercise
	for _, ex := range all {
		if ex.MovementPattern == failed.MovementPattern &&
			ex.FatigueProfile != failed.FatigueProfile &&
			ex.ID != failed.ID {
			candidates = append(candidates, ex)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.FatigueProfile.Rank() != b.FatigueProfile.Rank() {
			return a.FatigueProfile.Rank() < b.FatigueProfile.Rank()
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID.String() < b.ID.String()
	})

	best := candidates[0]
	return &best
}

// intValue accepts the integer shapes a JSON payload can carry. Fractional
// numbers are rejected.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// copyPayload deep-copies the JSON-shaped payload so callers never share
// nested maps or slices.
func copyPayload(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = copyValue(v)
	}
	return dst
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyPayload(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return val
	}
}
