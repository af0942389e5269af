package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitnova/central/internal/agent"
	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrGoalEmpty        = errors.New("goal is required")
	ErrAgentUnavailable = errors.New("no agent available for this request")
)

// Agent answers below this confidence, or without a result, are dropped.
const minAgentConfidence = 0.4

// Orchestration is the outcome of one orchestrated request. Only the
// primary agent's answer is returned to the user.
type Orchestration struct {
	Goal        string                    `json:"goal"`
	Intent      domain.Intent             `json:"intent"`
	Constraints domain.WorkoutConstraints `json:"constraints"`
	Preferences Preferences               `json:"preferences"`
	Primary     *agent.Response           `json:"primary,omitempty"`
	Suppressed  []string                  `json:"suppressed,omitempty"`
}

// Orchestrator decides which agents may answer a goal and keeps only the
// primary answer.
type Orchestrator struct {
	registry   *agent.Registry
	reflection *ReflectionService
	clock      Clock
	logger     *zap.Logger
}

func NewOrchestrator(registry *agent.Registry, reflection *ReflectionService, clock Clock, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{registry: registry, reflection: reflection, clock: clock, logger: logger}
}

func (o *Orchestrator) Handle(ctx context.Context, userID uuid.UUID, goal string) (*Orchestration, error) {
	if goal == "" {
		return nil, ErrGoalEmpty
	}

	intent := ClassifyIntent(goal)
	req := agent.Request{
		UserID:      userID,
		Goal:        goal,
		Intent:      intent,
		Constraints: ExtractWorkoutConstraints(goal),
		Now:         o.clock.Now(),
	}

	prefs, err := o.reflection.Preferences(ctx, userID)
	if err != nil {
		o.logger.Warn("failed to read preferences", zap.String("user_id", userID.String()), zap.Error(err))
	}

	var responses []agent.Response
	var consulted []string

	switch {
	case intent == domain.IntentRAGQuestion || intent == domain.IntentLLMOnly:
		responses, consulted, err = o.handleTraining(ctx, req)
	case intent.IsReminder():
		responses, err = o.dispatch(ctx, agent.NameReminderReasoning, req)
	default:
		responses, err = o.dispatch(ctx, agent.NameFallback, req)
	}
	if err != nil {
		return nil, err
	}

	result := &Orchestration{
		Goal:        goal,
		Intent:      intent,
		Constraints: req.Constraints,
		Preferences: prefs,
		Suppressed:  consulted,
	}

	primary, ok := pickPrimary(responses)
	if !ok {
		return result, nil
	}
	result.Primary = &primary

	if err := o.reflection.Reflect(ctx, userID, intent, primary.Agent, consulted); err != nil {
		o.logger.Warn("reflection failed", zap.String("user_id", userID.String()), zap.Error(err))
	}

	return result, nil
}

// handleTraining asks the coach and, for nutrition-flavored goals, folds
// the dietician's protein hint into the coach's result. The dietician is
// consulted but never primary.
func (o *Orchestrator) handleTraining(ctx context.Context, req agent.Request) ([]agent.Response, []string, error) {
	coach, ok := o.registry.Get(agent.NameCoach)
	if !ok {
		responses, err := o.dispatch(ctx, agent.NameFallback, req)
		return responses, nil, err
	}

	resp, err := coach.Respond(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("coach: %w", err)
	}

	var consulted []string
	if NeedsNutritionSupport(req.Goal) {
		if dietician, ok := o.registry.Get(agent.NameDietician); ok {
			diet, err := dietician.Respond(ctx, req)
			if err != nil {
				o.logger.Warn("dietician failed", zap.Error(err))
			} else {
				if resp.Result == nil {
					resp.Result = map[string]any{}
				}
				resp.Result["nutrition_hint"] = nutritionHint(diet)
				consulted = append(consulted, dietician.Name())
			}
		}
	}

	return []agent.Response{resp}, consulted, nil
}

func nutritionHint(diet agent.Response) any {
	if hint, ok := diet.Result["protein"]; ok {
		return hint
	}
	return agent.ProteinHint()
}

func (o *Orchestrator) dispatch(ctx context.Context, name string, req agent.Request) ([]agent.Response, error) {
	a, ok := o.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAgentUnavailable, name)
	}
	resp, err := a.Respond(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return []agent.Response{resp}, nil
}

// pickPrimary prunes weak or empty answers and returns the first survivor.
func pickPrimary(responses []agent.Response) (agent.Response, bool) {
	for _, r := range responses {
		if r.Confidence >= minAgentConfidence && len(r.Result) > 0 {
			return r, true
		}
	}
	return agent.Response{}, false
}
