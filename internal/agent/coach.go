package agent

import (
	"context"
	"fmt"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/llm"
	"go.uber.org/zap"
)

const coachConfidence = 0.85

var coachPlan = []string{"Push-ups 3x12", "Squats 3x15", "Plank 3x45s"}

// CoachAgent returns a fixed starter plan and, when a generator is set, a
// short note written by the model. Generator failures only drop the note.
type CoachAgent struct {
	generator domain.TextGenerator
	logger    *zap.Logger
}

func NewCoachAgent(generator domain.TextGenerator, logger *zap.Logger) *CoachAgent {
	return &CoachAgent{generator: generator, logger: logger}
}

func (a *CoachAgent) Name() string { return NameCoach }

func (a *CoachAgent) Respond(ctx context.Context, req Request) (Response, error) {
	result := map[string]any{
		"plan": append([]string(nil), coachPlan...),
	}
	if !req.Constraints.Empty() {
		result["constraints"] = req.Constraints
	}

	resp := Response{
		Agent:      NameCoach,
		Confidence: coachConfidence,
		Message:    "Here's a simple workout to get you moving.",
		Result:     result,
	}

	if a.generator == nil {
		return resp, nil
	}

	note, err := a.generator.Generate(ctx, llm.CoachSystemPrompt, fmt.Sprintf(llm.CoachUserPrompt,
		req.Goal, req.Constraints.Level, req.Constraints.Environment, req.Constraints.Equipment))
	if err != nil {
		a.logger.Warn("coach note generation failed", zap.Error(err))
		return resp, nil
	}
	if note != "" {
		resp.Message = note
	}
	return resp, nil
}
