package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/llm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func request(goal string) Request {
	return Request{UserID: uuid.New(), Goal: goal, Now: now}
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(NewFallbackAgent(), NewCoachAgent(nil, zap.NewNop()), NewDieticianAgent())
	require.NoError(t, err)

	assert.Equal(t, []string{NameCoach, NameDietician, NameFallback}, r.Names())

	a, ok := r.Get(NameCoach)
	require.True(t, ok)
	assert.Equal(t, NameCoach, a.Name())

	_, ok = r.Get(NameReminderReasoning)
	assert.False(t, ok)
}

func TestRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry(NewFallbackAgent(), NewFallbackAgent())
	assert.Error(t, err)
}

func TestCoachAgent_Offline(t *testing.T) {
	a := NewCoachAgent(nil, zap.NewNop())

	resp, err := a.Respond(context.Background(), request("get stronger"))
	require.NoError(t, err)
	assert.Equal(t, NameCoach, resp.Agent)
	assert.Equal(t, 0.85, resp.Confidence)
	assert.Equal(t, coachPlan, resp.Result["plan"])
	assert.NotContains(t, resp.Result, "constraints")

	// The plan is copied per response.
	resp.Result["plan"].([]string)[0] = "changed"
	assert.Equal(t, "Push-ups 3x12", coachPlan[0])
}

func TestCoachAgent_WithGenerator(t *testing.T) {
	gen := llm.NewMockClient()
	gen.Response = "You've got this."
	a := NewCoachAgent(gen, zap.NewNop())

	req := request("home workout")
	req.Constraints = domain.WorkoutConstraints{Environment: "home"}

	resp, err := a.Respond(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "You've got this.", resp.Message)
	assert.Equal(t, req.Constraints, resp.Result["constraints"])

	require.Len(t, gen.Calls, 1)
	assert.Contains(t, gen.Calls[0].User, "Goal: home workout")
	assert.Contains(t, gen.Calls[0].User, "Environment: home")
}

func TestCoachAgent_GeneratorFailureKeepsPlan(t *testing.T) {
	gen := llm.NewMockClient()
	gen.Error = errors.New("rate limited")
	a := NewCoachAgent(gen, zap.NewNop())

	resp, err := a.Respond(context.Background(), request("get fit"))
	require.NoError(t, err)
	assert.Equal(t, "Here's a simple workout to get you moving.", resp.Message)
	assert.NotEmpty(t, resp.Result["plan"])
}

func TestDieticianAgent(t *testing.T) {
	resp, err := NewDieticianAgent().Respond(context.Background(), request("meal ideas"))
	require.NoError(t, err)
	assert.Equal(t, 0.8, resp.Confidence)
	assert.Len(t, resp.Result["meals"], 3)
	assert.Equal(t, ProteinHint(), resp.Result["protein"])
}

func TestReminderReasoningAgent(t *testing.T) {
	a := NewReminderReasoningAgent()
	ctx := context.Background()

	tests := []struct {
		goal       string
		action     string
		confidence float64
		suggested  *time.Time
	}{
		{"Remind me tomorrow to stretch", ActionCreateReminder, 0.95, ptr(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))},
		{"schedule a walk this evening", ActionCreateReminder, 0.95, ptr(time.Date(2026, 10, 15, 19, 0, 0, 0, time.UTC))},
		{"remind me to drink water", ActionCreateReminder, 0.95, nil},
		{"I forgot my workout", ActionAcknowledgeMiss, 0.7, nil},
		{"show me something", ActionNone, 0.2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			resp, err := a.Respond(ctx, request(tt.goal))
			require.NoError(t, err)
			assert.Equal(t, tt.action, resp.Result["action"])
			assert.Equal(t, tt.confidence, resp.Confidence)
			if tt.suggested != nil {
				assert.Equal(t, *tt.suggested, resp.Result["suggested_time"])
			} else {
				assert.NotContains(t, resp.Result, "suggested_time")
			}
		})
	}
}

func TestFallbackAgent(t *testing.T) {
	resp, err := NewFallbackAgent().Respond(context.Background(), request("hi"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, resp.Confidence)
	assert.Equal(t, fallbackMessage, resp.Message)
	assert.NotEmpty(t, resp.Result)
}

func ptr(t time.Time) *time.Time { return &t }
