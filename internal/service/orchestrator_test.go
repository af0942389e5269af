package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitnova/central/internal/agent"
	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/llm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAgent answers with a fixed response under any name.
type stubAgent struct {
	name string
	resp agent.Response
	err  error
}

func (a stubAgent) Name() string { return a.name }

func (a stubAgent) Respond(ctx context.Context, req agent.Request) (agent.Response, error) {
	return a.resp, a.err
}

func newTestOrchestrator(t *testing.T, ms *fakeMemoryStore, agents ...agent.Agent) *Orchestrator {
	t.Helper()
	registry, err := agent.NewRegistry(agents...)
	require.NoError(t, err)
	return NewOrchestrator(registry, newReflection(ms), FixedClock(testNow), zap.NewNop())
}

func defaultAgents(gen domain.TextGenerator) []agent.Agent {
	return []agent.Agent{
		agent.NewCoachAgent(gen, zap.NewNop()),
		agent.NewDieticianAgent(),
		agent.NewReminderReasoningAgent(),
		agent.NewFallbackAgent(),
	}
}

func TestOrchestrator_TrainingGoal(t *testing.T) {
	ms := newFakeMemoryStore()
	gen := llm.NewMockClient()
	o := newTestOrchestrator(t, ms, defaultAgents(gen)...)
	userID := uuid.New()

	got, err := o.Handle(context.Background(), userID, "Give me a beginner workout at home")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentRAGQuestion, got.Intent)
	assert.Equal(t, domain.WorkoutConstraints{Level: "beginner", Environment: "home"}, got.Constraints)
	require.NotNil(t, got.Primary)
	assert.Equal(t, agent.NameCoach, got.Primary.Agent)
	assert.Equal(t, "Mock coaching reply", got.Primary.Message)
	assert.NotContains(t, got.Primary.Result, "nutrition_hint")
	assert.Empty(t, got.Suppressed)

	require.Len(t, gen.Calls, 1)
	assert.Equal(t, llm.CoachSystemPrompt, gen.Calls[0].System)
	assert.Contains(t, gen.Calls[0].User, "Level: beginner")

	assert.NotEmpty(t, ms.byCategory(domain.MemoryCategoryReflection))
}

func TestOrchestrator_NutritionHintFolded(t *testing.T) {
	ms := newFakeMemoryStore()
	o := newTestOrchestrator(t, ms, defaultAgents(nil)...)

	got, err := o.Handle(context.Background(), uuid.New(), "workout plan with enough protein")
	require.NoError(t, err)

	require.NotNil(t, got.Primary)
	assert.Equal(t, agent.NameCoach, got.Primary.Agent)
	assert.Equal(t, agent.ProteinHint(), got.Primary.Result["nutrition_hint"])
	assert.Equal(t, []string{agent.NameDietician}, got.Suppressed)
}

func TestOrchestrator_Reminder(t *testing.T) {
	o := newTestOrchestrator(t, newFakeMemoryStore(), defaultAgents(nil)...)

	got, err := o.Handle(context.Background(), uuid.New(), "Remind me tomorrow to stretch")
	require.NoError(t, err)

	assert.Equal(t, domain.IntentReminderCreate, got.Intent)
	require.NotNil(t, got.Primary)
	assert.Equal(t, agent.NameReminderReasoning, got.Primary.Agent)
	assert.Equal(t, agent.ActionCreateReminder, got.Primary.Result["action"])
	assert.Equal(t, time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC), got.Primary.Result["suggested_time"])
}

func TestOrchestrator_CoachMissingUsesFallback(t *testing.T) {
	o := newTestOrchestrator(t, newFakeMemoryStore(), agent.NewFallbackAgent())

	got, err := o.Handle(context.Background(), uuid.New(), "hello")
	require.NoError(t, err)
	require.NotNil(t, got.Primary)
	assert.Equal(t, agent.NameFallback, got.Primary.Agent)
}

func TestOrchestrator_WeakAnswersArePruned(t *testing.T) {
	ms := newFakeMemoryStore()
	weak := stubAgent{name: agent.NameCoach, resp: agent.Response{Agent: agent.NameCoach, Confidence: 0.3, Result: map[string]any{"plan": "x"}}}
	o := newTestOrchestrator(t, ms, weak)

	got, err := o.Handle(context.Background(), uuid.New(), "workout ideas")
	require.NoError(t, err)
	assert.Nil(t, got.Primary)
	assert.Empty(t, ms.memories, "nothing to reflect on without a primary answer")
}

func TestOrchestrator_EmptyResultIsPruned(t *testing.T) {
	empty := stubAgent{name: agent.NameCoach, resp: agent.Response{Agent: agent.NameCoach, Confidence: 0.9}}
	o := newTestOrchestrator(t, newFakeMemoryStore(), empty)

	got, err := o.Handle(context.Background(), uuid.New(), "workout ideas")
	require.NoError(t, err)
	assert.Nil(t, got.Primary)
}

func TestOrchestrator_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty goal", func(t *testing.T) {
		o := newTestOrchestrator(t, newFakeMemoryStore(), defaultAgents(nil)...)
		_, err := o.Handle(ctx, uuid.New(), "")
		assert.ErrorIs(t, err, ErrGoalEmpty)
	})

	t.Run("no agent for intent", func(t *testing.T) {
		o := newTestOrchestrator(t, newFakeMemoryStore(), agent.NewCoachAgent(nil, zap.NewNop()))
		_, err := o.Handle(ctx, uuid.New(), "remind me to drink water")
		assert.ErrorIs(t, err, ErrAgentUnavailable)
	})

	t.Run("agent failure", func(t *testing.T) {
		boom := errors.New("boom")
		o := newTestOrchestrator(t, newFakeMemoryStore(), stubAgent{name: agent.NameCoach, err: boom})
		_, err := o.Handle(ctx, uuid.New(), "workout ideas")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("reflection failure is not fatal", func(t *testing.T) {
		ms := newFakeMemoryStore()
		ms.failErr = errFakeStore
		o := newTestOrchestrator(t, ms, defaultAgents(nil)...)
		got, err := o.Handle(ctx, uuid.New(), "workout ideas")
		require.NoError(t, err)
		assert.NotNil(t, got.Primary)
	})
}

func TestOrchestrator_PreferencesCarried(t *testing.T) {
	ms := newFakeMemoryStore()
	o := newTestOrchestrator(t, ms, defaultAgents(nil)...)
	ctx := context.Background()
	userID := uuid.New()

	_, err := o.Handle(ctx, userID, "workout ideas")
	require.NoError(t, err)

	got, err := o.Handle(ctx, userID, "more workout ideas")
	require.NoError(t, err)
	assert.Equal(t, agent.NameCoach, got.Preferences.PreferredPrimaryAgent)
	assert.Equal(t, "workout_only", got.Preferences.PreferredScope)
}
