package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fitnova/central/internal/agent"
	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReflection(ms *fakeMemoryStore) *ReflectionService {
	return NewReflectionService(ms, NewMemoryService(ms, nil, zap.NewNop()))
}

func storedSignals(t *testing.T, ms *fakeMemoryStore) []reflectionSignal {
	t.Helper()
	var out []reflectionSignal
	memories := ms.byCategory(domain.MemoryCategoryReflection)
	// Stored newest first; report in write order.
	for i := len(memories) - 1; i >= 0; i-- {
		var sig reflectionSignal
		require.NoError(t, json.Unmarshal([]byte(memories[i].Content), &sig))
		out = append(out, sig)
	}
	return out
}

func TestReflectionService_Reflect(t *testing.T) {
	ms := newFakeMemoryStore()
	s := newReflection(ms)
	userID := uuid.New()

	err := s.Reflect(context.Background(), userID, domain.IntentRAGQuestion, agent.NameCoach, []string{agent.NameDietician})
	require.NoError(t, err)

	sigs := storedSignals(t, ms)
	require.Len(t, sigs, 4)
	assert.Equal(t, reflectionSignal{Signal: signalPrimaryAgentUsed, Value: "coach"}, sigs[0])
	assert.Equal(t, signalSecondaryAgentSuppressed, sigs[1].Signal)
	assert.Equal(t, []any{"dietician"}, sigs[1].Value)
	assert.Equal(t, reflectionSignal{Signal: signalUserScopePreference, Value: "workout_only"}, sigs[2])
	assert.Equal(t, reflectionSignal{Signal: signalIntentObserved, Value: "rag_question"}, sigs[3])
}

func TestReflectionService_ReflectWithoutPrimary(t *testing.T) {
	ms := newFakeMemoryStore()
	require.NoError(t, newReflection(ms).Reflect(context.Background(), uuid.New(), domain.IntentLLMOnly, "", nil))
	assert.Empty(t, ms.memories)
}

func TestReflectionService_ReflectReminderAgent(t *testing.T) {
	ms := newFakeMemoryStore()
	require.NoError(t, newReflection(ms).Reflect(context.Background(), uuid.New(), domain.IntentReminderCreate, agent.NameReminderReasoning, nil))

	sigs := storedSignals(t, ms)
	require.Len(t, sigs, 2)
	assert.Equal(t, signalPrimaryAgentUsed, sigs[0].Signal)
	assert.Equal(t, signalIntentObserved, sigs[1].Signal)
}

func TestReflectionService_Preferences(t *testing.T) {
	ms := newFakeMemoryStore()
	s := newReflection(ms)
	ctx := context.Background()
	userID := uuid.New()

	prefs, err := s.Preferences(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, Preferences{}, prefs)

	require.NoError(t, s.Reflect(ctx, userID, domain.IntentReminderCreate, agent.NameReminderReasoning, nil))
	require.NoError(t, s.Reflect(ctx, userID, domain.IntentRAGQuestion, agent.NameCoach, []string{agent.NameDietician}))
	require.NoError(t, s.Reflect(ctx, userID, domain.IntentRAGQuestion, agent.NameCoach, nil))

	// Malformed reflection memories are skipped.
	require.NoError(t, NewMemoryService(ms, nil, zap.NewNop()).RecordJSON(ctx, userID, domain.MemoryCategoryReflection, insightRecord{TimeWindow: "weekly"}))

	prefs, err = s.Preferences(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "workout_only", prefs.PreferredScope)
	assert.Equal(t, "coach", prefs.PreferredPrimaryAgent)
	assert.Equal(t, "rag_question", prefs.DominantIntent)
	assert.Equal(t, 1, prefs.SecondarySuppressionRate)
}

func TestReflectionService_PreferencesSurviveInsights(t *testing.T) {
	userID := uuid.New()
	f := newInsightFixture(userID, workouts(3, 0), reminders(2, 0), nutritionDays(1))
	s := newReflection(f.memories)
	ctx := context.Background()

	require.NoError(t, s.Reflect(ctx, userID, domain.IntentRAGQuestion, agent.NameCoach, nil))
	want, err := s.Preferences(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "coach", want.PreferredPrimaryAgent)

	for i := 0; i < preferenceWindow+5; i++ {
		_, err := f.service.Generate(ctx, userID, "weekly")
		require.NoError(t, err)
	}

	got, err := s.Preferences(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, f.memories.byCategory(domain.MemoryCategoryAIInsight), preferenceWindow+5)
}

func TestValueCounter_TieGoesToFirstSeen(t *testing.T) {
	var c valueCounter
	c.add("recent")
	c.add("older")
	assert.Equal(t, "recent", c.mostCommon())

	var empty *valueCounter
	assert.Equal(t, "", empty.mostCommon())
}
