package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryService_Record(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("defaults source and embeds", func(t *testing.T) {
		ms := newFakeMemoryStore()
		s := NewMemoryService(ms, stubEmbedder{}, zap.NewNop())

		m := &domain.HealthMemory{UserID: userID, Category: domain.MemoryCategoryAIInsight, Content: "hello"}
		require.NoError(t, s.Record(ctx, m))
		assert.Equal(t, domain.MemorySourceSystem, m.Source)
		assert.Equal(t, []float32{5, 1}, m.Embedding)
		assert.Len(t, ms.memories, 1)
	})

	t.Run("embedding failure still stores", func(t *testing.T) {
		ms := newFakeMemoryStore()
		s := NewMemoryService(ms, stubEmbedder{err: errors.New("quota")}, zap.NewNop())

		m := &domain.HealthMemory{UserID: userID, Category: domain.MemoryCategoryNutrition, Content: "eggs"}
		require.NoError(t, s.Record(ctx, m))
		assert.Nil(t, m.Embedding)
		assert.Len(t, ms.memories, 1)
	})

	t.Run("validation", func(t *testing.T) {
		s := NewMemoryService(newFakeMemoryStore(), nil, zap.NewNop())

		err := s.Record(ctx, &domain.HealthMemory{UserID: userID, Category: domain.MemoryCategoryAIInsight})
		assert.ErrorIs(t, err, ErrMemoryContentEmpty)

		err = s.Record(ctx, &domain.HealthMemory{UserID: userID, Category: "diary", Content: "x"})
		assert.ErrorIs(t, err, ErrInvalidMemoryCategory)
	})
}

func TestMemoryService_RecordJSON(t *testing.T) {
	ms := newFakeMemoryStore()
	s := NewMemoryService(ms, nil, zap.NewNop())
	userID := uuid.New()

	err := s.RecordJSON(context.Background(), userID, domain.MemoryCategoryAIInsight, reflectionSignal{Signal: "intent_observed", Value: "rag_question"})
	require.NoError(t, err)

	require.Len(t, ms.memories, 1)
	assert.JSONEq(t, `{"signal":"intent_observed","value":"rag_question"}`, ms.memories[0].Content)
	assert.Equal(t, domain.MemorySourceSystem, ms.memories[0].Source)
}

func TestMemoryService_Recall(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unavailable without embeddings", func(t *testing.T) {
		s := NewMemoryService(newFakeMemoryStore(), nil, zap.NewNop())
		_, err := s.Recall(ctx, userID, "protein", 3)
		assert.ErrorIs(t, err, ErrRecallUnavailable)
	})

	t.Run("empty query", func(t *testing.T) {
		s := NewMemoryService(newFakeMemoryStore(), stubEmbedder{}, zap.NewNop())
		_, err := s.Recall(ctx, userID, "", 3)
		assert.ErrorIs(t, err, ErrRecallQueryEmpty)
	})

	t.Run("returns nearest and never nil", func(t *testing.T) {
		ms := newFakeMemoryStore()
		s := NewMemoryService(ms, stubEmbedder{}, zap.NewNop())

		got, err := s.Recall(ctx, userID, "protein", 0)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Equal(t, []float32{7, 1}, ms.recalled)

		require.NoError(t, s.Record(ctx, &domain.HealthMemory{UserID: userID, Category: domain.MemoryCategoryNutrition, Content: "chicken"}))
		got, err = s.Recall(ctx, userID, "protein", 100)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
