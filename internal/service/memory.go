package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMemoryContentEmpty    = errors.New("content is required")
	ErrInvalidMemoryCategory = errors.New("invalid memory category")
	ErrRecallQueryEmpty      = errors.New("query is required")
	ErrRecallUnavailable     = errors.New("recall requires an embedding provider")
)

const (
	defaultRecallTopK = 5
	maxRecallTopK     = 50
)

// MemoryService records behavioral facts about users. When an embedding
// client is configured, memories are embedded on write and can be
// recalled by similarity.
type MemoryService struct {
	store           domain.HealthMemoryStore
	embeddingClient domain.EmbeddingClient
	logger          *zap.Logger
}

func NewMemoryService(s domain.HealthMemoryStore, ec domain.EmbeddingClient, logger *zap.Logger) *MemoryService {
	return &MemoryService{store: s, embeddingClient: ec, logger: logger}
}

// Record stores m. An embedding failure is logged and the memory is still
// stored without a vector.
func (s *MemoryService) Record(ctx context.Context, m *domain.HealthMemory) error {
	if m.Content == "" {
		return ErrMemoryContentEmpty
	}
	if !domain.ValidMemoryCategory(string(m.Category)) {
		return ErrInvalidMemoryCategory
	}
	if m.Source == "" {
		m.Source = domain.MemorySourceSystem
	}

	if s.embeddingClient != nil && m.Embedding == nil {
		emb, err := s.embeddingClient.Embed(ctx, m.Content)
		if err != nil {
			s.logger.Warn("embedding failed, storing memory without vector",
				zap.String("user_id", m.UserID.String()),
				zap.String("category", string(m.Category)),
				zap.Error(err))
		} else {
			m.Embedding = emb
		}
	}

	return s.store.Create(ctx, m)
}

// RecordJSON stores v marshalled as the memory content.
func (s *MemoryService) RecordJSON(ctx context.Context, userID uuid.UUID, category domain.MemoryCategory, v any) error {
	content, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s memory: %w", category, err)
	}
	return s.Record(ctx, &domain.HealthMemory{
		UserID:   userID,
		Category: category,
		Source:   domain.MemorySourceSystem,
		Content:  string(content),
	})
}

// Recall returns the topK memories closest to query.
func (s *MemoryService) Recall(ctx context.Context, userID uuid.UUID, query string, topK int) ([]domain.MemoryWithScore, error) {
	if query == "" {
		return nil, ErrRecallQueryEmpty
	}
	if s.embeddingClient == nil {
		return nil, ErrRecallUnavailable
	}
	if topK <= 0 {
		topK = defaultRecallTopK
	}
	topK = min(topK, maxRecallTopK)

	emb, err := s.embeddingClient.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed recall query: %w", err)
	}

	results, err := s.store.Recall(ctx, userID, emb, topK)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.MemoryWithScore{}
	}
	return results, nil
}
