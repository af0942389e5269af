package store

import (
	"context"
	"fmt"

	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
)

type HealthMemoryStore struct {
	db *pgxpool.Pool
}

func NewHealthMemoryStore(db *pgxpool.Pool) *HealthMemoryStore {
	return &HealthMemoryStore{db: db}
}

func (s *HealthMemoryStore) Create(ctx context.Context, m *domain.HealthMemory) error {
	var embedding *pgvector.Vector
	if len(m.Embedding) > 0 {
		v := pgvector.NewVector(m.Embedding)
		embedding = &v
	}

	if m.Source == "" {
		m.Source = domain.MemorySourceSystem
	}

	return s.db.QueryRow(ctx,
		`INSERT INTO health_memories (user_id, category, source, content, metadata, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		m.UserID, m.Category, m.Source, m.Content, m.Metadata, embedding,
	).Scan(&m.ID, &m.CreatedAt)
}

func (s *HealthMemoryStore) ListByCategory(ctx context.Context, userID uuid.UUID, category domain.MemoryCategory, limit int) ([]domain.HealthMemory, error) {
	if limit <= 0 {
		limit = 25
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, category, source, content, metadata, created_at
		 FROM health_memories
		 WHERE user_id = $1 AND category = $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		userID, category, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memories []domain.HealthMemory
	for rows.Next() {
		var m domain.HealthMemory
		if err := rows.Scan(&m.ID, &m.UserID, &m.Category, &m.Source, &m.Content, &m.Metadata, &m.CreatedAt); err != nil {
			return nil, err
		}
		memories = append(memories, m)
	}
	return memories, rows.Err()
}

// Recall returns the memories nearest to embedding by cosine distance.
func (s *HealthMemoryStore) Recall(ctx context.Context, userID uuid.UUID, embedding []float32, topK int) ([]domain.MemoryWithScore, error) {
	if topK <= 0 {
		topK = 10
	}

	vec := pgvector.NewVector(embedding)

	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, category, source, content, metadata, created_at,
		        1 - (embedding <=> $2) AS score
		 FROM health_memories
		 WHERE user_id = $1 AND embedding IS NOT NULL
		 ORDER BY embedding <=> $2
		 LIMIT $3`,
		userID, vec, topK,
	)
	if err != nil {
		return nil, fmt.Errorf("recall query: %w", err)
	}
	defer rows.Close()

	var results []domain.MemoryWithScore
	for rows.Next() {
		var m domain.MemoryWithScore
		if err := rows.Scan(&m.ID, &m.UserID, &m.Category, &m.Source, &m.Content, &m.Metadata, &m.CreatedAt, &m.Score); err != nil {
			return nil, fmt.Errorf("scan recall row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recall rows: %w", err)
	}

	return results, nil
}
