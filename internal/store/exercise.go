package store

import (
	"context"
	"errors"

	"github.com/fitnova/central/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExerciseStore struct {
	db *pgxpool.Pool
}

func NewExerciseStore(db *pgxpool.Pool) *ExerciseStore {
	return &ExerciseStore{db: db}
}

func (s *ExerciseStore) Create(ctx context.Context, e *domain.Exercise) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO exercises (name, category, movement_pattern, fatigue_profile, primary_muscles, equipment, difficulty_level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		e.Name, e.Category, e.MovementPattern, e.FatigueProfile, e.PrimaryMuscles, e.Equipment, e.DifficultyLevel,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *ExerciseStore) List(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, category, movement_pattern, fatigue_profile, primary_muscles, equipment, difficulty_level, created_at
		 FROM exercises ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.MovementPattern, &e.FatigueProfile, &e.PrimaryMuscles, &e.Equipment, &e.DifficultyLevel, &e.CreatedAt); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
