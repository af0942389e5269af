package store

import (
	"context"
	"errors"

	"github.com/fitnova/central/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (name, email, api_key_hash) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.Name, u.Email, u.APIKeyHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *UserStore) GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*domain.User, error) {
	u := &domain.User{}
	err := s.db.QueryRow(ctx,
		`SELECT id, name, email, api_key_hash, created_at, updated_at
		 FROM users WHERE api_key_hash = $1`,
		apiKeyHash,
	).Scan(&u.ID, &u.Name, &u.Email, &u.APIKeyHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
