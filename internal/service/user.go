package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/store"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserConflict     = errors.New("user with this email already exists")
	ErrUserEmailMissing = errors.New("email is required")
)

const apiKeyPrefix = "fn_"

type UserService struct {
	store domain.UserStore
}

func NewUserService(s domain.UserStore) *UserService {
	return &UserService{store: s}
}

// Create registers u and returns the plaintext API key. Only its hash is
// stored, so the key cannot be shown again.
func (s *UserService) Create(ctx context.Context, u *domain.User) (string, error) {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	if u.Email == "" {
		return "", ErrUserEmailMissing
	}

	key, err := generateAPIKey()
	if err != nil {
		return "", err
	}
	u.APIKeyHash = HashAPIKey(key)

	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return "", ErrUserConflict
		}
		return "", err
	}
	return key, nil
}

// Authenticate resolves the user owning a plaintext API key.
func (s *UserService) Authenticate(ctx context.Context, apiKey string) (*domain.User, error) {
	u, err := s.store.GetByAPIKeyHash(ctx, HashAPIKey(apiKey))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func HashAPIKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

func generateAPIKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return apiKeyPrefix + hex.EncodeToString(b), nil
}
