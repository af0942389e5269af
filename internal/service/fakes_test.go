package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/fitnova/central/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockActivityStore mocks domain.ActivityStore.
type mockActivityStore struct {
	mock.Mock
}

func (m *mockActivityStore) CreateWorkoutLog(ctx context.Context, w *domain.WorkoutLog) error {
	args := m.Called(ctx, w)
	if args.Error(0) == nil {
		w.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockActivityStore) CreateReminder(ctx context.Context, r *domain.Reminder) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil {
		r.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockActivityStore) CreateReminderLog(ctx context.Context, l *domain.ReminderLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockActivityStore) GetReminder(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Reminder, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *mockActivityStore) ListWorkoutEvents(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.WorkoutEvent, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkoutEvent), args.Error(1)
}

func (m *mockActivityStore) ListReminderEvents(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.ReminderEvent, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReminderEvent), args.Error(1)
}

func (m *mockActivityStore) ListNutritionLogs(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.NutritionLog, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NutritionLog), args.Error(1)
}

// fakeTaskStore implements domain.TaskStore over a map.
type fakeTaskStore struct {
	mu      sync.Mutex
	tasks   map[uuid.UUID]*domain.Task
	failOn  string
	updates int
}

func newFakeTaskStore(tasks ...domain.Task) *fakeTaskStore {
	s := &fakeTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
	for i := range tasks {
		t := tasks[i]
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		s.tasks[t.ID] = &t
	}
	return s
}

var errFakeStore = errors.New("store unavailable")

func (s *fakeTaskStore) Create(ctx context.Context, t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.New()
	if t.Status == "" {
		t.Status = domain.TaskStatusPending
	}
	cp := *t
	s.tasks[t.ID] = &cp
	return nil
}

func (s *fakeTaskStore) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, store.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTaskStore) ListByDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.Task, error) {
	if s.failOn == "ListByDate" {
		return nil, errFakeStore
	}
	return s.filter(func(t *domain.Task) bool {
		return t.UserID == userID && domain.SameDay(t.ScheduledFor, day)
	}), nil
}

func (s *fakeTaskStore) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Task, error) {
	if s.failOn == "ListSince" {
		return nil, errFakeStore
	}
	return s.filter(func(t *domain.Task) bool {
		return t.UserID == userID && !t.ScheduledFor.Before(since)
	}), nil
}

func (s *fakeTaskStore) UpdateStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, status domain.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return store.ErrNotFound
	}
	t.Status = status
	return nil
}

func (s *fakeTaskStore) UpdatePlan(ctx context.Context, id uuid.UUID, payload map[string]any, status domain.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == "UpdatePlan" {
		return errFakeStore
	}
	t, ok := s.tasks[id]
	if !ok {
		return store.ErrNotFound
	}
	t.PlannedPayload = payload
	t.Status = status
	s.updates++
	return nil
}

func (s *fakeTaskStore) ListUserIDsWithOpenTasks(ctx context.Context, day time.Time) ([]uuid.UUID, error) {
	if s.failOn == "ListUserIDsWithOpenTasks" {
		return nil, errFakeStore
	}
	seen := map[uuid.UUID]bool{}
	var ids []uuid.UUID
	for _, t := range s.filter(func(t *domain.Task) bool {
		return t.Status == domain.TaskStatusPending && domain.SameDay(t.ScheduledFor, day)
	}) {
		if !seen[t.UserID] {
			seen[t.UserID] = true
			ids = append(ids, t.UserID)
		}
	}
	return ids, nil
}

func (s *fakeTaskStore) get(id uuid.UUID) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.tasks[id]
}

func (s *fakeTaskStore) filter(keep func(*domain.Task) bool) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Task
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

type fakeExerciseStore struct {
	exercises []domain.Exercise
}

func (s *fakeExerciseStore) Create(ctx context.Context, e *domain.Exercise) error {
	for _, existing := range s.exercises {
		if existing.Name == e.Name {
			return store.ErrConflict
		}
	}
	e.ID = uuid.New()
	s.exercises = append(s.exercises, *e)
	return nil
}

func (s *fakeExerciseStore) List(ctx context.Context) ([]domain.Exercise, error) {
	return s.exercises, nil
}

// fakeMemoryStore keeps memories newest first, as the database query
// returns them.
type fakeMemoryStore struct {
	mu       sync.Mutex
	memories []domain.HealthMemory
	failErr  error
	recalled []float32
}

func newFakeMemoryStore() *fakeMemoryStore {
	return &fakeMemoryStore{}
}

func (s *fakeMemoryStore) Create(ctx context.Context, m *domain.HealthMemory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	m.ID = uuid.New()
	s.memories = append([]domain.HealthMemory{*m}, s.memories...)
	return nil
}

func (s *fakeMemoryStore) ListByCategory(ctx context.Context, userID uuid.UUID, category domain.MemoryCategory, limit int) ([]domain.HealthMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.HealthMemory
	for _, m := range s.memories {
		if m.UserID == userID && m.Category == category {
			out = append(out, m)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (s *fakeMemoryStore) Recall(ctx context.Context, userID uuid.UUID, embedding []float32, topK int) ([]domain.MemoryWithScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recalled = embedding
	var out []domain.MemoryWithScore
	for _, m := range s.memories {
		if m.UserID == userID && m.Embedding != nil {
			out = append(out, domain.MemoryWithScore{HealthMemory: m, Score: 1})
			if len(out) == topK {
				break
			}
		}
	}
	return out, nil
}

func (s *fakeMemoryStore) byCategory(category domain.MemoryCategory) []domain.HealthMemory {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.HealthMemory
	for _, m := range s.memories {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

type fakeUserStore struct {
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, u *domain.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrConflict
		}
	}
	u.ID = uuid.New()
	s.users[u.APIKeyHash] = u
	return nil
}

func (s *fakeUserStore) GetByAPIKeyHash(ctx context.Context, hash string) (*domain.User, error) {
	u, ok := s.users[hash]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

type stubEmbedder struct {
	err error
}

func (e stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []float32{float32(len(text)), 1}, nil
}
