package store

import (
	"context"
	"errors"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskStore struct {
	db *pgxpool.Pool
}

func NewTaskStore(db *pgxpool.Pool) *TaskStore {
	return &TaskStore{db: db}
}

const taskColumns = `id, user_id, task_type, status, scheduled_for, planned_payload, actual_payload, created_at, updated_at`

func scanTask(row pgx.Row) (*domain.Task, error) {
	t := &domain.Task{}
	err := row.Scan(&t.ID, &t.UserID, &t.TaskType, &t.Status, &t.ScheduledFor, &t.PlannedPayload, &t.ActualPayload, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// dateParam sends the calendar date as text so the session time zone
// never shifts it.
func dateParam(t time.Time) string {
	return t.Format("2006-01-02")
}

func (s *TaskStore) Create(ctx context.Context, t *domain.Task) error {
	if t.Status == "" {
		t.Status = domain.TaskStatusPending
	}
	return s.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, task_type, status, scheduled_for, planned_payload)
		 VALUES ($1, $2, $3, $4::date, $5)
		 RETURNING id, created_at, updated_at`,
		t.UserID, t.TaskType, t.Status, dateParam(t.ScheduledFor), t.PlannedPayload,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Task, error) {
	t, err := scanTask(s.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TaskStore) ListByDate(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.Task, error) {
	return s.list(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE user_id = $1 AND scheduled_for = $2::date
		 ORDER BY created_at ASC`,
		userID, dateParam(day),
	)
}

func (s *TaskStore) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Task, error) {
	return s.list(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE user_id = $1 AND scheduled_for >= $2::date
		 ORDER BY scheduled_for DESC, created_at DESC`,
		userID, dateParam(since),
	)
}

func (s *TaskStore) list(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (s *TaskStore) UpdateStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, status domain.TaskStatus) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tasks SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
		status, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TaskStore) UpdatePlan(ctx context.Context, id uuid.UUID, payload map[string]any, status domain.TaskStatus) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE tasks SET planned_payload = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		payload, status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUserIDsWithOpenTasks returns users with at least one pending task on
// day.
func (s *TaskStore) ListUserIDsWithOpenTasks(ctx context.Context, day time.Time) ([]uuid.UUID, error) {
	rows, err := s.db.Query(ctx,
		`SELECT DISTINCT user_id FROM tasks
		 WHERE scheduled_for = $1::date AND status = 'pending'`,
		dateParam(day),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
