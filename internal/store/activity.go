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

type ActivityStore struct {
	db *pgxpool.Pool
}

func NewActivityStore(db *pgxpool.Pool) *ActivityStore {
	return &ActivityStore{db: db}
}

func (s *ActivityStore) CreateWorkoutLog(ctx context.Context, w *domain.WorkoutLog) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO workout_logs (user_id, workout_name, duration_minutes, details)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		w.UserID, w.WorkoutName, w.DurationMinutes, w.Details,
	).Scan(&w.ID, &w.CreatedAt)
}

func (s *ActivityStore) CreateReminder(ctx context.Context, r *domain.Reminder) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO reminders (user_id, title, kind, scheduled_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		r.UserID, r.Title, r.Kind, r.ScheduledAt,
	).Scan(&r.ID, &r.CreatedAt)
}

func (s *ActivityStore) GetReminder(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Reminder, error) {
	r := &domain.Reminder{}
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, title, kind, scheduled_at, created_at
		 FROM reminders WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Kind, &r.ScheduledAt, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *ActivityStore) CreateReminderLog(ctx context.Context, l *domain.ReminderLog) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO reminder_logs (reminder_id, user_id, acknowledged)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		l.ReminderID, l.UserID, l.Acknowledged,
	).Scan(&l.ID, &l.CreatedAt)
}

// firstDayFrom returns the first calendar date whose midnight, in t's
// location, is not before t.
func firstDayFrom(t time.Time) string {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	if midnight.Before(t) {
		midnight = midnight.AddDate(0, 0, 1)
	}
	return dateParam(midnight)
}

// ListWorkoutEvents returns logged workouts as completed events and
// workout tasks marked missed as not completed, oldest first. The window
// is [start, end); a task counts when its day starts inside it.
func (s *ActivityStore) ListWorkoutEvents(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.WorkoutEvent, error) {
	rows, err := s.db.Query(ctx,
		`SELECT TRUE AS completed, created_at
		 FROM workout_logs
		 WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		 UNION ALL
		 SELECT FALSE AS completed, scheduled_for::timestamptz
		 FROM tasks
		 WHERE user_id = $1 AND task_type = 'workout' AND status = 'missed'
		   AND scheduled_for >= $4::date AND scheduled_for < $5::date
		 ORDER BY 2 ASC`,
		userID, start, end, firstDayFrom(start), firstDayFrom(end),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.WorkoutEvent
	for rows.Next() {
		var e domain.WorkoutEvent
		if err := rows.Scan(&e.Completed, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListReminderEvents classifies each reminder scheduled in the window by
// its latest log. A reminder nobody reacted to counts as missed.
func (s *ActivityStore) ListReminderEvents(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.ReminderEvent, error) {
	rows, err := s.db.Query(ctx,
		`SELECT r.scheduled_at, COALESCE(l.acknowledged, FALSE)
		 FROM reminders r
		 LEFT JOIN LATERAL (
		     SELECT acknowledged FROM reminder_logs
		     WHERE reminder_id = r.id AND user_id = r.user_id
		     ORDER BY created_at DESC
		     LIMIT 1
		 ) l ON TRUE
		 WHERE r.user_id = $1 AND r.scheduled_at >= $2 AND r.scheduled_at < $3
		 ORDER BY r.scheduled_at ASC`,
		userID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.ReminderEvent
	for rows.Next() {
		var e domain.ReminderEvent
		var acknowledged bool
		if err := rows.Scan(&e.ScheduledAt, &acknowledged); err != nil {
			return nil, err
		}
		e.Status = domain.ReminderMissed
		if acknowledged {
			e.Status = domain.ReminderAcknowledged
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListNutritionLogs returns one entry per calendar day with at least one
// nutrition memory in the window.
func (s *ActivityStore) ListNutritionLogs(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.NutritionLog, error) {
	rows, err := s.db.Query(ctx,
		`SELECT DISTINCT date_trunc('day', created_at) AS day
		 FROM health_memories
		 WHERE user_id = $1 AND category = $2 AND created_at >= $3 AND created_at < $4
		 ORDER BY day ASC`,
		userID, string(domain.MemoryCategoryNutrition), start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.NutritionLog
	for rows.Next() {
		var l domain.NutritionLog
		if err := rows.Scan(&l.LoggedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
