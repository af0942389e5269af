package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstDayFrom(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"midnight is its own day", time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), "2026-10-14"},
		{"afternoon rolls to next day", time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC), "2026-10-15"},
		{"one nanosecond past midnight", time.Date(2026, 10, 14, 0, 0, 0, 1, time.UTC), "2026-10-15"},
		{"uses the time's own location", time.Date(2026, 10, 14, 0, 0, 0, 0, berlin), "2026-10-14"},
		{"month end", time.Date(2026, 10, 31, 9, 0, 0, 0, time.UTC), "2026-11-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstDayFrom(tt.in))
		})
	}
}

// setupPostgres connects to POSTGRES_TEST_URL and applies the migrations.
// Tests using it are skipped when the variable is unset.
func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = Migrate(ctx, pool, "../../migrations")
	require.NoError(t, err)
	return pool
}

func TestActivityStore_WindowExcludesEnd(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	user := &domain.User{Name: "Window Test", Email: "window+" + time.Now().Format("150405.000000") + "@fitnova.local"}
	user.APIKeyHash = user.Email
	require.NoError(t, NewUserStore(pool).Create(ctx, user))

	tasks := NewTaskStore(pool)
	yesterday := time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)
	today := yesterday.AddDate(0, 0, 1)
	for _, day := range []time.Time{yesterday, today} {
		require.NoError(t, tasks.Create(ctx, &domain.Task{
			UserID:       user.ID,
			TaskType:     domain.TaskTypeWorkout,
			Status:       domain.TaskStatusMissed,
			ScheduledFor: day,
		}))
	}

	activity := NewActivityStore(pool)
	require.NoError(t, activity.CreateReminder(ctx, &domain.Reminder{UserID: user.ID, Title: "stretch", Kind: "general", ScheduledAt: today}))

	t.Run("yesterday window", func(t *testing.T) {
		events, err := activity.ListWorkoutEvents(ctx, user.ID, yesterday, today)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.False(t, events[0].Completed)

		reminders, err := activity.ListReminderEvents(ctx, user.ID, yesterday, today)
		require.NoError(t, err)
		assert.Empty(t, reminders)
	})

	t.Run("trailing window includes today", func(t *testing.T) {
		events, err := activity.ListWorkoutEvents(ctx, user.ID, yesterday.Add(12*time.Hour), today.Add(15*time.Hour))
		require.NoError(t, err)
		require.Len(t, events, 1)
	})
}
