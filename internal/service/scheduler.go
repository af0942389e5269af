package service

import (
	"context"
	"sync"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultAdaptationInterval = 1 * time.Hour
	adaptationRunTimeout      = 2 * time.Minute
)

// AdaptationScheduler periodically applies the adaptations that need no
// confirmation for every user with pending tasks today.
type AdaptationScheduler struct {
	adaptations *AdaptationService
	taskStore   domain.TaskStore
	clock       Clock
	logger      *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewAdaptationScheduler(adaptations *AdaptationService, ts domain.TaskStore, clock Clock, logger *zap.Logger) *AdaptationScheduler {
	return &AdaptationScheduler{
		adaptations: adaptations,
		taskStore:   ts,
		clock:       clock,
		logger:      logger,
		interval:    defaultAdaptationInterval,
		stopCh:      make(chan struct{}),
	}
}

func (s *AdaptationScheduler) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// Start runs the scheduler in a background goroutine.
func (s *AdaptationScheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("adaptation scheduler started", zap.Duration("interval", s.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), adaptationRunTimeout)
				if err := s.RunAll(ctx); err != nil {
					s.logger.Error("adaptation run failed", zap.Error(err))
				}
				cancel()
			case <-s.stopCh:
				s.logger.Info("adaptation scheduler stopped")
				return
			}
		}
	}()
}

func (s *AdaptationScheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// RunAll adapts today's tasks for each user who still has pending ones.
// A failure for one user is logged and does not stop the others.
func (s *AdaptationScheduler) RunAll(ctx context.Context) error {
	userIDs, err := s.taskStore.ListUserIDsWithOpenTasks(ctx, startOfDay(s.clock.Now()))
	if err != nil {
		return err
	}

	for _, userID := range userIDs {
		if err := s.runForUser(ctx, userID); err != nil {
			s.logger.Warn("adaptation failed for user",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}
	return nil
}

func (s *AdaptationScheduler) runForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := s.adaptations.Apply(ctx, userID, nil, false)
	return err
}
