package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CleanupService evicts rounds that nobody has touched for a while.
type CleanupService struct {
	rounds   IdleEvicter
	ttl      time.Duration
	schedule string
	logger   *zap.Logger
	now      func() time.Time
}

// NewCleanupService creates a cleanup job running on the given cron
// schedule (for example "@every 10m").
func NewCleanupService(rounds IdleEvicter, ttl time.Duration, schedule string, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		rounds:   rounds,
		ttl:      ttl,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs the cleanup schedule until ctx is cancelled.
func (s *CleanupService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(s.schedule, func() { s.Sweep() }); err != nil {
		return fmt.Errorf("add cleanup job %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Info("round cleanup started",
		zap.String("schedule", s.schedule),
		zap.Duration("ttl", s.ttl),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("round cleanup stopped")

	return nil
}

// Sweep evicts idle rounds once and returns how many were removed.
func (s *CleanupService) Sweep() int {
	evicted := s.rounds.EvictIdle(s.now().Add(-s.ttl))
	if evicted > 0 {
		s.logger.Info("evicted idle rounds", zap.Int("count", evicted))
	}
	return evicted
}
