package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"marketdata-service/internal/application"
)

var _ application.Worker = (*Scheduler)(nil)

// Scheduler runs the job once at start and then on a fixed interval until
// the context is canceled. Job errors are logged, never fatal: the next
// tick still fires.
type Scheduler struct {
	Every time.Duration
	Job   func(ctx context.Context) error
	Log   *zap.Logger
}

func (s *Scheduler) Start(ctx context.Context) {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	if s.Every <= 0 {
		s.Every = 2 * time.Hour
	}

	t := time.NewTicker(s.Every)
	defer t.Stop()

	log.Info("scheduler_started", zap.Duration("every", s.Every))
	s.runJob(ctx, log)
	for {
		select {
		case <-ctx.Done():
			log.Info("scheduler_stopped")
			return
		case <-t.C:
			s.runJob(ctx, log)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, log *zap.Logger) {
	if err := s.Job(ctx); err != nil {
		log.Warn("run_failed", zap.Error(err))
	}
}
