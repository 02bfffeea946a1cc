package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// renderFunc is satisfied by Renderer.Render.
type renderFunc func(ctx context.Context, trigger string) (*Summary, error)

// Scheduler re-renders the summary image on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	render renderFunc
	logger *zap.Logger
	ctx    context.Context
}

// NewScheduler registers periodic renders under schedule, a robfig/cron spec
// such as "@every 10m". An empty schedule yields a nil Scheduler, whose Run
// only waits for its context.
func NewScheduler(r *Renderer, schedule string, logger *zap.Logger) (*Scheduler, error) {
	if schedule == "" {
		return nil, nil
	}
	return newScheduler(r.Render, schedule, logger)
}

func newScheduler(render renderFunc, schedule string, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scheduler{
		cron:   cron.New(),
		render: render,
		logger: logger,
		ctx:    context.Background(),
	}
	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("invalid summary schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Run starts the cron loop and blocks until ctx is done, then waits for a
// running render to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	if s == nil {
		<-ctx.Done()
		return nil
	}

	s.ctx = ctx
	s.cron.Start()
	s.logger.Info("summary scheduler started")

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info("summary scheduler stopped")
	return nil
}

func (s *Scheduler) tick() {
	start := time.Now()
	sum, err := s.render(s.ctx, TriggerSchedule)
	if err != nil {
		s.logger.Warn("scheduled summary render failed", zap.Error(err))
		return
	}
	s.logger.Debug("scheduled summary render completed",
		zap.Int("total", sum.Total),
		zap.Duration("duration", time.Since(start)))
}
