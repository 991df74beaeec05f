// Package scheduler runs the polling loop: one aggregate pass per tick,
// plus an immediate pass on startup so a fresh database fills without
// waiting for the first interval.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"jobscout-engine/internal/aggregate"
)

type Scheduler struct {
	cron   *cron.Cron
	runner *aggregate.Runner
	log    *zap.Logger
	spec   string // cron spec, e.g. "@every 6h"
}

func New(runner *aggregate.Runner, spec string, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		runner: runner,
		log:    log,
		spec:   spec,
	}
}

// Start registers the tick and kicks off one pass right away.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runPass(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.log.Info("scheduler started", zap.String("spec", s.spec))

	go s.runPass(ctx)
	return nil
}

// Stop halts future ticks; a pass already running finishes on its own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) runPass(ctx context.Context) {
	res, err := s.runner.RunPass(ctx, "")
	if err != nil {
		// A pass triggered via the API can hold the lock; that is not a
		// failure worth logging loudly.
		if errors.Is(err, aggregate.ErrPassInProgress) {
			s.log.Debug("pass skipped, lock held")
			return
		}
		s.log.Warn("scheduled pass failed", zap.Error(err))
		return
	}
	s.log.Info("scheduled pass done",
		zap.Int("new", len(res.NewJobs)),
		zap.Int("expired", len(res.Expired)))
}
