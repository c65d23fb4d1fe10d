// Package scheduler runs the periodic store snapshot that backs up
// the JSON collections while the server is running.
package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type storeSnapshotter interface {
	Snapshot() (string, error)
}

type Scheduler struct {
	store    storeSnapshotter
	interval time.Duration
	logger   logger.Logger
}

func New(store storeSnapshotter, interval time.Duration, logger logger.Logger) *Scheduler {
	return &Scheduler{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	dir, err := s.store.Snapshot()
	if err != nil {
		s.logger.Error("failed to snapshot store",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("store snapshot written",
		logger.String("dir", dir),
	)
}
