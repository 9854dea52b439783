package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// documentFlusher retries the document save that failed during a mutating
// operation. Flush reports whether a pending write was persisted.
type documentFlusher interface {
	Flush(ctx context.Context) (bool, error)
}

// Scheduler periodically flushes the document store, closing the window
// where the in-memory document is ahead of durable storage after a failed
// save.
type Scheduler struct {
	store    documentFlusher
	interval time.Duration
	logger   logger.Logger
}

func New(
	store documentFlusher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("flush scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("flush scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	flushed, err := s.store.Flush(ctx)
	if err != nil {
		s.logger.Error("failed to flush document store",
			logger.String("error", err.Error()),
		)
		return
	}

	if flushed {
		s.logger.Info("pending document changes persisted")
	}
}
