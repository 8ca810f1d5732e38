package core

// scheduler.go keeps the catalog snapshot fresh.
//
// The refresh job is long-running and context-aware for graceful shutdown.
// A failed refresh is logged and the previous snapshot keeps serving exports.

import (
	"context"
	"log/slog"
	"time"
)

// StartRefreshScheduler reloads the catalog every interval until ctx is
// cancelled. A non-positive interval disables the scheduler.
func (s *Service) StartRefreshScheduler(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		slog.Info("catalog refresh scheduler disabled")
		return
	}

	slog.Info("catalog refresh scheduler started",
		"source", s.source.Name(),
		"interval", interval.String(),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("catalog refresh scheduler stopped")
			return
		case <-ticker.C:
			s.runRefreshJob(ctx)
		}
	}
}

func (s *Service) runRefreshJob(ctx context.Context) {
	slog.Debug("catalog refresh started")
	if _, err := s.Refresh(ctx); err != nil {
		slog.Error("catalog refresh failed", "source", s.source.Name(), "error", err)
	}
}
