package auth

import (
	"context"
	"log/slog"
	"time"
)

// RunSweeper periodically drops expired refresh tokens from the store until
// ctx is cancelled. Intended to run in its own goroutine.
func RunSweeper(ctx context.Context, store TokenStore, interval time.Duration) {
	// NewTicker panics on a non-positive interval; a zero config value means
	// sweeping is disabled.
	if interval <= 0 {
		slog.Warn("refresh token sweeper disabled", "interval", interval)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := store.Sweep(ctx)
			if err != nil {
				slog.Error("refresh token sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("swept expired refresh tokens", "removed", removed)
			}
		}
	}
}
