package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSweeper_NonPositiveIntervalReturns(t *testing.T) {
	t.Parallel()

	// Must return immediately instead of panicking in time.NewTicker.
	RunSweeper(context.Background(), NewMemoryTokenStore(), 0)
	RunSweeper(context.Background(), NewMemoryTokenStore(), -time.Minute)
}

func TestRunSweeper_RemovesExpiredTokens(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Register(ctx, "stale", "user-1", time.Now().Add(-time.Hour)))
	require.NoError(t, store.Register(ctx, "fresh", "user-1", time.Now().Add(time.Hour)))

	done := make(chan struct{})
	go func() {
		defer close(done)
		RunSweeper(ctx, store, 5*time.Millisecond)
	}()

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		_, stale := store.tokens["stale"]
		_, fresh := store.tokens["fresh"]
		return !stale && fresh
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
