package summarizer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1.0, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, rl.Allow(ctx))
	}
}

func TestRateLimiter_BlocksUntilContextCanceled(t *testing.T) {
	rl := NewRateLimiter(0.01, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Drain the single burst token, then the next call must wait past the deadline.
	require.NoError(t, rl.Allow(context.Background()))

	err := rl.Allow(ctx)
	assert.Error(t, err)
}
