package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	require.True(t, th.wait(context.Background()))
	require.True(t, th.wait(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestThrottleStopsOnCancel(t *testing.T) {
	th := newThrottle(time.Hour)
	require.True(t, th.wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	start := time.Now()
	require.False(t, th.wait(ctx))
	require.Less(t, time.Since(start), time.Second)
}

func TestThrottleDisabledReportsContext(t *testing.T) {
	th := newThrottle(0)
	require.True(t, th.wait(context.Background()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, th.wait(ctx))
}
