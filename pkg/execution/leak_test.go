package execution

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
)

// TestSubscribe_CancelLeavesNoGoroutineBehind asserts the pump goroutine
// spawned by Subscribe exits once ctx is cancelled, rather than leaking
// parked on the events channel forever.
func TestSubscribe_CancelLeavesNoGoroutineBehind(t *testing.T) {
	defer goleak.VerifyNone(t)

	events := make(chan any)
	resolvers := NewResolvers()
	resolvers.RegisterSubscription("Subscription", "counter", func(ctx context.Context, source any, args map[string]any, info Info) (<-chan any, error) {
		return events, nil
	})
	engine := newTestEngine(t, resolvers)

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := engine.Subscribe(ctx, mustParse(t, `subscription { counter }`), nil, nil, "")
	if err != nil {
		t.Fatal(err)
	}

	cancel()
	for range stream {
	}

	// Give the goroutine's deferred close a moment to run before goleak
	// inspects the goroutine dump.
	time.Sleep(10 * time.Millisecond)
}
