package execution

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_StreamsOneResultPerEvent(t *testing.T) {
	events := make(chan any, 2)
	resolvers := NewResolvers()
	resolvers.RegisterSubscription("Subscription", "counter", func(ctx context.Context, source any, args map[string]any, info Info) (<-chan any, error) {
		return events, nil
	})
	resolvers.RegisterField("Subscription", "counter", func(ctx context.Context, source any, args map[string]any, info Info) (any, error) {
		return source, nil
	})
	engine := newTestEngine(t, resolvers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := engine.Subscribe(ctx, mustParse(t, `subscription { counter }`), nil, nil, "")
	require.NoError(t, err)

	events <- 1
	select {
	case result := <-stream:
		require.Empty(t, result.Errors)
		assert.Equal(t, 1, result.Data.Values["counter"])
	case <-time.After(time.Second):
		t.Fatal("no result received for first event")
	}

	events <- 2
	select {
	case result := <-stream:
		require.Empty(t, result.Errors)
		assert.Equal(t, 2, result.Data.Values["counter"])
	case <-time.After(time.Second):
		t.Fatal("no result received for second event")
	}

	close(events)
	select {
	case _, ok := <-stream:
		assert.False(t, ok, "stream should close once the event source closes")
	case <-time.After(time.Second):
		t.Fatal("stream never closed")
	}
}

func TestSubscribe_CancelStopsThePump(t *testing.T) {
	events := make(chan any)
	resolvers := NewResolvers()
	resolvers.RegisterSubscription("Subscription", "counter", func(ctx context.Context, source any, args map[string]any, info Info) (<-chan any, error) {
		return events, nil
	})
	engine := newTestEngine(t, resolvers)

	ctx, cancel := context.WithCancel(context.Background())
	stream, err := engine.Subscribe(ctx, mustParse(t, `subscription { counter }`), nil, nil, "")
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-stream:
		assert.False(t, ok, "stream should close once ctx is cancelled")
	case <-time.After(time.Second):
		t.Fatal("stream never closed after cancellation")
	}
}

func TestSubscribe_RejectsNonSubscriptionOperation(t *testing.T) {
	engine := newTestEngine(t, nil)
	_, err := engine.Subscribe(context.Background(), mustParse(t, `{ hello }`), nil, nil, "")
	require.Error(t, err)
}

func TestSubscribe_RequiresRegisteredResolver(t *testing.T) {
	engine := newTestEngine(t, nil)
	_, err := engine.Subscribe(context.Background(), mustParse(t, `subscription { counter }`), nil, nil, "")
	require.Error(t, err)
}
