package events

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/store/memstore"
)

func receive(t *testing.T, sub *Subscription) map[string]any {
	t.Helper()
	select {
	case event := <-sub.Events():
		require.NotNil(t, event)
		return event.Payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishFansOutAndPersists(t *testing.T) {
	st := memstore.New()
	bus := NewBus(st, slog.Default())

	topic := TaskMessagesTopic("t1")
	sub := bus.Subscribe(topic)
	defer sub.Close()

	err := bus.Publish(context.Background(), "t1", topic, map[string]any{
		"type": TypeTaskMessage,
		"text": "hello",
	})
	require.NoError(t, err)

	payload := receive(t, sub)
	assert.Equal(t, "hello", payload["text"])

	// Persisted and replayable.
	missed, err := bus.CatchUp(context.Background(), topic, 0)
	require.NoError(t, err)
	require.Len(t, missed, 1)
	assert.Equal(t, int64(1), missed[0].ID)
}

func TestTransientEventsAreNotPersisted(t *testing.T) {
	st := memstore.New()
	bus := NewBus(st, slog.Default())

	topic := ShellEventsTopic("ag-1")
	sub := bus.Subscribe(topic)
	defer sub.Close()

	bus.PublishTransient("t1", topic, map[string]any{
		"type":     TypeShellFinished,
		"check_id": "chk-1",
	})

	payload := receive(t, sub)
	assert.Equal(t, "chk-1", payload["check_id"])

	missed, err := bus.CatchUp(context.Background(), topic, 0)
	require.NoError(t, err)
	assert.Empty(t, missed)
}

func TestTopicIsolation(t *testing.T) {
	st := memstore.New()
	bus := NewBus(st, slog.Default())

	a := bus.Subscribe(AgentLogsTopic("ag-a"))
	defer a.Close()
	b := bus.Subscribe(AgentLogsTopic("ag-b"))
	defer b.Close()

	require.NoError(t, bus.Publish(context.Background(), "t1", AgentLogsTopic("ag-a"),
		map[string]any{"type": TypeAgentLog}))

	receive(t, a)
	select {
	case event := <-b.Events():
		t.Fatalf("unexpected cross-topic delivery: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCloseStopsDelivery(t *testing.T) {
	st := memstore.New()
	bus := NewBus(st, slog.Default())

	topic := TaskStatusTopic("t1")
	sub := bus.Subscribe(topic)
	sub.Close()
	sub.Close() // idempotent

	_, open := <-sub.Events()
	assert.False(t, open)

	// Publishing after close must not panic.
	require.NoError(t, bus.Publish(context.Background(), "t1", topic,
		map[string]any{"type": TypeTaskStatus, "status": "running"}))
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	st := memstore.New()
	bus := NewBus(st, slog.Default())

	topic := TaskMessagesTopic("t1")
	sub := bus.Subscribe(topic)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer+10; i++ {
			bus.PublishTransient("t1", topic, map[string]any{"n": i})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}

func TestConcurrentPublishAndClose(t *testing.T) {
	st := memstore.New()
	bus := NewBus(st, slog.Default())

	topic := AgentTreeTopic("t1")

	// A publish racing a subscriber disconnect must never send on the
	// closed channel. Hammer both sides from separate goroutines.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				bus.PublishTransient("t1", topic, map[string]any{"type": TypeAgentSpawned})
			}
		}
	}()

	for i := 0; i < 200; i++ {
		sub := bus.Subscribe(topic)
		sub.Close()
	}

	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher did not finish")
	}
}

func TestCatchUpAfterID(t *testing.T) {
	st := memstore.New()
	bus := NewBus(st, slog.Default())

	topic := TaskMessagesTopic("t1")
	for i := 0; i < 3; i++ {
		require.NoError(t, bus.Publish(context.Background(), "t1", topic,
			map[string]any{"n": i}))
	}

	missed, err := bus.CatchUp(context.Background(), topic, 1)
	require.NoError(t, err)
	require.Len(t, missed, 2)
	assert.Equal(t, int64(2), missed[0].ID)
	assert.Equal(t, int64(3), missed[1].ID)
}
