// Package events provides the in-process event bus and the WebSocket
// connection manager built on top of it.
//
// Two delivery classes exist:
//
//   - Persisted events are written to the events table first, then fanned
//     out to live subscribers. They carry a monotonically increasing ID per
//     task, so a subscriber that connects late can replay everything after
//     the last ID it saw.
//
//   - Transient events are fanned out only. They carry ID 0 and are lost on
//     disconnect. Shell completion ticks and wait-timer expiries use this
//     class: their effects are re-derivable from agent state.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/store"
)

// subscriberBuffer is the per-subscriber channel depth. A subscriber that
// falls this far behind starts losing events; persisted topics recover via
// CatchUp, transient ones do not.
const subscriberBuffer = 64

// Subscription is one live attachment to a topic. Close it when done or the
// bus leaks the channel.
type Subscription struct {
	id    string
	topic string
	ch    chan *models.Event
	bus   *Bus
	once  sync.Once
}

// Events returns the delivery channel. It is closed by Close.
func (s *Subscription) Events() <-chan *models.Event { return s.ch }

// Close detaches the subscription and closes its channel.
func (s *Subscription) Close() {
	s.once.Do(func() { s.bus.unsubscribe(s) })
}

// Bus is the process-wide event fan-out. All methods are safe for
// concurrent use.
type Bus struct {
	store  store.Store
	logger *slog.Logger

	mu   sync.RWMutex
	subs map[string]map[string]*Subscription // topic → sub id → sub
}

// NewBus creates a bus that persists replayable events through st.
func NewBus(st store.Store, logger *slog.Logger) *Bus {
	return &Bus{
		store:  st,
		logger: logger.With("component", "event_bus"),
		subs:   make(map[string]map[string]*Subscription),
	}
}

// Subscribe attaches to a topic. Events published after this call are
// delivered; use CatchUp for anything earlier.
func (b *Bus) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		id:    uuid.New().String(),
		topic: topic,
		ch:    make(chan *models.Event, subscriberBuffer),
		bus:   b,
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[string]*Subscription)
	}
	b.subs[topic][sub.id] = sub
	return sub
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if topicSubs, ok := b.subs[sub.topic]; ok {
		delete(topicSubs, sub.id)
		if len(topicSubs) == 0 {
			delete(b.subs, sub.topic)
		}
	}
	close(sub.ch)
}

// Publish persists the event, assigning its ID, then fans it out to live
// subscribers of the topic.
func (b *Bus) Publish(ctx context.Context, taskID, topic string, payload map[string]any) error {
	event := &models.Event{
		TaskID:  taskID,
		Topic:   topic,
		Payload: payload,
	}
	if err := b.store.AppendEvent(ctx, event); err != nil {
		return fmt.Errorf("persisting event on %s: %w", topic, err)
	}
	b.fanOut(event)
	return nil
}

// PublishTransient fans the event out without persisting it. The delivered
// event carries ID 0.
func (b *Bus) PublishTransient(taskID, topic string, payload map[string]any) {
	b.fanOut(&models.Event{
		TaskID:  taskID,
		Topic:   topic,
		Payload: payload,
	})
}

// CatchUp returns the persisted events on a topic with ID greater than
// afterID, in order. Topics embed the task or agent ID they belong to, so
// the topic alone identifies the stream.
func (b *Bus) CatchUp(ctx context.Context, topic string, afterID int64) ([]*models.Event, error) {
	return b.store.ListEvents(ctx, "", topic, afterID)
}

func (b *Bus) fanOut(event *models.Event) {
	// Sends happen under the read lock: unsubscribe closes channels under the
	// write lock, so no channel can be closed mid-send. The sends never
	// block, so holding the lock here is cheap.
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs[event.Topic] {
		select {
		case sub.ch <- event:
		default:
			b.logger.Warn("dropping event for slow subscriber",
				"topic", event.Topic, "subscriber", sub.id)
		}
	}
}
