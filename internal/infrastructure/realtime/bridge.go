package realtime

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tiendapanel/pkg/logger"
)

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Event is a change notification for one document in a collection. Events
// are hints to reload: no ordering is guaranteed between a local mutation's
// response and the push echo of that same mutation.
type Event struct {
	Collection string    `json:"collection"`
	Type       EventType `json:"type"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

const eventBuffer = 64

// Subscription delivers change events for a single collection until
// Unsubscribe is called. Forgetting to unsubscribe leaks the listener for
// the lifetime of the process.
type Subscription struct {
	events chan Event
	cancel context.CancelFunc
	once   sync.Once
}

func newSubscription(cancel context.CancelFunc) *Subscription {
	return &Subscription{
		events: make(chan Event, eventBuffer),
		cancel: cancel,
	}
}

// Events is closed after Unsubscribe, once the listener has shut down.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// publish never blocks; if the subscriber lags behind the buffer the event
// is dropped, which is safe because every event is only a reload hint.
func (s *Subscription) publish(ev Event) {
	select {
	case s.events <- ev:
	default:
		logger.Warn("realtime: dropping %s event for %s/%s, subscriber is slow", ev.Type, ev.Collection, ev.ID)
	}
}

type Bridge struct {
	client *firestore.Client
}

func NewBridge(client *firestore.Client) *Bridge {
	return &Bridge{
		client: client,
	}
}

// Subscribe opens a push channel scoped to one collection. Every insert,
// update and delete on that collection is delivered as one Event.
func (b *Bridge) Subscribe(ctx context.Context, collection string) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := newSubscription(cancel)

	go b.pump(ctx, collection, sub)

	return sub
}

func (b *Bridge) pump(ctx context.Context, collection string, sub *Subscription) {
	defer close(sub.events)

	it := b.client.Collection(collection).Snapshots(ctx)
	defer it.Stop()

	first := true
	for {
		snap, err := it.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled || ctx.Err() != nil {
				return
			}
			logger.Error("realtime: listener for %s failed: %v", collection, err)
			return
		}

		// The initial snapshot replays the whole collection as additions;
		// skip it so subscribers only see changes from after they attached.
		if first {
			first = false
			continue
		}

		for _, change := range snap.Changes {
			sub.publish(Event{
				Collection: collection,
				Type:       kindToType(change.Kind),
				ID:         change.Doc.Ref.ID,
				At:         snap.ReadTime,
			})
		}
	}
}

func kindToType(kind firestore.DocumentChangeKind) EventType {
	switch kind {
	case firestore.DocumentAdded:
		return EventCreated
	case firestore.DocumentModified:
		return EventUpdated
	default:
		return EventDeleted
	}
}
