// Package signal provides an explicit in-process subscription bus used by the
// client to propagate state-change notifications between components.
//
// Topics carry no payload: a notification only tells subscribers that the
// named state changed and they should re-fetch whatever they cache. The bus
// replaces ambient global events with an object owned by the application
// root, giving subscriptions a defined lifecycle.
package signal

import "sync"

// Topic names a category of state-change notifications.
type Topic string

const (
	// SessionChanged fires when the signed-in user changes: sign-in,
	// sign-out, or a profile edit that alters the session snapshot.
	SessionChanged Topic = "session-changed"

	// ProfileUpdated fires after the current user's name or avatar was
	// successfully written to the server.
	ProfileUpdated Topic = "profile-updated"

	// CampaignsRefreshed fires when the background worker has re-fetched
	// the campaign list from the server.
	CampaignsRefreshed Topic = "campaigns-refreshed"
)

// Bus is a topic-based broadcast bus. The zero value is not usable; create
// one with NewBus. All methods are safe for concurrent use.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[Topic]map[int]chan struct{}
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[int]chan struct{})}
}

// Subscribe registers interest in a topic. It returns a receive channel and
// an unsubscribe function. The channel has a buffer of one: notifications
// published while a previous one is still pending are coalesced, so
// subscribers never block publishers. The unsubscribe function is safe to
// call more than once; after it returns the channel is closed.
func (b *Bus) Subscribe(topic Topic) (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID

	ch := make(chan struct{}, 1)
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]chan struct{})
	}
	b.subs[topic][id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if sub, ok := b.subs[topic][id]; ok {
			delete(b.subs[topic], id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

// Publish notifies every subscriber of the topic. It never blocks: a
// subscriber that has not consumed its pending notification keeps exactly
// one in the buffer.
func (b *Bus) Publish(topic Topic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
