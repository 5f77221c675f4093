package notifier

import (
	"sync"

	"github.com/gardenus/matchledger/internal/domain"
)

const subscriberBuffer = 16

// Bus fans committed notifications out to in-process subscribers.
// Delivery is best-effort and unordered: a subscriber that falls behind
// loses events rather than blocking publishers.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[string]map[int]chan domain.Notification
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[int]chan domain.Notification),
	}
}

// Subscribe registers for a user's notifications and returns the event
// channel with a cancellation handle. Cancel closes the channel.
func (b *Bus) Subscribe(uid string) (<-chan domain.Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan domain.Notification, subscriberBuffer)
	if b.subs[uid] == nil {
		b.subs[uid] = make(map[int]chan domain.Notification)
	}
	b.subs[uid][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[uid][id]; ok {
			delete(b.subs[uid], id)
			if len(b.subs[uid]) == 0 {
				delete(b.subs, uid)
			}
			close(sub)
		}
	}
	return ch, cancel
}

func (b *Bus) Publish(n domain.Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[n.UID] {
		select {
		case ch <- n:
		default:
		}
	}
}
