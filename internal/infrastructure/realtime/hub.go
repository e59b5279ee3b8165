package realtime

import (
	"sync"

	"github.com/craftlink/community-api/internal/core/domain"
)

const subscriberBuffer = 64

// Hub is an in-process message broker keyed by conversation pair. It backs
// the live chat stream: every stored message is published to the pair's
// current subscribers. Publishes never block; a subscriber whose buffer is
// full misses the message and is expected to re-sync from history.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan domain.Message]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan domain.Message]struct{})}
}

// Subscribe registers a listener for pairKey. The returned cancel func
// removes the listener and closes its channel; it is safe to call more
// than once.
func (h *Hub) Subscribe(pairKey string) (<-chan domain.Message, func()) {
	ch := make(chan domain.Message, subscriberBuffer)

	h.mu.Lock()
	if h.subs[pairKey] == nil {
		h.subs[pairKey] = make(map[chan domain.Message]struct{})
	}
	h.subs[pairKey][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if set, ok := h.subs[pairKey]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, pairKey)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish fans m out to every subscriber of its pair key.
func (h *Hub) Publish(m domain.Message) {
	key := domain.PairKey(m.SenderID, m.ReceiverID)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[key] {
		select {
		case ch <- m:
		default:
			// subscriber is not draining; drop rather than block delivery
		}
	}
}

// Subscribers reports the current listener count for pairKey.
func (h *Hub) Subscribers(pairKey string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[pairKey])
}
