package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/craftlink/community-api/internal/core/domain"
	"github.com/craftlink/community-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes stored messages to a fixed set of workers using
// consistent hashing on the conversation pair key, guaranteeing that
// subscribers observe each conversation's messages in creation order.
type Dispatcher struct {
	workers []chan domain.Message
	broker  ports.MessageBroker
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, broker ports.MessageBroker, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Message, numWorkers),
		broker:  broker,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Message, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a message to the worker responsible for its conversation.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(m domain.Message) {
	d.workers[d.shardIndex(domain.PairKey(m.SenderID, m.ReceiverID))] <- m
}

// shardIndex maps a pair key deterministically to a worker index.
func (d *Dispatcher) shardIndex(pairKey string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(pairKey))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			d.broker.Publish(m)
			d.log.Debug().
				Str("message_id", m.ID).
				Int("worker_id", id).
				Msg("message delivered")
		}
	}
}
