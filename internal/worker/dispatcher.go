package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/freelancenexus/notification/internal/event"
	"github.com/freelancenexus/notification/internal/rabbitmq/topology"
)

// Worker pool bounds per queue. Outside this window a misconfigured worker
// count either starves the queue or floods the store.
const (
	MinWorkers = 3
	MaxWorkers = 10

	// MaxPrefetch caps the per-worker in-flight buffer.
	MaxPrefetch = 10
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type queueConsumer interface {
	Consume(queue string, out chan []byte, strategy retry.Strategy) error
	ConsumeDeadLetters(out chan []byte, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, kind event.Kind, body []byte, strategy retry.Strategy)
}

// Dispatcher runs one listener per queue, each feeding a bounded pool of
// workers. Workers share nothing in memory; ordering across messages is not
// guaranteed and handlers must tolerate arbitrary interleaving.
type Dispatcher struct {
	consumer queueConsumer
	handler  messageHandler
	queues   map[string]event.Kind
}

// NewDispatcher creates a dispatcher over the declared topology queues.
func NewDispatcher(consumer queueConsumer, handler messageHandler) *Dispatcher {
	return &Dispatcher{
		consumer: consumer,
		handler:  handler,
		queues:   topology.QueueKinds(),
	}
}

// Run starts the per-queue worker pools and blocks until ctx is cancelled.
// workers is clamped to [MinWorkers, MaxWorkers] and prefetch to
// [1, MaxPrefetch]; the channel buffer of workers*prefetch bounds the
// unprocessed in-flight messages per queue.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workers, prefetch int) {
	workers = clamp(workers, MinWorkers, MaxWorkers)
	prefetch = clamp(prefetch, 1, MaxPrefetch)

	var wg sync.WaitGroup

	for queue, kind := range d.queues {
		msgChan := make(chan []byte, workers*prefetch)

		go func(queue string) {
			if err := d.consumer.Consume(queue, msgChan, strategy); err != nil {
				zlog.Logger.Error().Err(err).Str("queue", queue).Msg("failed to consume messages")
			}
		}(queue)

		for i := 0; i < workers; i++ {
			wg.Add(1)

			go func(queue string, kind event.Kind, id int) {
				defer wg.Done()
				zlog.Logger.Info().Str("queue", queue).Int("worker", id).Msg("worker started")

				for {
					select {
					case <-ctx.Done():
						zlog.Logger.Info().Str("queue", queue).Int("worker", id).Msg("worker shutting down")
						return
					case body := <-msgChan:
						d.handler.HandleMessage(ctx, kind, body, strategy)
					}
				}
			}(queue, kind, i)
		}
	}

	go d.drainDeadLetters(ctx, strategy)

	wg.Wait()
	zlog.Logger.Info().Msg("dispatcher stopped")
}

// drainDeadLetters logs everything that lands on the DLQ so poison messages
// are visible for manual inspection.
func (d *Dispatcher) drainDeadLetters(ctx context.Context, strategy retry.Strategy) {
	deadChan := make(chan []byte)

	go func() {
		if err := d.consumer.ConsumeDeadLetters(deadChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume dead letters")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case body := <-deadChan:
			zlog.Logger.Error().Str("body", string(body)).Msg("dead-lettered message received")
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
