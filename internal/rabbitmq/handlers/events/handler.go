package events

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/freelancenexus/notification/internal/event"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/events/mock.go -package=mocks

type eventEngine interface {
	Handle(ctx context.Context, strategy retry.Strategy, ev event.DomainEvent) error
}

type deadLetterer interface {
	PublishDead(body []byte, strategy retry.Strategy) error
}

// Handler processes one consumed message: decode, dispatch to the engine,
// and on exhausted retries park the raw body on the dead-letter queue.
// This is the single decision point for retry and dead-lettering; the engine
// itself never retries.
type Handler struct {
	engine eventEngine
	dlq    deadLetterer
}

// NewHandler creates a message handler.
func NewHandler(engine eventEngine, dlq deadLetterer) *Handler {
	return &Handler{engine: engine, dlq: dlq}
}

// HandleMessage processes a raw message body consumed from the queue that
// carries events of the given kind. Decode failures and engine failures run
// through the same retry strategy; a message that still fails afterwards
// goes to the DLQ, never silently dropped.
func (h *Handler) HandleMessage(ctx context.Context, kind event.Kind, body []byte, strategy retry.Strategy) {
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ev, err := event.Decode(kind, body)
		if err != nil {
			return err
		}

		return h.engine.Handle(ctx, strategy, ev)
	}, strategy)

	if err == nil {
		zlog.Logger.Info().Str("kind", string(kind)).Msg("event processed")
		return
	}

	zlog.Logger.Error().Err(err).Str("kind", string(kind)).Msg("event failed after retries, moving to DLQ")

	if dlqErr := h.dlq.PublishDead(body, strategy); dlqErr != nil {
		zlog.Logger.Error().Err(dlqErr).Str("kind", string(kind)).Msg("failed to publish to DLQ")
	}
}
