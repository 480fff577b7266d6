// Package producer is the publish-side boundary the project, proposal and
// payment services use after a successful local state change. A failed
// publish is retried with backoff, then logged and abandoned. The local
// change is never rolled back, so the publish side is at-most-once.
package producer

import (
	"encoding/json"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/freelancenexus/notification/internal/event"
	"github.com/freelancenexus/notification/internal/rabbitmq/topology"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/producer/mock.go -package=mocks

type wirePublisher interface {
	PublishWithRetry(body []byte, routingKey string, contentType string, strategy retry.Strategy, opts ...rabbitmq.PublishingOptions) error
}

// Publisher publishes domain events to their domain exchanges.
type Publisher struct {
	project  wirePublisher
	proposal wirePublisher
	payment  wirePublisher
	strategy retry.Strategy
}

// New creates a Publisher over the three domain exchanges.
func New(ch *rabbitmq.Channel, strategy retry.Strategy) *Publisher {
	return &Publisher{
		project:  rabbitmq.NewPublisher(ch, topology.ProjectExchange),
		proposal: rabbitmq.NewPublisher(ch, topology.ProposalExchange),
		payment:  rabbitmq.NewPublisher(ch, topology.PaymentExchange),
		strategy: strategy,
	}
}

// ProjectCreated publishes a project.created event.
func (p *Publisher) ProjectCreated(e event.ProjectCreated) {
	p.publish(p.project, e.Kind(), e)
}

// ProjectAssigned publishes a project.assigned event.
func (p *Publisher) ProjectAssigned(e event.ProjectAssigned) {
	p.publish(p.project, e.Kind(), e)
}

// ProposalSubmitted publishes a proposal.submitted event.
func (p *Publisher) ProposalSubmitted(e event.ProposalSubmitted) {
	p.publish(p.proposal, e.Kind(), e)
}

// PaymentCompleted publishes a payment.completed event.
func (p *Publisher) PaymentCompleted(e event.PaymentCompleted) {
	p.publish(p.payment, e.Kind(), e)
}

func (p *Publisher) publish(pub wirePublisher, kind event.Kind, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to marshal event")
		return
	}

	if err := pub.PublishWithRetry(body, string(kind), "application/json", p.strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("kind", string(kind)).Msg("abandoning event publish after retries")
		return
	}

	zlog.Logger.Info().Str("kind", string(kind)).Msg("event published")
}
