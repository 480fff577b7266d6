// Package topology declares the broker layout the producer and consumer
// sides agree on: one topic exchange per domain, one durable queue per event
// kind, and a shared dead-letter exchange/queue for messages that exhaust
// their retries. Declared once at startup, immutable afterwards.
package topology

import (
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"

	"github.com/freelancenexus/notification/internal/event"
)

// Exchange names, one per producing domain.
const (
	ProjectExchange  = "project.exchange"
	ProposalExchange = "proposal.exchange"
	PaymentExchange  = "payment.exchange"
)

// Queue names. Exact strings are part of the cross-service contract.
const (
	ProjectCreatedQueue    = "project.created.queue"
	ProjectAssignedQueue   = "project.assigned.queue"
	ProposalSubmittedQueue = "proposal.submitted.queue"
	PaymentCompletedQueue  = "payment.completed.queue"
)

// Routing keys match event kinds one to one.
const (
	ProjectCreatedKey    = string(event.KindProjectCreated)
	ProjectAssignedKey   = string(event.KindProjectAssigned)
	ProposalSubmittedKey = string(event.KindProposalSubmitted)
	PaymentCompletedKey  = string(event.KindPaymentCompleted)
)

// Dead-letter layout shared by every queue.
const (
	DLQExchange   = "notification.dlq.exchange"
	DLQQueue      = "notification.dlq.queue"
	DLQRoutingKey = "notification.dlq"
)

// Binding ties one queue to one exchange under one routing key.
type Binding struct {
	Exchange   string
	Queue      string
	RoutingKey string
	Kind       event.Kind
}

// Bindings returns the four queue bindings of the pipeline.
func Bindings() []Binding {
	return []Binding{
		{Exchange: ProjectExchange, Queue: ProjectCreatedQueue, RoutingKey: ProjectCreatedKey, Kind: event.KindProjectCreated},
		{Exchange: ProjectExchange, Queue: ProjectAssignedQueue, RoutingKey: ProjectAssignedKey, Kind: event.KindProjectAssigned},
		{Exchange: ProposalExchange, Queue: ProposalSubmittedQueue, RoutingKey: ProposalSubmittedKey, Kind: event.KindProposalSubmitted},
		{Exchange: PaymentExchange, Queue: PaymentCompletedQueue, RoutingKey: PaymentCompletedKey, Kind: event.KindPaymentCompleted},
	}
}

// QueueKinds maps each queue to the event kind it carries, for the
// dispatcher's decode step.
func QueueKinds() map[string]event.Kind {
	kinds := make(map[string]event.Kind, 4)
	for _, b := range Bindings() {
		kinds[b.Queue] = b.Kind
	}
	return kinds
}

// Topology holds the declared consumers and the dead-letter publisher.
type Topology struct {
	consumers   map[string]*rabbitmq.Consumer
	dlqConsumer *rabbitmq.Consumer
	dlq         *rabbitmq.Publisher
}

// Declare sets up all exchanges, queues and bindings on the given channel.
func Declare(ch *rabbitmq.Channel) (*Topology, error) {
	dlx := rabbitmq.NewExchange(DLQExchange, "direct")
	if err := dlx.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("declare dead-letter exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	dlqQ, err := qm.DeclareQueue(DLQQueue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("declare dead-letter queue: %w", err)
	}

	if err := ch.QueueBind(dlqQ.Name, DLQRoutingKey, dlx.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("bind dead-letter queue: %w", err)
	}

	// Every main queue dead-letters into the shared DLQ so broker-side
	// rejects end up in the same place the dispatcher parks poison messages.
	queueArgs := map[string]interface{}{
		"x-dead-letter-exchange":    DLQExchange,
		"x-dead-letter-routing-key": DLQRoutingKey,
	}

	t := &Topology{
		consumers:   make(map[string]*rabbitmq.Consumer, 4),
		dlqConsumer: rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(dlqQ.Name)),
		dlq:         rabbitmq.NewPublisher(ch, dlx.Name()),
	}

	declared := make(map[string]bool, 3)

	for _, b := range Bindings() {
		if !declared[b.Exchange] {
			ex := rabbitmq.NewExchange(b.Exchange, "topic")
			if err := ex.BindToChannel(ch); err != nil {
				return nil, fmt.Errorf("declare exchange %s: %w", b.Exchange, err)
			}
			declared[b.Exchange] = true
		}

		q, err := qm.DeclareQueue(b.Queue, rabbitmq.QueueConfig{
			Durable: true,
			Args:    queueArgs,
		})
		if err != nil {
			return nil, fmt.Errorf("declare queue %s: %w", b.Queue, err)
		}

		if err := ch.QueueBind(q.Name, b.RoutingKey, b.Exchange, false, nil); err != nil {
			return nil, fmt.Errorf("bind queue %s to %s: %w", b.Queue, b.Exchange, err)
		}

		t.consumers[b.Queue] = rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(q.Name))
	}

	return t, nil
}

// Consume delivers raw message bodies from the named queue into out.
func (t *Topology) Consume(queue string, out chan []byte, strategy retry.Strategy) error {
	c, ok := t.consumers[queue]
	if !ok {
		return fmt.Errorf("no consumer declared for queue %s", queue)
	}

	return c.ConsumeWithRetry(out, strategy)
}

// ConsumeDeadLetters delivers dead-lettered message bodies into out.
func (t *Topology) ConsumeDeadLetters(out chan []byte, strategy retry.Strategy) error {
	return t.dlqConsumer.ConsumeWithRetry(out, strategy)
}

// PublishDead parks a message body on the dead-letter queue.
func (t *Topology) PublishDead(body []byte, strategy retry.Strategy) error {
	return t.dlq.PublishWithRetry(body, DLQRoutingKey, "application/json", strategy)
}
