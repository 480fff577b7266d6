package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freelancenexus/notification/internal/event"
)

func TestBindings_CoverEveryEventKind(t *testing.T) {
	bindings := Bindings()
	assert.Len(t, bindings, 4)

	kinds := make(map[event.Kind]Binding, len(bindings))
	for _, b := range bindings {
		kinds[b.Kind] = b
	}

	assert.Contains(t, kinds, event.KindProjectCreated)
	assert.Contains(t, kinds, event.KindProjectAssigned)
	assert.Contains(t, kinds, event.KindProposalSubmitted)
	assert.Contains(t, kinds, event.KindPaymentCompleted)

	// Routing keys are the event kinds themselves.
	for kind, b := range kinds {
		assert.Equal(t, string(kind), b.RoutingKey)
	}
}

func TestBindings_ExchangeLayout(t *testing.T) {
	exchanges := make(map[string][]string)
	for _, b := range Bindings() {
		exchanges[b.Exchange] = append(exchanges[b.Exchange], b.Queue)
	}

	assert.ElementsMatch(t, []string{ProjectCreatedQueue, ProjectAssignedQueue}, exchanges[ProjectExchange])
	assert.ElementsMatch(t, []string{ProposalSubmittedQueue}, exchanges[ProposalExchange])
	assert.ElementsMatch(t, []string{PaymentCompletedQueue}, exchanges[PaymentExchange])
}

func TestQueueKinds(t *testing.T) {
	kinds := QueueKinds()

	assert.Equal(t, event.KindProjectCreated, kinds[ProjectCreatedQueue])
	assert.Equal(t, event.KindProjectAssigned, kinds[ProjectAssignedQueue])
	assert.Equal(t, event.KindProposalSubmitted, kinds[ProposalSubmittedQueue])
	assert.Equal(t, event.KindPaymentCompleted, kinds[PaymentCompletedQueue])
}
