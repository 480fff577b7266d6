package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_ProjectCreated(t *testing.T) {
	body := []byte(`{
		"projectId": 7,
		"clientId": 42,
		"clientEmail": "client@example.com",
		"projectTitle": "Website Redesign",
		"budget": 5000.0,
		"createdAt": "2025-01-15T10:30:00Z"
	}`)

	ev, err := Decode(KindProjectCreated, body)
	assert.NoError(t, err)

	e, ok := ev.(ProjectCreated)
	if assert.True(t, ok) {
		assert.Equal(t, int64(7), e.ProjectID)
		assert.Equal(t, int64(42), e.ClientID)
		assert.Equal(t, "client@example.com", e.ClientEmail)
		assert.Equal(t, "Website Redesign", e.ProjectTitle)
		assert.Equal(t, 5000.0, e.Budget)
	}
	assert.Equal(t, KindProjectCreated, ev.Kind())
}

func TestDecode_ProjectAssigned(t *testing.T) {
	body := []byte(`{
		"projectId": 7,
		"clientId": 42,
		"assignedFreelancerId": 99,
		"freelancerEmail": "freelancer@example.com",
		"freelancerName": "Jane Doe",
		"projectTitle": "Website Redesign"
	}`)

	ev, err := Decode(KindProjectAssigned, body)
	assert.NoError(t, err)

	e, ok := ev.(ProjectAssigned)
	if assert.True(t, ok) {
		assert.Equal(t, int64(99), e.AssignedFreelancerID)
		assert.Equal(t, "Jane Doe", e.FreelancerName)
	}
}

func TestDecode_ProposalSubmitted(t *testing.T) {
	body := []byte(`{
		"proposalId": 15,
		"projectId": 7,
		"projectTitle": "Website Redesign",
		"freelancerId": 99,
		"freelancerName": "Jane Doe",
		"freelancerEmail": "freelancer@example.com",
		"clientId": 42,
		"clientEmail": "client@example.com",
		"bidAmount": 1200.5,
		"submittedAt": "2025-01-15T10:30:00Z"
	}`)

	ev, err := Decode(KindProposalSubmitted, body)
	assert.NoError(t, err)

	e, ok := ev.(ProposalSubmitted)
	if assert.True(t, ok) {
		assert.Equal(t, int64(15), e.ProposalID)
		assert.Equal(t, 1200.5, e.BidAmount)
	}
}

func TestDecode_PaymentCompleted(t *testing.T) {
	body := []byte(`{
		"paymentId": 21,
		"projectId": 7,
		"projectTitle": "Website Redesign",
		"payerId": 42,
		"payerEmail": "client@example.com",
		"receiverId": 99,
		"receiverEmail": "freelancer@example.com",
		"amount": 250.5,
		"currency": "USD",
		"transactionId": "TXN-001",
		"completedAt": "2025-01-15T10:30:00Z"
	}`)

	ev, err := Decode(KindPaymentCompleted, body)
	assert.NoError(t, err)

	e, ok := ev.(PaymentCompleted)
	if assert.True(t, ok) {
		assert.Equal(t, "TXN-001", e.TransactionID)
		assert.Equal(t, "USD", e.Currency)
	}
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := Decode("user.registered", []byte(`{}`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event kind")
}

func TestDecode_MalformedBody(t *testing.T) {
	_, err := Decode(KindProjectCreated, []byte(`{"projectId": `))
	assert.Error(t, err)
}

func TestKinds_MatchRoutingKeys(t *testing.T) {
	assert.Equal(t, Kind("project.created"), ProjectCreated{}.Kind())
	assert.Equal(t, Kind("project.assigned"), ProjectAssigned{}.Kind())
	assert.Equal(t, Kind("proposal.submitted"), ProposalSubmitted{}.Kind())
	assert.Equal(t, Kind("payment.completed"), PaymentCompleted{}.Kind())
}
