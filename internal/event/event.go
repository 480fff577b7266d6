// Package event defines the wire contract between the domain services and
// the notification pipeline: four typed payloads, one per routing key.
// All fields are producer-supplied; consumers never re-derive them.
package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind names an event on the wire. Values double as routing keys.
type Kind string

const (
	KindProjectCreated    Kind = "project.created"
	KindProjectAssigned   Kind = "project.assigned"
	KindProposalSubmitted Kind = "proposal.submitted"
	KindPaymentCompleted  Kind = "payment.completed"
)

// DomainEvent is the closed set of events the pipeline consumes.
type DomainEvent interface {
	Kind() Kind
}

// ProjectCreated is published by the project service after a project row is
// committed.
type ProjectCreated struct {
	ProjectID    int64     `json:"projectId"`
	ClientID     int64     `json:"clientId"`
	ClientEmail  string    `json:"clientEmail"`
	ProjectTitle string    `json:"projectTitle"`
	Budget       float64   `json:"budget"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (ProjectCreated) Kind() Kind { return KindProjectCreated }

// ProjectAssigned is published when a client assigns a freelancer to a
// project.
type ProjectAssigned struct {
	ProjectID            int64  `json:"projectId"`
	ClientID             int64  `json:"clientId"`
	AssignedFreelancerID int64  `json:"assignedFreelancerId"`
	FreelancerEmail      string `json:"freelancerEmail"`
	FreelancerName       string `json:"freelancerName"`
	ProjectTitle         string `json:"projectTitle"`
}

func (ProjectAssigned) Kind() Kind { return KindProjectAssigned }

// ProposalSubmitted is published when a freelancer submits a proposal.
type ProposalSubmitted struct {
	ProposalID      int64     `json:"proposalId"`
	ProjectID       int64     `json:"projectId"`
	ProjectTitle    string    `json:"projectTitle"`
	FreelancerID    int64     `json:"freelancerId"`
	FreelancerName  string    `json:"freelancerName"`
	FreelancerEmail string    `json:"freelancerEmail"`
	ClientID        int64     `json:"clientId"`
	ClientEmail     string    `json:"clientEmail"`
	BidAmount       float64   `json:"bidAmount"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

func (ProposalSubmitted) Kind() Kind { return KindProposalSubmitted }

// PaymentCompleted is published by the payment service once a transaction is
// verified and the payment row is committed.
type PaymentCompleted struct {
	PaymentID     int64     `json:"paymentId"`
	ProjectID     int64     `json:"projectId"`
	ProjectTitle  string    `json:"projectTitle"`
	PayerID       int64     `json:"payerId"`
	PayerEmail    string    `json:"payerEmail"`
	ReceiverID    int64     `json:"receiverId"`
	ReceiverEmail string    `json:"receiverEmail"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	TransactionID string    `json:"transactionId"`
	CompletedAt   time.Time `json:"completedAt"`
}

func (PaymentCompleted) Kind() Kind { return KindPaymentCompleted }

// Decode unmarshals body into the payload type for kind. The switch is
// exhaustive over the queue bindings; a kind outside the contract is an
// error, not a silently ignored message.
func Decode(kind Kind, body []byte) (DomainEvent, error) {
	var (
		ev  DomainEvent
		err error
	)

	switch kind {
	case KindProjectCreated:
		var e ProjectCreated
		err = json.Unmarshal(body, &e)
		ev = e
	case KindProjectAssigned:
		var e ProjectAssigned
		err = json.Unmarshal(body, &e)
		ev = e
	case KindProposalSubmitted:
		var e ProposalSubmitted
		err = json.Unmarshal(body, &e)
		ev = e
	case KindPaymentCompleted:
		var e PaymentCompleted
		err = json.Unmarshal(body, &e)
		ev = e
	default:
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s event: %w", kind, err)
	}

	return ev, nil
}
