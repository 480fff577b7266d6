package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies which domain event produced a notification.
type NotificationType string

const (
	TypeProjectCreated     NotificationType = "PROJECT_CREATED"
	TypeProjectAssigned    NotificationType = "PROJECT_ASSIGNED"
	TypeProposalSubmitted  NotificationType = "PROPOSAL_SUBMITTED"
	TypePaymentCompleted   NotificationType = "PAYMENT_COMPLETED"
	TypeSystemNotification NotificationType = "SYSTEM_NOTIFICATION"
)

// Values for Notification.RelatedEntityType.
const (
	EntityProject  = "PROJECT"
	EntityProposal = "PROPOSAL"
	EntityPayment  = "PAYMENT"
	EntitySystem   = "SYSTEM"
)

// Notification is a single persisted notification record.
//
// EmailSent only ever transitions false -> true, and only after an email
// send attempt returned without error. IsRead is likewise monotonic and is
// flipped by an explicit mark-as-read action; ReadAt is set once alongside it.
type Notification struct {
	ID                uuid.UUID        `json:"id"`
	UserID            int64            `json:"user_id"`
	Type              NotificationType `json:"type"`
	Title             string           `json:"title"`
	Message           string           `json:"message"`
	RecipientEmail    string           `json:"recipient_email"`
	RelatedEntityType string           `json:"related_entity_type"`
	RelatedEntityID   int64            `json:"related_entity_id"`
	Metadata          string           `json:"metadata"`
	IsRead            bool             `json:"is_read"`
	EmailSent         bool             `json:"email_sent"`
	CreatedAt         time.Time        `json:"created_at"`
	ReadAt            *time.Time       `json:"read_at,omitempty"`
}
