package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/freelancenexus/notification/internal/event"
	"github.com/freelancenexus/notification/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error)
	MarkEmailSent(ctx context.Context, id uuid.UUID) error
	GetUserNotifications(ctx context.Context, userID int64) ([]model.Notification, error)
	GetUnreadNotifications(ctx context.Context, userID int64) ([]model.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) (int64, error)
	MarkAllAsRead(ctx context.Context, userID int64) (int64, error)
}

type emailSender interface {
	SendProjectCreated(clientEmail, projectTitle string) error
	SendProposalReceived(clientEmail, freelancerName, projectTitle string) error
	SendProposalAccepted(freelancerEmail, projectTitle string) error
	SendPaymentCompleted(payerEmail string, amount float64, transactionID, currency string) error
	SendPaymentReceived(receiverEmail string, amount float64, transactionID, projectTitle, currency string) error
	SendGeneric(to, subject, body string) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service is the notification engine. Handle turns one consumed domain event
// into one or two persisted notifications plus best-effort email sends; the
// remaining methods are the read surface behind the HTTP API.
//
// Writes are independent single-row statements: a failure between the two
// roles of a fan-out leaves partial state, and a redelivered event creates a
// fresh set of rows. The dispatcher owns retry decisions; the only error
// this engine returns is a persistence failure.
type Service struct {
	repo   notificationRepository
	emails emailSender
	cache  cache
}

// NewService creates the notification engine.
func NewService(repo notificationRepository, emails emailSender, cache cache) *Service {
	return &Service{repo: repo, emails: emails, cache: cache}
}

// Handle dispatches a domain event to its handler. The type switch is
// exhaustive over event.DomainEvent.
func (s *Service) Handle(ctx context.Context, strategy retry.Strategy, ev event.DomainEvent) error {
	switch e := ev.(type) {
	case event.ProjectCreated:
		return s.handleProjectCreated(ctx, strategy, e)
	case event.ProjectAssigned:
		return s.handleProjectAssigned(ctx, strategy, e)
	case event.ProposalSubmitted:
		return s.handleProposalSubmitted(ctx, strategy, e)
	case event.PaymentCompleted:
		return s.handlePaymentCompleted(ctx, strategy, e)
	default:
		return fmt.Errorf("unhandled event kind %q", ev.Kind())
	}
}

func (s *Service) handleProjectCreated(ctx context.Context, strategy retry.Strategy, e event.ProjectCreated) error {
	zlog.Logger.Info().Int64("project_id", e.ProjectID).Msg("processing PROJECT_CREATED event")

	n := model.Notification{
		UserID:            e.ClientID,
		Type:              model.TypeProjectCreated,
		Title:             "Project Posted Successfully",
		Message:           fmt.Sprintf("Your project '%s' has been posted. Budget: $%.2f", e.ProjectTitle, e.Budget),
		RecipientEmail:    e.ClientEmail,
		RelatedEntityType: model.EntityProject,
		RelatedEntityID:   e.ProjectID,
		Metadata:          s.metadata(e),
	}

	id, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return fmt.Errorf("create project created notification: %w", err)
	}

	if emailErr := s.emails.SendProjectCreated(e.ClientEmail, e.ProjectTitle); emailErr == nil {
		if err := s.repo.MarkEmailSent(ctx, id); err != nil {
			return fmt.Errorf("mark email sent: %w", err)
		}
	}

	s.refreshUnreadCount(ctx, strategy, e.ClientID)

	return nil
}

func (s *Service) handleProjectAssigned(ctx context.Context, strategy retry.Strategy, e event.ProjectAssigned) error {
	zlog.Logger.Info().Int64("project_id", e.ProjectID).Msg("processing PROJECT_ASSIGNED event")

	n := model.Notification{
		UserID:            e.AssignedFreelancerID,
		Type:              model.TypeProjectAssigned,
		Title:             "Project Assigned to You",
		Message:           fmt.Sprintf("Congratulations! You've been assigned to project '%s'", e.ProjectTitle),
		RecipientEmail:    e.FreelancerEmail,
		RelatedEntityType: model.EntityProject,
		RelatedEntityID:   e.ProjectID,
		Metadata:          s.metadata(e),
	}

	id, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return fmt.Errorf("create project assigned notification: %w", err)
	}

	if emailErr := s.emails.SendProposalAccepted(e.FreelancerEmail, e.ProjectTitle); emailErr == nil {
		if err := s.repo.MarkEmailSent(ctx, id); err != nil {
			return fmt.Errorf("mark email sent: %w", err)
		}
	}

	s.refreshUnreadCount(ctx, strategy, e.AssignedFreelancerID)

	return nil
}

func (s *Service) handleProposalSubmitted(ctx context.Context, strategy retry.Strategy, e event.ProposalSubmitted) error {
	zlog.Logger.Info().Int64("proposal_id", e.ProposalID).Msg("processing PROPOSAL_SUBMITTED event")

	clientNotification := model.Notification{
		UserID:            e.ClientID,
		Type:              model.TypeProposalSubmitted,
		Title:             "New Proposal Received",
		Message:           fmt.Sprintf("%s submitted a proposal for '%s' with bid amount: $%.2f", e.FreelancerName, e.ProjectTitle, e.BidAmount),
		RecipientEmail:    e.ClientEmail,
		RelatedEntityType: model.EntityProposal,
		RelatedEntityID:   e.ProposalID,
		Metadata:          s.metadata(e),
	}

	clientID, err := s.repo.CreateNotification(ctx, clientNotification)
	if err != nil {
		return fmt.Errorf("create proposal submitted notification: %w", err)
	}

	if emailErr := s.emails.SendProposalReceived(e.ClientEmail, e.FreelancerName, e.ProjectTitle); emailErr == nil {
		if err := s.repo.MarkEmailSent(ctx, clientID); err != nil {
			return fmt.Errorf("mark email sent: %w", err)
		}
	}

	// Confirmation for the freelancer. No email for this role.
	freelancerNotification := model.Notification{
		UserID:            e.FreelancerID,
		Type:              model.TypeProposalSubmitted,
		Title:             "Proposal Submitted Successfully",
		Message:           fmt.Sprintf("Your proposal for '%s' has been submitted successfully", e.ProjectTitle),
		RecipientEmail:    e.FreelancerEmail,
		RelatedEntityType: model.EntityProposal,
		RelatedEntityID:   e.ProposalID,
		Metadata:          s.metadata(e),
	}

	if _, err := s.repo.CreateNotification(ctx, freelancerNotification); err != nil {
		return fmt.Errorf("create proposal confirmation notification: %w", err)
	}

	s.refreshUnreadCount(ctx, strategy, e.ClientID)
	s.refreshUnreadCount(ctx, strategy, e.FreelancerID)

	return nil
}

func (s *Service) handlePaymentCompleted(ctx context.Context, strategy retry.Strategy, e event.PaymentCompleted) error {
	zlog.Logger.Info().Str("transaction_id", e.TransactionID).Msg("processing PAYMENT_COMPLETED event")

	payerNotification := model.Notification{
		UserID:            e.PayerID,
		Type:              model.TypePaymentCompleted,
		Title:             "Payment Completed",
		Message:           fmt.Sprintf("Your payment of $%.2f for project '%s' has been processed successfully", e.Amount, e.ProjectTitle),
		RecipientEmail:    e.PayerEmail,
		RelatedEntityType: model.EntityPayment,
		RelatedEntityID:   e.PaymentID,
		Metadata:          s.metadata(e),
	}

	payerID, err := s.repo.CreateNotification(ctx, payerNotification)
	if err != nil {
		return fmt.Errorf("create payer notification: %w", err)
	}

	if emailErr := s.emails.SendPaymentCompleted(e.PayerEmail, e.Amount, e.TransactionID, e.Currency); emailErr == nil {
		if err := s.repo.MarkEmailSent(ctx, payerID); err != nil {
			return fmt.Errorf("mark email sent: %w", err)
		}
	}

	receiverNotification := model.Notification{
		UserID:            e.ReceiverID,
		Type:              model.TypePaymentCompleted,
		Title:             "Payment Received",
		Message:           fmt.Sprintf("You've received a payment of $%.2f for project '%s'", e.Amount, e.ProjectTitle),
		RecipientEmail:    e.ReceiverEmail,
		RelatedEntityType: model.EntityPayment,
		RelatedEntityID:   e.PaymentID,
		Metadata:          s.metadata(e),
	}

	receiverID, err := s.repo.CreateNotification(ctx, receiverNotification)
	if err != nil {
		return fmt.Errorf("create receiver notification: %w", err)
	}

	if emailErr := s.emails.SendPaymentReceived(e.ReceiverEmail, e.Amount, e.TransactionID, e.ProjectTitle, e.Currency); emailErr == nil {
		if err := s.repo.MarkEmailSent(ctx, receiverID); err != nil {
			return fmt.Errorf("mark email sent: %w", err)
		}
	}

	s.refreshUnreadCount(ctx, strategy, e.PayerID)
	s.refreshUnreadCount(ctx, strategy, e.ReceiverID)

	return nil
}

// CreateSystemNotification persists a SYSTEM_NOTIFICATION record directly,
// outside the event pipeline, with an optional generic email.
func (s *Service) CreateSystemNotification(ctx context.Context, strategy retry.Strategy, userID int64, title, message, recipientEmail string) (uuid.UUID, error) {
	n := model.Notification{
		UserID:            userID,
		Type:              model.TypeSystemNotification,
		Title:             title,
		Message:           message,
		RecipientEmail:    recipientEmail,
		RelatedEntityType: model.EntitySystem,
		Metadata:          "{}",
	}

	id, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create system notification: %w", err)
	}

	if recipientEmail != "" {
		if emailErr := s.emails.SendGeneric(recipientEmail, title, message); emailErr == nil {
			if err := s.repo.MarkEmailSent(ctx, id); err != nil {
				return uuid.Nil, fmt.Errorf("mark email sent: %w", err)
			}
		}
	}

	s.refreshUnreadCount(ctx, strategy, userID)

	return id, nil
}

// GetUserNotifications returns all notifications of a user, newest first.
func (s *Service) GetUserNotifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	notifications, err := s.repo.GetUserNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user notifications: %w", err)
	}

	return notifications, nil
}

// GetUnreadNotifications returns the unread notifications of a user.
func (s *Service) GetUnreadNotifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	notifications, err := s.repo.GetUnreadNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get unread notifications: %w", err)
	}

	return notifications, nil
}

// GetUnreadCount returns the unread count for a user, served from the cache
// when possible.
func (s *Service) GetUnreadCount(ctx context.Context, strategy retry.Strategy, userID int64) (int64, error) {
	key := unreadCountKey(userID)

	cached, err := s.cache.GetWithRetry(ctx, strategy, key)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to get unread count from cache")
	}

	if err == nil {
		if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
			return count, nil
		}
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, key, count); err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to cache unread count")
	}

	return count, nil
}

// MarkAsRead marks one notification as read. The operation is monotonic:
// repeating it changes nothing and read_at keeps its original value.
func (s *Service) MarkAsRead(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	userID, err := s.repo.MarkAsRead(ctx, id)
	if err != nil {
		return fmt.Errorf("mark notification as read: %w", err)
	}

	s.refreshUnreadCount(ctx, strategy, userID)

	return nil
}

// MarkAllAsRead marks every unread notification of a user as read and
// returns how many rows changed.
func (s *Service) MarkAllAsRead(ctx context.Context, strategy retry.Strategy, userID int64) (int64, error) {
	updated, err := s.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications as read: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, unreadCountKey(userID), 0); err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to cache unread count")
	}

	return updated, nil
}

// metadata snapshots the triggering event plus a processing timestamp.
// Failures degrade to an empty object instead of failing the handler.
func (s *Service) metadata(ev interface{}) string {
	snapshot := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
		"eventData": ev,
	}

	b, err := json.Marshal(snapshot)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create notification metadata")
		return "{}"
	}

	return string(b)
}

func (s *Service) refreshUnreadCount(ctx context.Context, strategy retry.Strategy, userID int64) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to refresh unread count")
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, unreadCountKey(userID), count); err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to cache unread count")
	}
}

func unreadCountKey(userID int64) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}
