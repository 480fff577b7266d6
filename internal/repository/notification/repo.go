package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/freelancenexus/notification/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Repository provides access to the notifications table.
//
// Every method is a single-statement, single-row (or single-set) write or
// read. The engine's create-then-flag sequence and its two-role fan-out are
// deliberately not wrapped in one transaction; see the service package.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new notification and returns its ID.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    user_id, type, title, message, recipient_email,
		    related_entity_type, related_entity_id, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(
		ctx, query,
		n.UserID, n.Type, n.Title, n.Message, n.RecipientEmail,
		n.RelatedEntityType, n.RelatedEntityID, n.Metadata,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// MarkEmailSent flips the email_sent flag to true. The flag never goes back.
func (r *Repository) MarkEmailSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET email_sent = TRUE
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark email sent: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// GetUserNotifications returns all notifications of a user, newest first.
func (r *Repository) GetUserNotifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, recipient_email,
		       related_entity_type, related_entity_id, metadata,
		       is_read, email_sent, created_at, read_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `

	return r.queryNotifications(ctx, query, userID)
}

// GetUnreadNotifications returns the unread notifications of a user, newest
// first.
func (r *Repository) GetUnreadNotifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, recipient_email,
		       related_entity_type, related_entity_id, metadata,
		       is_read, email_sent, created_at, read_at
		FROM notifications
		WHERE user_id = $1 AND is_read = FALSE
		ORDER BY created_at DESC;
    `

	return r.queryNotifications(ctx, query, userID)
}

// CountUnread returns the number of unread notifications of a user.
func (r *Repository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND is_read = FALSE;
    `

	var count int64
	if err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead marks one notification as read and returns its owner's user id.
// A second call on the same id mutates nothing: read_at stays as set by the
// first call.
func (r *Repository) MarkAsRead(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = now()
		WHERE id = $1 AND is_read = FALSE
		RETURNING user_id;
    `

	var userID int64
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&userID)
	if err == nil {
		return userID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	// Already read, or missing entirely.
	err = r.db.Master.QueryRowContext(ctx, `SELECT user_id FROM notifications WHERE id = $1;`, id).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotificationNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up notification: %w", err)
	}

	return userID, nil
}

// MarkAllAsRead marks every unread notification of a user as read and returns
// how many rows changed. Calling it again immediately returns zero.
func (r *Repository) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = now()
		WHERE user_id = $1 AND is_read = FALSE;
    `

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}

func (r *Repository) queryNotifications(ctx context.Context, query string, args ...interface{}) ([]model.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var (
			n      model.Notification
			readAt sql.NullTime
		)

		err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.RecipientEmail,
			&n.RelatedEntityType, &n.RelatedEntityID, &n.Metadata,
			&n.IsRead, &n.EmailSent, &n.CreatedAt, &readAt,
		)
		if err != nil {
			return nil, err
		}

		if readAt.Valid {
			t := readAt.Time
			n.ReadAt = &t
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
