package notification

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/freelancenexus/notification/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreateNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()
	n := model.Notification{
		UserID:            42,
		Type:              model.TypeProjectCreated,
		Title:             "Project Posted Successfully",
		Message:           "Your project 'Website Redesign' has been posted. Budget: $5000.00",
		RecipientEmail:    "client@example.com",
		RelatedEntityType: model.EntityProject,
		RelatedEntityID:   7,
		Metadata:          "{}",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notifications (
		    user_id, type, title, message, recipient_email,
		    related_entity_type, related_entity_id, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `)).
		WithArgs(n.UserID, n.Type, n.Title, n.Message, n.RecipientEmail, n.RelatedEntityType, n.RelatedEntityID, n.Metadata).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(notificationID))

	id, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, notificationID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkEmailSent(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET email_sent = TRUE
		WHERE id = $1;
    `)).
		WithArgs(notificationID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkEmailSent(context.Background(), notificationID)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkEmailSent_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications`)).
		WithArgs(notificationID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkEmailSent(context.Background(), notificationID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestGetUserNotifications(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := int64(42)
	firstID := uuid.New()
	secondID := uuid.New()
	now := time.Now()
	readAt := now.Add(-time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "type", "title", "message", "recipient_email",
		"related_entity_type", "related_entity_id", "metadata",
		"is_read", "email_sent", "created_at", "read_at",
	}).
		AddRow(firstID, userID, model.TypePaymentCompleted, "Payment Completed", "Your payment has been processed", "client@example.com",
			model.EntityPayment, int64(9), "{}", false, true, now, nil).
		AddRow(secondID, userID, model.TypeProjectCreated, "Project Posted Successfully", "Your project has been posted", "client@example.com",
			model.EntityProject, int64(7), "{}", true, true, now.Add(-2*time.Hour), readAt)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, type, title, message, recipient_email`)).
		WithArgs(userID).
		WillReturnRows(rows)

	notifications, err := repo.GetUserNotifications(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, notifications, 2)

	assert.Equal(t, firstID, notifications[0].ID)
	assert.Nil(t, notifications[0].ReadAt)

	assert.Equal(t, secondID, notifications[1].ID)
	if assert.NotNil(t, notifications[1].ReadAt) {
		assert.WithinDuration(t, readAt, *notifications[1].ReadAt, time.Second)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnread(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := int64(42)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountUnread(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestMarkAsRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE notifications
		SET is_read = TRUE, read_at = now()
		WHERE id = $1 AND is_read = FALSE
		RETURNING user_id;
    `)).
		WithArgs(notificationID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(42)))

	userID, err := repo.MarkAsRead(context.Background(), notificationID)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsRead_AlreadyRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE notifications`)).
		WithArgs(notificationID).
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM notifications WHERE id = $1;`)).
		WithArgs(notificationID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(42)))

	userID, err := repo.MarkAsRead(context.Background(), notificationID)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsRead_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE notifications`)).
		WithArgs(notificationID).
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM notifications WHERE id = $1;`)).
		WithArgs(notificationID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.MarkAsRead(context.Background(), notificationID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllAsRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := int64(42)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET is_read = TRUE, read_at = now()
		WHERE user_id = $1 AND is_read = FALSE;
    `)).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 5))

	updated, err := repo.MarkAllAsRead(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), updated)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllAsRead_NothingUnread(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := int64(42)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications`)).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.MarkAllAsRead(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}
