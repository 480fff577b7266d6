package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/freelancenexus/notification/internal/api/respond"
	"github.com/freelancenexus/notification/internal/config"
	"github.com/freelancenexus/notification/internal/model"
	"github.com/freelancenexus/notification/internal/repository/notification"
)

// notificationService is the read surface plus direct system-notification
// creation the HTTP API exposes. The event pipeline has no synchronous
// caller; these endpoints only query and mutate read state.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	GetUserNotifications(ctx context.Context, userID int64) ([]model.Notification, error)
	GetUnreadNotifications(ctx context.Context, userID int64) ([]model.Notification, error)
	GetUnreadCount(ctx context.Context, strategy retry.Strategy, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, strategy retry.Strategy, userID int64) (int64, error)
	CreateSystemNotification(ctx context.Context, strategy retry.Strategy, userID int64, title, message, recipientEmail string) (uuid.UUID, error)
}

// Handler handles HTTP requests related to notifications.
type Handler struct {
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// CreateRequest is the JSON body for creating a system notification.
type CreateRequest struct {
	UserID         int64  `json:"user_id" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Message        string `json:"message" validate:"required"`
	RecipientEmail string `json:"recipient_email" validate:"omitempty,email"`
}

// Create handles POST requests creating a system notification.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	id, err := h.service.CreateSystemNotification(
		c.Request.Context(), h.cfg.Retry,
		req.UserID, req.Title, req.Message, req.RecipientEmail,
	)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", req.UserID).Msg("failed to create system notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// GetByUser handles GET requests listing all notifications of a user.
func (h *Handler) GetByUser(c *ginext.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	notifications, err := h.service.GetUserNotifications(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to get notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// GetUnread handles GET requests listing the unread notifications of a user.
func (h *Handler) GetUnread(c *ginext.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	notifications, err := h.service.GetUnreadNotifications(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to get unread notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// GetUnreadCount handles GET requests returning a user's unread count.
func (h *Handler) GetUnreadCount(c *ginext.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	count, err := h.service.GetUnreadCount(c.Request.Context(), h.cfg.Retry, userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to count unread notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, count)
}

// MarkRead handles PUT requests marking one notification as read.
func (h *Handler) MarkRead(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), h.cfg.Retry, id); err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification as read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification marked as read")
}

// MarkAllRead handles PUT requests marking all notifications of a user as
// read.
func (h *Handler) MarkAllRead(c *ginext.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	updated, err := h.service.MarkAllAsRead(c.Request.Context(), h.cfg.Retry, userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to mark all notifications as read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]int64{"updated": updated})
}

// Health handles GET requests for the health check.
func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, "notification service is running")
}

func (h *Handler) userIDParam(c *ginext.Context) (int64, bool) {
	userIDStr := c.Param("userId")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		zlog.Logger.Error().Err(err).Str("userId", userIDStr).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return 0, false
	}

	return userID, true
}
