package notification

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"

	"github.com/freelancenexus/notification/internal/config"
	mocks "github.com/freelancenexus/notification/internal/mocks/api/handlers/notification"
	"github.com/freelancenexus/notification/internal/model"
	"github.com/freelancenexus/notification/internal/repository/notification"
)

func setupRouter(t *testing.T) (*ginext.Engine, *mocks.MocknotificationService, retry.Strategy) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	serviceMock := mocks.NewMocknotificationService(ctrl)
	cfg := &config.Config{
		Retry: retry.Strategy{Attempts: 3, Delay: time.Second, Backoff: 2},
	}

	h := NewHandler(serviceMock, validator.New(), cfg)

	e := ginext.New()
	api := e.Group("/api/notifications")
	{
		api.GET("/health", h.Health)
		api.POST("/", h.Create)
		api.GET("/user/:userId", h.GetByUser)
		api.GET("/user/:userId/unread", h.GetUnread)
		api.GET("/user/:userId/unread/count", h.GetUnreadCount)
		api.PUT("/:id/read", h.MarkRead)
		api.PUT("/user/:userId/read-all", h.MarkAllRead)
	}

	return e, serviceMock, cfg.Retry
}

func TestHandler_Health(t *testing.T) {
	e, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/health", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "notification service is running")
}

func TestHandler_Create(t *testing.T) {
	e, serviceMock, strategy := setupRouter(t)

	id := uuid.New()
	serviceMock.EXPECT().
		CreateSystemNotification(gomock.Any(), strategy, int64(42), "Maintenance", "Scheduled downtime tonight", "user@example.com").
		Return(id, nil)

	body := `{"user_id": 42, "title": "Maintenance", "message": "Scheduled downtime tonight", "recipient_email": "user@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/", strings.NewReader(body))
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestHandler_Create_ValidationError(t *testing.T) {
	e, _, _ := setupRouter(t)

	// Missing title and message.
	body := `{"user_id": 42}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/", strings.NewReader(body))
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}

func TestHandler_Create_InvalidBody(t *testing.T) {
	e, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/", strings.NewReader(`{"user_id": `))
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetByUser(t *testing.T) {
	e, serviceMock, _ := setupRouter(t)

	notifications := []model.Notification{
		{ID: uuid.New(), UserID: 42, Type: model.TypeProjectCreated, Title: "Project Posted Successfully"},
	}
	serviceMock.EXPECT().GetUserNotifications(gomock.Any(), int64(42)).Return(notifications, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/user/42", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Project Posted Successfully")
}

func TestHandler_GetByUser_InvalidUserID(t *testing.T) {
	e, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/user/abc", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid user id")
}

func TestHandler_GetUnread(t *testing.T) {
	e, serviceMock, _ := setupRouter(t)

	serviceMock.EXPECT().GetUnreadNotifications(gomock.Any(), int64(42)).Return([]model.Notification{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/user/42/unread", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetUnreadCount(t *testing.T) {
	e, serviceMock, strategy := setupRouter(t)

	serviceMock.EXPECT().GetUnreadCount(gomock.Any(), strategy, int64(42)).Return(int64(3), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/user/42/unread/count", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":3`)
}

func TestHandler_MarkRead(t *testing.T) {
	e, serviceMock, strategy := setupRouter(t)

	id := uuid.New()
	serviceMock.EXPECT().MarkAsRead(gomock.Any(), strategy, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/"+id.String()+"/read", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "notification marked as read")
}

func TestHandler_MarkRead_NotFound(t *testing.T) {
	e, serviceMock, strategy := setupRouter(t)

	id := uuid.New()
	serviceMock.EXPECT().MarkAsRead(gomock.Any(), strategy, id).
		Return(fmt.Errorf("mark notification as read: %w", notification.ErrNotificationNotFound))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/"+id.String()+"/read", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MarkRead_InvalidID(t *testing.T) {
	e, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/not-a-uuid/read", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MarkAllRead(t *testing.T) {
	e, serviceMock, strategy := setupRouter(t)

	serviceMock.EXPECT().MarkAllAsRead(gomock.Any(), strategy, int64(42)).Return(int64(5), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/user/42/read-all", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated":5`)
}
