package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/freelancenexus/notification/internal/api/handlers/notification"
	"github.com/freelancenexus/notification/internal/middlewares"
)

func New(handler *notification.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/notifications")
	{
		api.GET("/health", handler.Health)
		api.POST("/", handler.Create)
		api.GET("/user/:userId", handler.GetByUser)
		api.GET("/user/:userId/unread", handler.GetUnread)
		api.GET("/user/:userId/unread/count", handler.GetUnreadCount)
		api.PUT("/:id/read", handler.MarkRead)
		api.PUT("/user/:userId/read-all", handler.MarkAllRead)
	}

	return e
}
