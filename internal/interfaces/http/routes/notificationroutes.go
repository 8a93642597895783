package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "pepperminto/internal/interfaces/http/handlers/notification"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
}

func SetupNotificationRoutes(v1 *gin.RouterGroup, config *NotificationRouteConfig) {
	v1.GET("/notifications/all", config.NotificationHandler.ListNotifications)
	v1.PUT("/notification/read", config.NotificationHandler.MarkRead)
}
