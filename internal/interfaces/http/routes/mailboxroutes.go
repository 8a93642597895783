package routes

import (
	"github.com/gin-gonic/gin"

	mailboxhandlers "pepperminto/internal/interfaces/http/handlers/mailbox"
	"pepperminto/internal/shared/authorization"
)

type MailboxRouteConfig struct {
	MailboxHandler *mailboxhandlers.MailboxHandler
}

func SetupMailboxRoutes(v1 *gin.RouterGroup, config *MailboxRouteConfig) {
	queue := v1.Group("/email-queue")
	{
		queue.POST("/create",
			authorization.RequireAdmin(),
			config.MailboxHandler.CreateMailbox)
		queue.DELETE("/delete",
			authorization.RequireAdmin(),
			config.MailboxHandler.DeleteMailbox)

		// Public OAuth callback; Google cannot send a bearer token.
		queue.GET("/oauth/gmail", config.MailboxHandler.CompleteGmailAuth)
	}

	v1.GET("/email-queues/all",
		authorization.RequireAdmin(),
		config.MailboxHandler.ListMailboxes)
}
