package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "pepperminto/internal/interfaces/http/handlers/ticket"
	"pepperminto/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(v1 *gin.RouterGroup, config *TicketRouteConfig) {
	ticket := v1.Group("/ticket")
	{
		ticket.POST("/create", config.TicketHandler.CreateTicket)
		ticket.POST("/public/create", config.TicketHandler.CreatePublicTicket)
		ticket.PUT("/update", config.TicketHandler.UpdateTicket)
		ticket.PUT("/status/update", config.TicketHandler.UpdateTicketStatus)
		ticket.PUT("/transfer", config.TicketHandler.TransferTicket)
		ticket.DELETE("/delete",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)

		// Parameterized route registered last to avoid conflicts
		ticket.GET("/:id", config.TicketHandler.GetTicket)
	}

	tickets := v1.Group("/tickets")
	{
		tickets.GET("/all", config.TicketHandler.ListTickets)
		tickets.GET("/open", config.TicketHandler.ListOpenTickets)
		tickets.GET("/completed", config.TicketHandler.ListCompletedTickets)
		tickets.GET("/unassigned", config.TicketHandler.ListUnassignedTickets)
		tickets.GET("/counts", config.TicketHandler.GetTicketCounts)
		tickets.GET("/queue/:name", config.TicketHandler.ListQueueTickets)
	}
}
