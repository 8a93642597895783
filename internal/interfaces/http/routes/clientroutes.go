package routes

import (
	"github.com/gin-gonic/gin"

	clienthandlers "pepperminto/internal/interfaces/http/handlers/client"
)

type ClientRouteConfig struct {
	ClientHandler *clienthandlers.ClientHandler
}

func SetupClientRoutes(v1 *gin.RouterGroup, config *ClientRouteConfig) {
	client := v1.Group("/client")
	{
		client.POST("/create", config.ClientHandler.CreateClient)
		client.PUT("/update", config.ClientHandler.UpdateClient)
		client.DELETE("/delete", config.ClientHandler.DeleteClient)
		client.GET("/:id", config.ClientHandler.GetClient)
	}

	v1.GET("/clients/all", config.ClientHandler.ListClients)
}
