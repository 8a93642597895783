package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "pepperminto/internal/interfaces/http/handlers/user"
	"pepperminto/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler *userhandlers.UserHandler
}

func SetupUserRoutes(v1 *gin.RouterGroup, config *UserRouteConfig) {
	user := v1.Group("/user")
	{
		user.POST("/create",
			authorization.RequireAdmin(),
			config.UserHandler.CreateUser)
		user.PUT("/update",
			authorization.RequireAdmin(),
			config.UserHandler.UpdateUser)
		user.DELETE("/delete",
			authorization.RequireAdmin(),
			config.UserHandler.DeleteUser)

		// Password changes are self-service
		user.PUT("/password", config.UserHandler.ChangePassword)

		user.GET("/:id", config.UserHandler.GetUser)
	}

	v1.GET("/users/all",
		authorization.RequireAdmin(),
		config.UserHandler.ListUsers)
}
