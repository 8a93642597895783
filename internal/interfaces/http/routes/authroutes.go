package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "pepperminto/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
}

func SetupAuthRoutes(v1 *gin.RouterGroup, config *AuthRouteConfig) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.GET("/sso/login", config.AuthHandler.SSOLogin)
		auth.GET("/sso/callback", config.AuthHandler.SSOCallback)
		auth.GET("/profile", config.AuthHandler.GetProfile)
	}
}
