package routes

import (
	"github.com/gin-gonic/gin"

	articlehandlers "pepperminto/internal/interfaces/http/handlers/article"
	"pepperminto/internal/shared/authorization"
)

type ArticleRouteConfig struct {
	ArticleHandler *articlehandlers.ArticleHandler
}

func SetupArticleRoutes(v1 *gin.RouterGroup, config *ArticleRouteConfig) {
	kb := v1.Group("/knowledge-base")
	{
		// Public reader endpoints, exempt from auth by path prefix
		kb.GET("/public/articles", config.ArticleHandler.ListPublicArticles)
		kb.GET("/public/article/:slug", config.ArticleHandler.GetPublicArticle)

		kb.POST("/create",
			authorization.RequireAdmin(),
			config.ArticleHandler.CreateArticle)
		kb.PUT("/update",
			authorization.RequireAdmin(),
			config.ArticleHandler.UpdateArticle)
		kb.DELETE("/delete",
			authorization.RequireAdmin(),
			config.ArticleHandler.DeleteArticle)
		kb.GET("/all",
			authorization.RequireAdmin(),
			config.ArticleHandler.ListArticles)

		kb.GET("/:id",
			authorization.RequireAdmin(),
			config.ArticleHandler.GetArticle)
	}
}
