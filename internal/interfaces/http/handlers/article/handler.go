package article

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/application/article/usecases"
	"pepperminto/internal/shared/constants"
	"pepperminto/internal/shared/logger"
	"pepperminto/internal/shared/utils"
)

type ArticleHandler struct {
	createArticleUC      CreateArticleExecutor
	updateArticleUC      UpdateArticleExecutor
	deleteArticleUC      DeleteArticleExecutor
	listArticlesUC       ListArticlesExecutor
	getArticleUC         GetArticleExecutor
	listPublicArticlesUC ListPublicArticlesExecutor
	getPublicArticleUC   GetPublicArticleExecutor
	logger               logger.Interface
}

func NewArticleHandler(
	createArticleUC CreateArticleExecutor,
	updateArticleUC UpdateArticleExecutor,
	deleteArticleUC DeleteArticleExecutor,
	listArticlesUC ListArticlesExecutor,
	getArticleUC GetArticleExecutor,
	listPublicArticlesUC ListPublicArticlesExecutor,
	getPublicArticleUC GetPublicArticleExecutor,
) *ArticleHandler {
	return &ArticleHandler{
		createArticleUC:      createArticleUC,
		updateArticleUC:      updateArticleUC,
		deleteArticleUC:      deleteArticleUC,
		listArticlesUC:       listArticlesUC,
		getArticleUC:         getArticleUC,
		listPublicArticlesUC: listPublicArticlesUC,
		getPublicArticleUC:   getPublicArticleUC,
		logger:               logger.NewLogger(),
	}
}

// CreateArticle handles POST /api/v1/knowledge-base/create
// @Summary Create a knowledge base article
// @Tags knowledge-base
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateArticleRequest true "Article"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/v1/knowledge-base/create [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	authorID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.createArticleUC.Execute(c.Request.Context(), usecases.CreateArticleCommand{
		Title:    req.Title,
		Slug:     req.Slug,
		AuthorID: authorID,
		Tags:     req.Tags,
		Body:     req.Body,
		Public:   req.Public,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// UpdateArticle handles PUT /api/v1/knowledge-base/update
// @Summary Update an article
// @Tags knowledge-base
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateArticleRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/knowledge-base/update [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), usecases.UpdateArticleCommand{
		ArticleID: req.ID,
		Title:     req.Title,
		Slug:      req.Slug,
		Tags:      req.Tags,
		Body:      req.Body,
		Public:    req.Public,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

// DeleteArticle handles DELETE /api/v1/knowledge-base/delete
// @Summary Delete an article
// @Tags knowledge-base
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteArticleRequest true "Article ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/knowledge-base/delete [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	var req DeleteArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.deleteArticleUC.Execute(c.Request.Context(), usecases.DeleteArticleCommand{ArticleID: req.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article deleted successfully", result)
}

// ListArticles handles GET /api/v1/knowledge-base/all
// @Summary List articles, including drafts
// @Tags knowledge-base
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Param tag query string false "Filter by tag"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/knowledge-base/all [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listArticlesUC.Execute(c.Request.Context(), usecases.ListArticlesQuery{
		Query:    c.Query("q"),
		Tag:      c.Query("tag"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, pagination.Page, pagination.PageSize)
}

// GetArticle handles GET /api/v1/knowledge-base/:id
// @Summary Get an article by ID
// @Tags knowledge-base
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/knowledge-base/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), usecases.GetArticleQuery{ArticleID: articleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPublicArticles handles GET /api/v1/knowledge-base/public/articles
// @Summary List published articles
// @Tags knowledge-base
// @Produce json
// @Param q query string false "Search query"
// @Param tag query string false "Filter by tag"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/knowledge-base/public/articles [get]
func (h *ArticleHandler) ListPublicArticles(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listPublicArticlesUC.Execute(c.Request.Context(), usecases.ListPublicArticlesQuery{
		Query:    c.Query("q"),
		Tag:      c.Query("tag"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, pagination.Page, pagination.PageSize)
}

// GetPublicArticle handles GET /api/v1/knowledge-base/public/article/:slug
// @Summary Get a published article by slug
// @Tags knowledge-base
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/knowledge-base/public/article/{slug} [get]
func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	slug := c.Param("slug")

	result, err := h.getPublicArticleUC.Execute(c.Request.Context(), usecases.GetPublicArticleQuery{Slug: slug})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
