package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/application/user/usecases"
	"pepperminto/internal/shared/constants"
	"pepperminto/internal/shared/logger"
	"pepperminto/internal/shared/utils"
)

type UserHandler struct {
	createUserUC     CreateUserExecutor
	listUsersUC      ListUsersExecutor
	getUserUC        GetUserExecutor
	updateUserUC     UpdateUserExecutor
	deleteUserUC     DeleteUserExecutor
	changePasswordUC ChangePasswordExecutor
	logger           logger.Interface
}

func NewUserHandler(
	createUserUC CreateUserExecutor,
	listUsersUC ListUsersExecutor,
	getUserUC GetUserExecutor,
	updateUserUC UpdateUserExecutor,
	deleteUserUC DeleteUserExecutor,
	changePasswordUC ChangePasswordExecutor,
) *UserHandler {
	return &UserHandler{
		createUserUC:     createUserUC,
		listUsersUC:      listUsersUC,
		getUserUC:        getUserUC,
		updateUserUC:     updateUserUC,
		deleteUserUC:     deleteUserUC,
		changePasswordUC: changePasswordUC,
		logger:           logger.NewLogger(),
	}
}

// CreateUser handles POST /api/v1/user/create
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/v1/user/create [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Admin:    req.Admin,
		External: req.External,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /api/v1/users/all
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param external query bool false "Filter by external flag"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/users/all [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListUsersQuery{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if raw := c.Query("external"); raw != "" {
		external := raw == "true"
		query.External = &external
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, pagination.Page, pagination.PageSize)
}

// GetUser handles GET /api/v1/user/:id
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateUser handles PUT /api/v1/user/update
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/user/update [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:   req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Language: req.Language,
		Admin:    req.Admin,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// ChangePassword handles PUT /api/v1/user/password
// @Summary Change the authenticated user's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Old and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/user/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", result)
}

// DeleteUser handles DELETE /api/v1/user/delete
// @Summary Delete a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteUserRequest true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/user/delete [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actorID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:  req.ID,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", result)
}
