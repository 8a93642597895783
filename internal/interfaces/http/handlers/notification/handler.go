package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/application/notification/usecases"
	"pepperminto/internal/shared/constants"
	"pepperminto/internal/shared/logger"
	"pepperminto/internal/shared/utils"
)

type MarkReadRequest struct {
	ID uint `json:"id" binding:"required"`
}

type NotificationHandler struct {
	listNotificationsUC ListNotificationsExecutor
	markReadUC          MarkReadExecutor
	logger              logger.Interface
}

func NewNotificationHandler(
	listNotificationsUC ListNotificationsExecutor,
	markReadUC MarkReadExecutor,
) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUC: listNotificationsUC,
		markReadUC:          markReadUC,
		logger:              logger.NewLogger(),
	}
}

// ListNotifications handles GET /api/v1/notifications/all
// @Summary List the authenticated user's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/notifications/all [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.listNotificationsUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Notifications)
}

// MarkRead handles PUT /api/v1/notification/read
// @Summary Mark a notification as read
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MarkReadRequest true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/notification/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkReadCommand{
		NotificationID: req.ID,
		UserID:         userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", result)
}
