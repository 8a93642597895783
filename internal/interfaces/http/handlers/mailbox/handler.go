package mailbox

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/application/mailbox/usecases"
	"pepperminto/internal/shared/logger"
	"pepperminto/internal/shared/utils"
)

// MailboxHandler manages email queue configuration. List responses never
// include credentials; redaction happens in the application layer.
type MailboxHandler struct {
	createMailboxUC     CreateMailboxExecutor
	completeGmailAuthUC CompleteGmailAuthExecutor
	listMailboxesUC     ListMailboxesExecutor
	deleteMailboxUC     DeleteMailboxExecutor
	logger              logger.Interface
}

func NewMailboxHandler(
	createMailboxUC CreateMailboxExecutor,
	completeGmailAuthUC CompleteGmailAuthExecutor,
	listMailboxesUC ListMailboxesExecutor,
	deleteMailboxUC DeleteMailboxExecutor,
) *MailboxHandler {
	return &MailboxHandler{
		createMailboxUC:     createMailboxUC,
		completeGmailAuthUC: completeGmailAuthUC,
		listMailboxesUC:     listMailboxesUC,
		deleteMailboxUC:     deleteMailboxUC,
		logger:              logger.NewLogger(),
	}
}

// CreateMailbox handles POST /api/v1/email-queue/create
// @Summary Create an email queue
// @Tags email-queues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMailboxRequest true "Queue configuration"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/email-queue/create [post]
func (h *MailboxHandler) CreateMailbox(c *gin.Context) {
	var req CreateMailboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create email queue", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	tls := true
	if req.TLS != nil {
		tls = *req.TLS
	}

	result, err := h.createMailboxUC.Execute(c.Request.Context(), usecases.CreateMailboxCommand{
		Name:         req.Name,
		ServiceType:  req.ServiceType,
		Username:     req.Username,
		Password:     req.Password,
		Hostname:     req.Hostname,
		TLS:          tls,
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
		RedirectURI:  req.RedirectURI,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Email queue created successfully")
}

// CompleteGmailAuth handles GET /api/v1/email-queue/oauth/gmail
//
// Google redirects here with the authorization code. The mailbox ID rides in
// the mailboxId query parameter, falling back to the OAuth state parameter.
// @Summary Complete Gmail OAuth for an email queue
// @Tags email-queues
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param mailboxId query int false "Queue ID"
// @Param state query string false "Queue ID carried via OAuth state"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/email-queue/oauth/gmail [get]
func (h *MailboxHandler) CompleteGmailAuth(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing authorization code")
		return
	}

	rawID := c.Query("mailboxId")
	if rawID == "" {
		rawID = c.Query("state")
	}
	mailboxID, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil || mailboxID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing or invalid mailbox id")
		return
	}

	result, err := h.completeGmailAuthUC.Execute(c.Request.Context(), usecases.CompleteGmailAuthCommand{
		MailboxID: uint(mailboxID),
		Code:      code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email queue authorized successfully", result)
}

// ListMailboxes handles GET /api/v1/email-queues/all
// @Summary List email queues
// @Tags email-queues
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MailboxDTO
// @Failure 403 {object} utils.APIResponse
// @Router /api/v1/email-queues/all [get]
func (h *MailboxHandler) ListMailboxes(c *gin.Context) {
	result, err := h.listMailboxesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Mailboxes)
}

// DeleteMailbox handles DELETE /api/v1/email-queue/delete
// @Summary Delete an email queue
// @Tags email-queues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteMailboxRequest true "Queue ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/email-queue/delete [delete]
func (h *MailboxHandler) DeleteMailbox(c *gin.Context) {
	var req DeleteMailboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.deleteMailboxUC.Execute(c.Request.Context(), usecases.DeleteMailboxCommand{MailboxID: req.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email queue deleted successfully", result)
}
