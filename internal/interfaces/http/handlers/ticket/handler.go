package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/application/ticket/usecases"
	"pepperminto/internal/shared/constants"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
	"pepperminto/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC       usecases.CreateTicketExecutor
	createPublicTicketUC usecases.CreatePublicTicketExecutor
	getTicketUC          usecases.GetTicketExecutor
	listTicketsUC        usecases.ListTicketsExecutor
	updateTicketUC       usecases.UpdateTicketExecutor
	changeStatusUC       usecases.ChangeStatusExecutor
	transferTicketUC     usecases.TransferTicketExecutor
	deleteTicketUC       usecases.DeleteTicketExecutor
	getCountsUC          usecases.GetTicketCountsExecutor
	logger               logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	createPublicTicketUC usecases.CreatePublicTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	transferTicketUC usecases.TransferTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getCountsUC usecases.GetTicketCountsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:       createTicketUC,
		createPublicTicketUC: createPublicTicketUC,
		getTicketUC:          getTicketUC,
		listTicketsUC:        listTicketsUC,
		updateTicketUC:       updateTicketUC,
		changeStatusUC:       changeStatusUC,
		transferTicketUC:     transferTicketUC,
		deleteTicketUC:       deleteTicketUC,
		getCountsUC:          getCountsUC,
		logger:               logger.NewLogger(),
	}
}

// CreateTicket handles POST /api/v1/ticket/create
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTicketRequest true "Ticket"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/ticket/create [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// CreatePublicTicket handles POST /api/v1/ticket/public/create
// @Summary Submit a ticket without authentication
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body CreatePublicTicketRequest true "Ticket"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/ticket/public/create [post]
func (h *TicketHandler) CreatePublicTicket(c *gin.Context) {
	var req CreatePublicTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for public ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createPublicTicketUC.Execute(c.Request.Context(), usecases.CreatePublicTicketCommand{
		Title:    req.Title,
		Name:     req.Name,
		Email:    req.Email,
		Detail:   req.Detail,
		Type:     req.Type,
		Priority: req.Priority,
		ClientID: req.ClientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /api/v1/ticket/:id
// @Summary Get a ticket by ID
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/ticket/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /api/v1/tickets/all
// @Summary List all tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/tickets/all [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.list(c, query)
}

// ListOpenTickets handles GET /api/v1/tickets/open
// @Summary List open tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/tickets/open [get]
func (h *TicketHandler) ListOpenTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.OpenOnly = true

	h.list(c, query)
}

// ListCompletedTickets handles GET /api/v1/tickets/completed
// @Summary List completed tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/tickets/completed [get]
func (h *TicketHandler) ListCompletedTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.DoneOnly = true

	h.list(c, query)
}

// ListUnassignedTickets handles GET /api/v1/tickets/unassigned
// @Summary List unassigned tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/tickets/unassigned [get]
func (h *TicketHandler) ListUnassignedTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.Unassigned = true

	h.list(c, query)
}

// ListQueueTickets handles GET /api/v1/tickets/queue/:name
// @Summary List tickets ingested from one email queue
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param name path string true "Queue name"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/tickets/queue/{name} [get]
func (h *TicketHandler) ListQueueTickets(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("queue name is required"))
		return
	}

	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.QueueName = name

	h.list(c, query)
}

func (h *TicketHandler) list(c *gin.Context, query usecases.ListTicketsQuery) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, query.Page, query.PageSize)
}

// GetTicketCounts handles GET /api/v1/tickets/counts
// @Summary Get ticket counts per status bucket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/tickets/counts [get]
func (h *TicketHandler) GetTicketCounts(c *gin.Context) {
	result, err := h.getCountsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /api/v1/ticket/update
// @Summary Update a ticket's fields
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateTicketRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/ticket/update [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID: req.ID,
		Title:    req.Title,
		Name:     req.Name,
		Email:    req.Email,
		Detail:   req.Detail,
		Priority: req.Priority,
		Type:     req.Type,
		ClientID: req.ClientID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// UpdateTicketStatus handles PUT /api/v1/ticket/status/update
// @Summary Change a ticket's status
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangeStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/ticket/status/update [put]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  req.ID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// TransferTicket handles PUT /api/v1/ticket/transfer
// @Summary Transfer a ticket to another assignee
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransferTicketRequest true "Assignee"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/ticket/transfer [put]
func (h *TicketHandler) TransferTicket(c *gin.Context) {
	var req TransferTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.transferTicketUC.Execute(c.Request.Context(), usecases.TransferTicketCommand{
		TicketID:   req.ID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket transferred successfully", result)
}

// DeleteTicket handles DELETE /api/v1/ticket/delete
// @Summary Delete a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteTicketRequest true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/ticket/delete [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	var req DeleteTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: req.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}
