package client

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/application/client/usecases"
	"pepperminto/internal/shared/logger"
	"pepperminto/internal/shared/utils"
)

type ClientHandler struct {
	createClientUC CreateClientExecutor
	listClientsUC  ListClientsExecutor
	getClientUC    GetClientExecutor
	updateClientUC UpdateClientExecutor
	deleteClientUC DeleteClientExecutor
	logger         logger.Interface
}

func NewClientHandler(
	createClientUC CreateClientExecutor,
	listClientsUC ListClientsExecutor,
	getClientUC GetClientExecutor,
	updateClientUC UpdateClientExecutor,
	deleteClientUC DeleteClientExecutor,
) *ClientHandler {
	return &ClientHandler{
		createClientUC: createClientUC,
		listClientsUC:  listClientsUC,
		getClientUC:    getClientUC,
		updateClientUC: updateClientUC,
		deleteClientUC: deleteClientUC,
		logger:         logger.NewLogger(),
	}
}

// CreateClient handles POST /api/v1/client/create
// @Summary Create a client organization
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateClientRequest true "Client"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/v1/client/create [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), usecases.CreateClientCommand{
		Name:          req.Name,
		ContactName:   req.ContactName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// ListClients handles GET /api/v1/clients/all
// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/clients/all [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listClientsUC.Execute(c.Request.Context(), usecases.ListClientsQuery{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Clients, result.Total, pagination.Page, pagination.PageSize)
}

// GetClient handles GET /api/v1/client/:id
// @Summary Get a client by ID
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/client/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getClientUC.Execute(c.Request.Context(), usecases.GetClientQuery{ClientID: clientID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateClient handles PUT /api/v1/client/update
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateClientRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/client/update [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), usecases.UpdateClientCommand{
		ClientID:      req.ID,
		Name:          req.Name,
		ContactName:   req.ContactName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

// DeleteClient handles DELETE /api/v1/client/delete
// @Summary Delete a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteClientRequest true "Client ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/client/delete [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	var req DeleteClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.deleteClientUC.Execute(c.Request.Context(), usecases.DeleteClientCommand{ClientID: req.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client deleted successfully", result)
}
