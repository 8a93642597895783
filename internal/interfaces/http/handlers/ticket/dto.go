package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pepperminto/internal/application/ticket/usecases"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title      string `json:"title" binding:"required"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Detail     string `json:"detail"`
	Priority   string `json:"priority"`
	Type       string `json:"type"`
	ClientID   *uint  `json:"client_id"`
	AssigneeID *uint  `json:"assignee_id"`
}

func (r CreateTicketRequest) ToCommand(createdByID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Name:        r.Name,
		Email:       r.Email,
		Detail:      r.Detail,
		Priority:    r.Priority,
		Type:        r.Type,
		ClientID:    r.ClientID,
		AssigneeID:  r.AssigneeID,
		CreatedByID: createdByID,
	}
}

type CreatePublicTicketRequest struct {
	Title    string `json:"title" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Detail   string `json:"detail"`
	Type     string `json:"type" binding:"required"`
	Priority string `json:"priority"`
	ClientID uint   `json:"client_id" binding:"required"`
}

type UpdateTicketRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Title    string `json:"title"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Detail   string `json:"detail"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
	ClientID *uint  `json:"client_id"`
}

type ChangeStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type TransferTicketRequest struct {
	ID         uint `json:"id" binding:"required"`
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type DeleteTicketRequest struct {
	ID uint `json:"id" binding:"required"`
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListTicketsQuery{
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Type:      c.Query("type"),
		QueueName: c.Query("queue"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return query, errors.NewValidationError("invalid client_id")
		}
		clientID := uint(id)
		query.ClientID = &clientID
	}

	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return query, errors.NewValidationError("invalid assignee_id")
		}
		assigneeID := uint(id)
		query.AssigneeID = &assigneeID
	}

	if c.Query("unassigned") == "true" {
		query.Unassigned = true
	}

	return query, nil
}
