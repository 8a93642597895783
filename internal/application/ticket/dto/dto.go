package dto

import (
	"time"

	"pepperminto/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Detail          string    `json:"detail"`
	Priority        string    `json:"priority"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	ClientID        *uint     `json:"client_id"`
	AssigneeID      *uint     `json:"assignee_id"`
	CreatedByID     *uint     `json:"created_by_id"`
	FromEmailQueue  string    `json:"from_email_queue,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:             t.ID(),
		Title:          t.Title(),
		Name:           t.Name(),
		Email:          t.Email(),
		Detail:         t.Detail(),
		Priority:       t.Priority().String(),
		Type:           t.Type().String(),
		Status:         t.Status().String(),
		ClientID:       t.ClientID(),
		AssigneeID:     t.AssigneeID(),
		CreatedByID:    t.CreatedByID(),
		FromEmailQueue: t.FromEmailQueue(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = ToTicketDTO(t)
	}
	return dtos
}
