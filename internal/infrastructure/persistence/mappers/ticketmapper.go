package mappers

import (
	"fmt"
	"time"

	"pepperminto/internal/domain/ticket"
	"pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket domain objects and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(m *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (tm *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	var sourceMessageID *string
	if t.SourceMessageID() != "" {
		id := t.SourceMessageID()
		sourceMessageID = &id
	}

	return &models.TicketModel{
		ID:              t.ID(),
		Title:           t.Title(),
		Name:            t.Name(),
		Email:           t.Email(),
		Detail:          t.Detail(),
		Priority:        t.Priority().String(),
		Type:            t.Type().String(),
		Status:          t.Status().String(),
		ClientID:        t.ClientID(),
		AssigneeID:      t.AssigneeID(),
		CreatedByID:     t.CreatedByID(),
		FromEmailQueue:  t.FromEmailQueue(),
		SourceMessageID: sourceMessageID,
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}
}

func (tm *TicketMapperImpl) ToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := valueobjects.NewPriority(m.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in database: %w", err)
	}

	ticketType, err := valueobjects.NewTicketType(m.Type)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket type in database: %w", err)
	}

	status, err := valueobjects.NewTicketStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status in database: %w", err)
	}

	var sourceMessageID string
	if m.SourceMessageID != nil {
		sourceMessageID = *m.SourceMessageID
	}

	return ticket.ReconstructTicket(
		m.ID,
		m.Title,
		m.Name,
		m.Email,
		m.Detail,
		priority,
		ticketType,
		status,
		m.ClientID,
		m.AssigneeID,
		m.CreatedByID,
		m.FromEmailQueue,
		sourceMessageID,
		time.UnixMilli(m.CreatedAt),
		time.UnixMilli(m.UpdatedAt),
	)
}
