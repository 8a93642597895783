package usecases

import (
	"context"

	"pepperminto/internal/application/ticket/dto"
	"pepperminto/internal/domain/ticket"
	vo "pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status     string
	Priority   string
	Type       string
	ClientID   *uint
	AssigneeID *uint
	Unassigned bool
	OpenOnly   bool
	DoneOnly   bool
	QueueName  string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, *filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOs(tickets),
		Total:   total,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (*ticket.TicketFilter, error) {
	if (query.OpenOnly || query.DoneOnly) && query.Status != "" {
		return nil, errors.NewValidationError("status cannot be combined with open or completed views")
	}
	if query.OpenOnly && query.DoneOnly {
		return nil, errors.NewValidationError("open and completed views are mutually exclusive")
	}

	filter := &ticket.TicketFilter{
		ClientID:   query.ClientID,
		AssigneeID: query.AssigneeID,
		Unassigned: query.Unassigned,
		Open:       query.OpenOnly,
		Done:       query.DoneOnly,
		QueueName:  query.QueueName,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.Type != "" {
		ticketType, err := vo.NewTicketType(query.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = &ticketType
	}

	return filter, nil
}
