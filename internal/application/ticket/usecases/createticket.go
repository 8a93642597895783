package usecases

import (
	"context"
	"time"

	"pepperminto/internal/domain/ticket"
	vo "pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Name        string
	Email       string
	Detail      string
	Priority    string
	Type        string
	ClientID    *uint
	AssigneeID  *uint
	CreatedByID uint
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "created_by", cmd.CreatedByID)

	if cmd.Priority == "" {
		cmd.Priority = vo.PriorityMedium.String()
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Name,
		cmd.Email,
		cmd.Detail,
		vo.Priority(cmd.Priority),
		vo.TicketType(cmd.Type),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newTicket.SetCreatedBy(cmd.CreatedByID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ClientID != nil {
		if err := newTicket.SetClient(*cmd.ClientID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.AssigneeID != nil {
		if err := newTicket.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 255 {
		return errors.NewValidationError("title exceeds maximum length of 255 characters")
	}

	if cmd.CreatedByID == 0 {
		return errors.NewValidationError("creator ID is required")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	if !vo.TicketType(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid ticket type")
	}

	return nil
}
