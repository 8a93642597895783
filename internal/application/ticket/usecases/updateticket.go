package usecases

import (
	"context"
	"fmt"
	"time"

	"pepperminto/internal/domain/ticket"
	vo "pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID uint
	Title    string
	Name     string
	Email    string
	Detail   string
	Priority string
	Type     string
	// ClientID of zero detaches the ticket from its client.
	ClientID *uint
}

type UpdateTicketResult struct {
	TicketID  uint
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	ticketType, err := vo.NewTicketType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := t.UpdateDetails(cmd.Title, cmd.Name, cmd.Email, cmd.Detail, ticketType); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := t.ChangePriority(priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ClientID != nil {
		if *cmd.ClientID == 0 {
			t.DetachClient()
		} else if err := t.SetClient(*cmd.ClientID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
