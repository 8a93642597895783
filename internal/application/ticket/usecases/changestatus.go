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

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	oldStatus := t.Status()

	if err := t.ChangeStatus(newStatus); err != nil {
		uc.logger.Warnw("rejected status transition",
			"ticket_id", cmd.TicketID,
			"from", oldStatus.String(),
			"to", newStatus.String())
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket status changed successfully",
		"ticket_id", cmd.TicketID,
		"old_status", oldStatus.String(),
		"new_status", t.Status().String())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
