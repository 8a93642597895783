package usecases

import (
	"context"
	"time"

	"pepperminto/internal/domain/ticket"
	vo "pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/goroutine"
	"pepperminto/internal/shared/logger"
)

// CreatePublicTicketCommand carries an unauthenticated ticket submission.
// The client comes from the submission form itself; priority falls back to
// medium when the requester leaves it out.
type CreatePublicTicketCommand struct {
	Title    string
	Name     string
	Email    string
	Detail   string
	Type     string
	Priority string
	ClientID uint
}

type CreatePublicTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

// CreatePublicTicketUseCase stores the submission and sends a best-effort
// receipt email to the requester.
type CreatePublicTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	emailSender EmailSender
	logger      logger.Interface
}

func NewCreatePublicTicketUseCase(
	ticketRepo ticket.TicketRepository,
	emailSender EmailSender,
	logger logger.Interface,
) *CreatePublicTicketUseCase {
	return &CreatePublicTicketUseCase{
		ticketRepo:  ticketRepo,
		emailSender: emailSender,
		logger:      logger,
	}
}

func (uc *CreatePublicTicketUseCase) Execute(ctx context.Context, cmd CreatePublicTicketCommand) (*CreatePublicTicketResult, error) {
	uc.logger.Infow("executing create public ticket use case", "email", cmd.Email, "client_id", cmd.ClientID)

	if cmd.Priority == "" {
		cmd.Priority = vo.PriorityMedium.String()
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create public ticket command", "error", err)
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

	if err := newTicket.SetClient(cmd.ClientID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	if uc.emailSender != nil {
		to := newTicket.Email()
		title := newTicket.Title()
		ticketID := newTicket.ID()
		goroutine.SafeGo(uc.logger, "public-ticket-receipt-email", func() {
			if err := uc.emailSender.SendTicketReceivedEmail(to, title); err != nil {
				uc.logger.Warnw("failed to send receipt email", "ticket_id", ticketID, "error", err)
			}
		})
	}

	uc.logger.Infow("public ticket created", "ticket_id", newTicket.ID(), "client_id", cmd.ClientID)

	return &CreatePublicTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreatePublicTicketUseCase) validateCommand(cmd CreatePublicTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}

	if !vo.TicketType(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid ticket type")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	if cmd.ClientID == 0 {
		return errors.NewValidationError("client ID is required")
	}

	return nil
}
