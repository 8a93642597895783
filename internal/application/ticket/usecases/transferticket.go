package usecases

import (
	"context"
	"fmt"
	"time"

	"pepperminto/internal/domain/notification"
	"pepperminto/internal/domain/ticket"
	"pepperminto/internal/domain/user"
	"pepperminto/internal/shared/db"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/goroutine"
	"pepperminto/internal/shared/logger"
)

type TransferTicketCommand struct {
	TicketID   uint
	AssigneeID uint
}

type TransferTicketResult struct {
	TicketID   uint
	AssigneeID uint
	Status     string
	UpdatedAt  time.Time
}

// TransferTicketUseCase assigns a ticket to an agent, records an in-app
// notification for them, and sends an email heads-up. The ticket update and
// the notification are committed atomically; the email is best effort.
type TransferTicketUseCase struct {
	ticketRepo       ticket.TicketRepository
	userRepo         user.UserRepository
	notificationRepo notification.NotificationRepository
	txManager        *db.TransactionManager
	emailSender      EmailSender
	logger           logger.Interface
}

func NewTransferTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	notificationRepo notification.NotificationRepository,
	txManager *db.TransactionManager,
	emailSender EmailSender,
	logger logger.Interface,
) *TransferTicketUseCase {
	return &TransferTicketUseCase{
		ticketRepo:       ticketRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		emailSender:      emailSender,
		logger:           logger,
	}
}

func (uc *TransferTicketUseCase) Execute(ctx context.Context, cmd TransferTicketCommand) (*TransferTicketResult, error) {
	uc.logger.Infow("executing transfer ticket use case", "ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	assignee, err := uc.userRepo.FindByID(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.AssigneeID))
	}

	if err := t.AssignTo(assignee.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	ticketID := t.ID()
	text := fmt.Sprintf("You have been assigned to ticket #%d: %s", ticketID, t.Title())
	notif, err := notification.NewNotification(assignee.ID(), &ticketID, text)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return uc.notificationRepo.Save(txCtx, notif)
	})
	if err != nil {
		uc.logger.Errorw("failed to transfer ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to transfer ticket")
	}

	if uc.emailSender != nil && assignee.Email() != "" {
		to := assignee.Email()
		title := t.Title()
		goroutine.SafeGo(uc.logger, "transfer-ticket-email", func() {
			if err := uc.emailSender.SendTicketAssignedEmail(to, title, ticketID); err != nil {
				uc.logger.Warnw("failed to send assignment email", "ticket_id", ticketID, "error", err)
			}
		})
	}

	uc.logger.Infow("ticket transferred", "ticket_id", ticketID, "assignee_id", assignee.ID())

	return &TransferTicketResult{
		TicketID:   ticketID,
		AssigneeID: assignee.ID(),
		Status:     t.Status().String(),
		UpdatedAt:  t.UpdatedAt(),
	}, nil
}
