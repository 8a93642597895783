package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/domain/mailbox"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type DeleteMailboxCommand struct {
	MailboxID uint
}

type DeleteMailboxResult struct {
	MailboxID uint
}

// DeleteMailboxUseCase removes an email queue. Tickets it already produced
// are kept; only the polling source goes away.
type DeleteMailboxUseCase struct {
	mailboxRepo mailbox.MailboxRepository
	logger      logger.Interface
}

func NewDeleteMailboxUseCase(
	mailboxRepo mailbox.MailboxRepository,
	logger logger.Interface,
) *DeleteMailboxUseCase {
	return &DeleteMailboxUseCase{
		mailboxRepo: mailboxRepo,
		logger:      logger,
	}
}

func (uc *DeleteMailboxUseCase) Execute(ctx context.Context, cmd DeleteMailboxCommand) (*DeleteMailboxResult, error) {
	uc.logger.Infow("executing delete mailbox use case", "mailbox_id", cmd.MailboxID)

	if cmd.MailboxID == 0 {
		return nil, errors.NewValidationError("mailbox ID is required")
	}

	if err := uc.mailboxRepo.Delete(ctx, cmd.MailboxID); err != nil {
		uc.logger.Errorw("failed to delete mailbox", "mailbox_id", cmd.MailboxID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("mailbox %d not found", cmd.MailboxID))
	}

	uc.logger.Infow("mailbox deleted", "mailbox_id", cmd.MailboxID)

	return &DeleteMailboxResult{MailboxID: cmd.MailboxID}, nil
}
