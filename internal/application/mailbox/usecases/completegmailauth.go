package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/application/mailbox/dto"
	"pepperminto/internal/domain/mailbox"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type CompleteGmailAuthCommand struct {
	MailboxID uint
	Code      string
}

type CompleteGmailAuthUseCase struct {
	mailboxRepo mailbox.MailboxRepository
	authorizer  GmailAuthorizer
	logger      logger.Interface
}

func NewCompleteGmailAuthUseCase(
	mailboxRepo mailbox.MailboxRepository,
	authorizer GmailAuthorizer,
	logger logger.Interface,
) *CompleteGmailAuthUseCase {
	return &CompleteGmailAuthUseCase{
		mailboxRepo: mailboxRepo,
		authorizer:  authorizer,
		logger:      logger,
	}
}

func (uc *CompleteGmailAuthUseCase) Execute(ctx context.Context, cmd CompleteGmailAuthCommand) (*dto.MailboxDTO, error) {
	uc.logger.Infow("executing complete gmail auth use case", "mailbox_id", cmd.MailboxID)

	if cmd.MailboxID == 0 {
		return nil, errors.NewValidationError("mailbox ID is required")
	}
	if cmd.Code == "" {
		return nil, errors.NewValidationError("authorization code is required")
	}

	mb, err := uc.mailboxRepo.FindByID(ctx, cmd.MailboxID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("mailbox %d not found", cmd.MailboxID))
	}

	token, err := uc.authorizer.Exchange(ctx, mb, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to exchange authorization code", "mailbox_id", cmd.MailboxID, "error", err)
		return nil, errors.NewBadRequestError("authorization code exchange failed")
	}

	if err := mb.Authorize(token.AccessToken, token.RefreshToken, token.Expiry); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.mailboxRepo.Update(ctx, mb); err != nil {
		uc.logger.Errorw("failed to update mailbox", "mailbox_id", cmd.MailboxID, "error", err)
		return nil, errors.NewInternalError("failed to update mailbox")
	}

	uc.logger.Infow("gmail mailbox authorized", "mailbox_id", cmd.MailboxID)

	return dto.ToMailboxDTO(mb), nil
}
