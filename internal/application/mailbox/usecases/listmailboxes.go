package usecases

import (
	"context"

	"pepperminto/internal/application/mailbox/dto"
	"pepperminto/internal/domain/mailbox"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type ListMailboxesResult struct {
	Mailboxes []*dto.MailboxDTO
}

type ListMailboxesUseCase struct {
	mailboxRepo mailbox.MailboxRepository
	logger      logger.Interface
}

func NewListMailboxesUseCase(
	mailboxRepo mailbox.MailboxRepository,
	logger logger.Interface,
) *ListMailboxesUseCase {
	return &ListMailboxesUseCase{
		mailboxRepo: mailboxRepo,
		logger:      logger,
	}
}

func (uc *ListMailboxesUseCase) Execute(ctx context.Context) (*ListMailboxesResult, error) {
	mailboxes, err := uc.mailboxRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list mailboxes", "error", err)
		return nil, errors.NewInternalError("failed to list mailboxes")
	}

	return &ListMailboxesResult{Mailboxes: dto.ToMailboxDTOs(mailboxes)}, nil
}
