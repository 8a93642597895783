package mailbox

import (
	"context"

	"pepperminto/internal/application/mailbox/dto"
	"pepperminto/internal/application/mailbox/usecases"
)

type CreateMailboxExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateMailboxCommand) (*usecases.CreateMailboxResult, error)
}

type CompleteGmailAuthExecutor interface {
	Execute(ctx context.Context, cmd usecases.CompleteGmailAuthCommand) (*dto.MailboxDTO, error)
}

type ListMailboxesExecutor interface {
	Execute(ctx context.Context) (*usecases.ListMailboxesResult, error)
}

type DeleteMailboxExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteMailboxCommand) (*usecases.DeleteMailboxResult, error)
}
