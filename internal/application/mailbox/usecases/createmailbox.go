package usecases

import (
	"context"
	"strconv"

	"pepperminto/internal/application/mailbox/dto"
	"pepperminto/internal/domain/mailbox"
	vo "pepperminto/internal/domain/mailbox/valueobjects"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type CreateMailboxCommand struct {
	Name        string
	ServiceType string

	// IMAP fields
	Username string
	Password string
	Hostname string
	TLS      bool

	// Gmail OAuth fields
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type CreateMailboxResult struct {
	Mailbox *dto.MailboxDTO
	// AuthorizeURL is set for Gmail queues. The queue stays inactive until
	// the OAuth callback completes.
	AuthorizeURL string
}

type CreateMailboxUseCase struct {
	mailboxRepo mailbox.MailboxRepository
	authorizer  GmailAuthorizer
	logger      logger.Interface
}

func NewCreateMailboxUseCase(
	mailboxRepo mailbox.MailboxRepository,
	authorizer GmailAuthorizer,
	logger logger.Interface,
) *CreateMailboxUseCase {
	return &CreateMailboxUseCase{
		mailboxRepo: mailboxRepo,
		authorizer:  authorizer,
		logger:      logger,
	}
}

func (uc *CreateMailboxUseCase) Execute(ctx context.Context, cmd CreateMailboxCommand) (*CreateMailboxResult, error) {
	uc.logger.Infow("executing create mailbox use case", "name", cmd.Name, "service_type", cmd.ServiceType)

	serviceType, err := vo.NewServiceType(cmd.ServiceType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if serviceType.IsGmail() {
		return uc.createGmail(ctx, cmd)
	}
	return uc.createIMAP(ctx, cmd)
}

func (uc *CreateMailboxUseCase) createIMAP(ctx context.Context, cmd CreateMailboxCommand) (*CreateMailboxResult, error) {
	mb, err := mailbox.NewIMAPMailbox(cmd.Name, cmd.Username, cmd.Password, cmd.Hostname, cmd.TLS)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.mailboxRepo.Save(ctx, mb); err != nil {
		uc.logger.Errorw("failed to save mailbox", "error", err)
		return nil, errors.NewInternalError("failed to save mailbox")
	}

	uc.logger.Infow("imap mailbox created", "mailbox_id", mb.ID())

	return &CreateMailboxResult{Mailbox: dto.ToMailboxDTO(mb)}, nil
}

func (uc *CreateMailboxUseCase) createGmail(ctx context.Context, cmd CreateMailboxCommand) (*CreateMailboxResult, error) {
	mb, err := mailbox.NewGmailMailbox(cmd.Name, cmd.ClientID, cmd.ClientSecret, cmd.RedirectURI)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.mailboxRepo.Save(ctx, mb); err != nil {
		uc.logger.Errorw("failed to save mailbox", "error", err)
		return nil, errors.NewInternalError("failed to save mailbox")
	}

	// The OAuth state carries the mailbox id so the callback can find it.
	authURL := uc.authorizer.AuthURL(mb, strconv.FormatUint(uint64(mb.ID()), 10))

	uc.logger.Infow("gmail mailbox created, awaiting authorization", "mailbox_id", mb.ID())

	return &CreateMailboxResult{
		Mailbox:      dto.ToMailboxDTO(mb),
		AuthorizeURL: authURL,
	}, nil
}
