package usecases

import (
	"context"

	"pepperminto/internal/application/client/dto"
	"pepperminto/internal/domain/client"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type CreateClientCommand struct {
	Name          string
	ContactName   string
	ContactNumber string
	Email         string
}

type CreateClientUseCase struct {
	clientRepo client.ClientRepository
	logger     logger.Interface
}

func NewCreateClientUseCase(
	clientRepo client.ClientRepository,
	logger logger.Interface,
) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing create client use case", "name", cmd.Name)

	newClient, err := client.NewClient(cmd.Name, cmd.ContactName, cmd.ContactNumber, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Save(ctx, newClient); err != nil {
		uc.logger.Errorw("failed to save client", "error", err)
		return nil, errors.NewInternalError("failed to save client")
	}

	uc.logger.Infow("client created", "client_id", newClient.ID())

	return dto.ToClientDTO(newClient), nil
}
