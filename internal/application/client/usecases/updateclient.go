package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/application/client/dto"
	"pepperminto/internal/domain/client"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type UpdateClientCommand struct {
	ClientID      uint
	Name          string
	ContactName   string
	ContactNumber string
	Email         string
}

type UpdateClientUseCase struct {
	clientRepo client.ClientRepository
	logger     logger.Interface
}

func NewUpdateClientUseCase(
	clientRepo client.ClientRepository,
	logger logger.Interface,
) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error) {
	uc.logger.Infow("executing update client use case", "client_id", cmd.ClientID)

	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	c, err := uc.clientRepo.FindByID(ctx, cmd.ClientID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	if err := c.Update(cmd.Name, cmd.ContactName, cmd.ContactNumber, cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to update client")
	}

	uc.logger.Infow("client updated", "client_id", cmd.ClientID)

	return dto.ToClientDTO(c), nil
}
