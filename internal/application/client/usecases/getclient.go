package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/application/client/dto"
	"pepperminto/internal/domain/client"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type GetClientQuery struct {
	ClientID uint
}

type GetClientUseCase struct {
	clientRepo client.ClientRepository
	logger     logger.Interface
}

func NewGetClientUseCase(
	clientRepo client.ClientRepository,
	logger logger.Interface,
) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, query GetClientQuery) (*dto.ClientDTO, error) {
	if query.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	c, err := uc.clientRepo.FindByID(ctx, query.ClientID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", query.ClientID))
	}

	return dto.ToClientDTO(c), nil
}
