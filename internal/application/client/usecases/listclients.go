package usecases

import (
	"context"

	"pepperminto/internal/application/client/dto"
	"pepperminto/internal/domain/client"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type ListClientsQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListClientsResult struct {
	Clients []*dto.ClientDTO
	Total   int64
}

type ListClientsUseCase struct {
	clientRepo client.ClientRepository
	logger     logger.Interface
}

func NewListClientsUseCase(
	clientRepo client.ClientRepository,
	logger logger.Interface,
) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error) {
	clients, total, err := uc.clientRepo.List(ctx, client.ListFilter{
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	})
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewInternalError("failed to list clients")
	}

	return &ListClientsResult{
		Clients: dto.ToClientDTOs(clients),
		Total:   total,
	}, nil
}
