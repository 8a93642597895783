package client

import (
	"context"

	"pepperminto/internal/application/client/dto"
	"pepperminto/internal/application/client/usecases"
)

type CreateClientExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateClientCommand) (*dto.ClientDTO, error)
}

type ListClientsExecutor interface {
	Execute(ctx context.Context, query usecases.ListClientsQuery) (*usecases.ListClientsResult, error)
}

type GetClientExecutor interface {
	Execute(ctx context.Context, query usecases.GetClientQuery) (*dto.ClientDTO, error)
}

type UpdateClientExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateClientCommand) (*dto.ClientDTO, error)
}

type DeleteClientExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteClientCommand) (*usecases.DeleteClientResult, error)
}
