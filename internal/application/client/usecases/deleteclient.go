package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/domain/client"
	"pepperminto/internal/domain/ticket"
	"pepperminto/internal/shared/db"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type DeleteClientCommand struct {
	ClientID uint
}

type DeleteClientResult struct {
	ClientID uint
}

// DeleteClientUseCase removes a client. Tickets that referenced the client
// are kept but detached, in the same transaction as the delete.
type DeleteClientUseCase struct {
	clientRepo client.ClientRepository
	ticketRepo ticket.TicketRepository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewDeleteClientUseCase(
	clientRepo client.ClientRepository,
	ticketRepo ticket.TicketRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, cmd DeleteClientCommand) (*DeleteClientResult, error) {
	uc.logger.Infow("executing delete client use case", "client_id", cmd.ClientID)

	if cmd.ClientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	if _, err := uc.clientRepo.FindByID(ctx, cmd.ClientID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("client %d not found", cmd.ClientID))
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.DetachClient(txCtx, cmd.ClientID); err != nil {
			return err
		}
		return uc.clientRepo.Delete(txCtx, cmd.ClientID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete client", "client_id", cmd.ClientID, "error", err)
		return nil, errors.NewInternalError("failed to delete client")
	}

	uc.logger.Infow("client deleted", "client_id", cmd.ClientID)

	return &DeleteClientResult{ClientID: cmd.ClientID}, nil
}
