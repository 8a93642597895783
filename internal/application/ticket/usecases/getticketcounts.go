package usecases

import (
	"context"

	"pepperminto/internal/domain/ticket"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type GetTicketCountsResult struct {
	Open       int64 `json:"open"`
	Completed  int64 `json:"completed"`
	Unassigned int64 `json:"unassigned"`
}

type GetTicketCountsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketCountsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketCountsUseCase {
	return &GetTicketCountsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketCountsUseCase) Execute(ctx context.Context) (*GetTicketCountsResult, error) {
	counts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, errors.NewInternalError("failed to count tickets")
	}

	return &GetTicketCountsResult{
		Open:       counts.Open,
		Completed:  counts.Completed,
		Unassigned: counts.Unassigned,
	}, nil
}
