package usecases

import (
	"context"

	"pepperminto/internal/domain/ticket"
	vo "pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type IngestEmailCommand struct {
	QueueName string
	MessageID string
	FromName  string
	FromEmail string
	Subject   string
	Body      string
}

type IngestEmailResult struct {
	TicketID uint
	// Created is false when the message was already ingested and skipped.
	Created bool
}

// IngestEmailUseCase converts one fetched email into a ticket. Messages whose
// source message id was seen before are skipped, which makes ingestion safe
// to retry after partial failures.
type IngestEmailUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewIngestEmailUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *IngestEmailUseCase {
	return &IngestEmailUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *IngestEmailUseCase) Execute(ctx context.Context, cmd IngestEmailCommand) (*IngestEmailResult, error) {
	if cmd.QueueName == "" {
		return nil, errors.NewValidationError("queue name is required")
	}
	if cmd.MessageID == "" {
		return nil, errors.NewValidationError("message ID is required")
	}

	exists, err := uc.ticketRepo.ExistsBySourceMessageID(ctx, cmd.MessageID)
	if err != nil {
		uc.logger.Errorw("failed to check message id", "message_id", cmd.MessageID, "error", err)
		return nil, errors.NewInternalError("failed to check message id")
	}
	if exists {
		uc.logger.Debugw("message already ingested, skipping",
			"queue", cmd.QueueName,
			"message_id", cmd.MessageID)
		return &IngestEmailResult{Created: false}, nil
	}

	title := cmd.Subject
	if title == "" {
		title = "(no subject)"
	}

	newTicket, err := ticket.NewTicket(
		title,
		cmd.FromName,
		cmd.FromEmail,
		cmd.Body,
		vo.PriorityMedium,
		vo.TypeSupport,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newTicket.SetSource(cmd.QueueName, cmd.MessageID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		// A concurrent poll may have ingested the same message between the
		// existence check and the insert. The unique index turns that race
		// into a duplicate error, which is a skip rather than a failure.
		if errors.IsDuplicateError(err) {
			uc.logger.Debugw("message ingested concurrently, skipping",
				"queue", cmd.QueueName,
				"message_id", cmd.MessageID)
			return &IngestEmailResult{Created: false}, nil
		}
		uc.logger.Errorw("failed to save ingested ticket", "message_id", cmd.MessageID, "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	uc.logger.Infow("email converted to ticket",
		"queue", cmd.QueueName,
		"ticket_id", newTicket.ID(),
		"message_id", cmd.MessageID)

	return &IngestEmailResult{
		TicketID: newTicket.ID(),
		Created:  true,
	}, nil
}
