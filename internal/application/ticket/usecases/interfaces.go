package usecases

import (
	"context"

	"pepperminto/internal/application/ticket/dto"
)

// EmailSender delivers outgoing ticket mail.
type EmailSender interface {
	SendTicketAssignedEmail(to, ticketTitle string, ticketID uint) error
	SendTicketReceivedEmail(to, ticketTitle string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CreatePublicTicketExecutor interface {
	Execute(ctx context.Context, cmd CreatePublicTicketCommand) (*CreatePublicTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type TransferTicketExecutor interface {
	Execute(ctx context.Context, cmd TransferTicketCommand) (*TransferTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type GetTicketCountsExecutor interface {
	Execute(ctx context.Context) (*GetTicketCountsResult, error)
}

type IngestEmailExecutor interface {
	Execute(ctx context.Context, cmd IngestEmailCommand) (*IngestEmailResult, error)
}
