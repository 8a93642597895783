package ticket

import (
	"context"

	vo "pepperminto/internal/domain/ticket/valueobjects"
)

// TicketFilter defines filtering and pagination options for ticket queries.
type TicketFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	Type       *vo.TicketType
	ClientID   *uint
	AssigneeID *uint
	Unassigned bool
	// Open restricts results to tickets in any non-done status. Done
	// restricts to completed tickets. At most one may be set, and neither
	// may be combined with Status.
	Open      bool
	Done      bool
	QueueName string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// StatusCounts holds the dashboard ticket counters.
type StatusCounts struct {
	Open       int64
	Completed  int64
	Unassigned int64
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context) (*StatusCounts, error)
	ExistsBySourceMessageID(ctx context.Context, messageID string) (bool, error)
	DetachClient(ctx context.Context, clientID uint) error
}
