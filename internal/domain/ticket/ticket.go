package ticket

import (
	"fmt"
	"time"

	vo "pepperminto/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id              uint
	title           string
	name            string
	email           string
	detail          string
	priority        vo.Priority
	ticketType      vo.TicketType
	status          vo.TicketStatus
	clientID        *uint
	assigneeID      *uint
	createdByID     *uint
	fromEmailQueue  string
	sourceMessageID string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewTicket(
	title string,
	name string,
	email string,
	detail string,
	priority vo.Priority,
	ticketType vo.TicketType,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}

	now := time.Now()

	return &Ticket{
		title:      title,
		name:       name,
		email:      email,
		detail:     detail,
		priority:   priority,
		ticketType: ticketType,
		status:     vo.StatusNeedsSupport,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	name string,
	email string,
	detail string,
	priority vo.Priority,
	ticketType vo.TicketType,
	status vo.TicketStatus,
	clientID *uint,
	assigneeID *uint,
	createdByID *uint,
	fromEmailQueue string,
	sourceMessageID string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:              id,
		title:           title,
		name:            name,
		email:           email,
		detail:          detail,
		priority:        priority,
		ticketType:      ticketType,
		status:          status,
		clientID:        clientID,
		assigneeID:      assigneeID,
		createdByID:     createdByID,
		fromEmailQueue:  fromEmailQueue,
		sourceMessageID: sourceMessageID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Name() string {
	return t.name
}

func (t *Ticket) Email() string {
	return t.email
}

func (t *Ticket) Detail() string {
	return t.detail
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) ClientID() *uint {
	return t.clientID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CreatedByID() *uint {
	return t.createdByID
}

func (t *Ticket) FromEmailQueue() string {
	return t.fromEmailQueue
}

func (t *Ticket) SourceMessageID() string {
	return t.sourceMessageID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetCreatedBy(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	t.createdByID = &userID
	return nil
}

func (t *Ticket) SetClient(clientID uint) error {
	if clientID == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	t.clientID = &clientID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) DetachClient() {
	t.clientID = nil
	t.updatedAt = time.Now()
}

// SetSource records the originating mailbox and message for email-created tickets.
func (t *Ticket) SetSource(queueName, messageID string) error {
	if len(queueName) == 0 {
		return fmt.Errorf("queue name is required")
	}
	if len(messageID) == 0 {
		return fmt.Errorf("message ID is required")
	}
	t.fromEmailQueue = queueName
	t.sourceMessageID = messageID
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = time.Now()

	if t.status == vo.StatusNeedsSupport {
		t.status = vo.StatusInProgress
	}

	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.updatedAt = time.Now()
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) UpdateDetails(title, name, email, detail string, ticketType vo.TicketType) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if !ticketType.IsValid() {
		return fmt.Errorf("invalid ticket type")
	}

	t.title = title
	t.name = name
	t.email = email
	t.detail = detail
	t.ticketType = ticketType
	t.updatedAt = time.Now()

	return nil
}
