package notification

import (
	"fmt"
	"time"
)

type Notification struct {
	id        uint
	userID    uint
	ticketID  *uint
	text      string
	read      bool
	createdAt time.Time
}

func NewNotification(userID uint, ticketID *uint, text string) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("text is required")
	}

	return &Notification{
		userID:    userID,
		ticketID:  ticketID,
		text:      text,
		createdAt: time.Now(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	ticketID *uint,
	text string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		ticketID:  ticketID,
		text:      text,
		read:      read,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) TicketID() *uint {
	return n.ticketID
}

func (n *Notification) Text() string {
	return n.text
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead flips the read flag. Marking an already-read notification is a
// no-op, so repeated calls leave exactly one read notification.
func (n *Notification) MarkAsRead() {
	n.read = true
}

// CanBeReadBy reports whether the given user owns this notification.
func (n *Notification) CanBeReadBy(userID uint) bool {
	return n.userID == userID
}
