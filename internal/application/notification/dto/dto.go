package dto

import (
	"time"

	"pepperminto/internal/domain/notification"
)

type NotificationDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	TicketID  *uint     `json:"ticket_id,omitempty"`
	Text      string    `json:"text"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}

	return &NotificationDTO{
		ID:        n.ID(),
		UserID:    n.UserID(),
		TicketID:  n.TicketID(),
		Text:      n.Text(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationDTOs(notifications []*notification.Notification) []*NotificationDTO {
	dtos := make([]*NotificationDTO, len(notifications))
	for i, n := range notifications {
		dtos[i] = ToNotificationDTO(n)
	}
	return dtos
}
