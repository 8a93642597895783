package mappers

import (
	"time"

	"pepperminto/internal/domain/notification"
	"pepperminto/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(m *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (nm *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		TicketID:  n.TicketID(),
		Text:      n.Text(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt().UnixMilli(),
	}
}

func (nm *NotificationMapperImpl) ToDomain(m *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		m.ID,
		m.UserID,
		m.TicketID,
		m.Text,
		m.Read,
		time.UnixMilli(m.CreatedAt),
	)
}
