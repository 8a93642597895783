package notification

import "context"

type NotificationRepository interface {
	Save(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id uint) (*Notification, error)
	FindByUserID(ctx context.Context, userID uint) ([]*Notification, error)
}
