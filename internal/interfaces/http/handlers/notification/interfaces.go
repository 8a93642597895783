package notification

import (
	"context"

	"pepperminto/internal/application/notification/dto"
	"pepperminto/internal/application/notification/usecases"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query usecases.ListNotificationsQuery) (*usecases.ListNotificationsResult, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd usecases.MarkReadCommand) (*dto.NotificationDTO, error)
}
