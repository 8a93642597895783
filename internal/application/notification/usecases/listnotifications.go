package usecases

import (
	"context"

	"pepperminto/internal/application/notification/dto"
	"pepperminto/internal/domain/notification"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID uint
}

type ListNotificationsResult struct {
	Notifications []*dto.NotificationDTO
}

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	notifications, err := uc.notificationRepo.FindByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	return &ListNotificationsResult{
		Notifications: dto.ToNotificationDTOs(notifications),
	}, nil
}
