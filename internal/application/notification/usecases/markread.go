package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/application/notification/dto"
	"pepperminto/internal/domain/notification"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type MarkReadCommand struct {
	NotificationID uint
	UserID         uint
}

// MarkReadUseCase marks a notification as read on behalf of its owner.
// Marking an already-read notification succeeds without another write.
type MarkReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) (*dto.NotificationDTO, error) {
	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	n, err := uc.notificationRepo.FindByID(ctx, cmd.NotificationID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("notification %d not found", cmd.NotificationID))
	}

	if !n.CanBeReadBy(cmd.UserID) {
		return nil, errors.NewForbiddenError("notification belongs to another user")
	}

	if n.IsRead() {
		return dto.ToNotificationDTO(n), nil
	}

	n.MarkAsRead()

	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "notification_id", cmd.NotificationID, "error", err)
		return nil, errors.NewInternalError("failed to update notification")
	}

	uc.logger.Infow("notification marked as read", "notification_id", cmd.NotificationID, "user_id", cmd.UserID)

	return dto.ToNotificationDTO(n), nil
}
