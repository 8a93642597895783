package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pepperminto/internal/domain/notification"
	"pepperminto/internal/infrastructure/persistence/mappers"
	"pepperminto/internal/infrastructure/persistence/models"
	db "pepperminto/internal/shared/db"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Update("read", model.Read)

	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}

	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) FindByUserID(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	var notificationModels []models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, len(notificationModels))
	for i, model := range notificationModels {
		n, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		notifications[i] = n
	}

	return notifications, nil
}
