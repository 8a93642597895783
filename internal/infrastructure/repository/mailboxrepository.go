package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pepperminto/internal/domain/mailbox"
	"pepperminto/internal/infrastructure/persistence/mappers"
	"pepperminto/internal/infrastructure/persistence/models"
	db "pepperminto/internal/shared/db"
)

type MailboxRepository struct {
	db     *gorm.DB
	mapper mappers.MailboxMapper
}

func NewMailboxRepository(db *gorm.DB) *MailboxRepository {
	return &MailboxRepository{
		db:     db,
		mapper: mappers.NewMailboxMapper(),
	}
}

func (r *MailboxRepository) Save(ctx context.Context, m *mailbox.Mailbox) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save mailbox: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *MailboxRepository) Update(ctx context.Context, m *mailbox.Mailbox) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MailboxModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update mailbox: %w", result.Error)
	}

	return nil
}

func (r *MailboxRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.MailboxModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete mailbox: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("mailbox not found")
	}
	return nil
}

func (r *MailboxRepository) FindByID(ctx context.Context, id uint) (*mailbox.Mailbox, error) {
	var model models.MailboxModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("mailbox not found")
		}
		return nil, fmt.Errorf("failed to find mailbox: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MailboxRepository) FindAll(ctx context.Context) ([]*mailbox.Mailbox, error) {
	return r.find(ctx, nil)
}

func (r *MailboxRepository) FindActive(ctx context.Context) ([]*mailbox.Mailbox, error) {
	active := true
	return r.find(ctx, &active)
}

func (r *MailboxRepository) find(ctx context.Context, active *bool) ([]*mailbox.Mailbox, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.MailboxModel{}).Order("name ASC")

	if active != nil {
		query = query.Where("active = ?", *active)
	}

	var mailboxModels []models.MailboxModel
	if err := query.Find(&mailboxModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list mailboxes: %w", err)
	}

	mailboxes := make([]*mailbox.Mailbox, len(mailboxModels))
	for i, model := range mailboxModels {
		m, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		mailboxes[i] = m
	}

	return mailboxes, nil
}
