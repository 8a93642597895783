package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pepperminto/internal/domain/client"
	"pepperminto/internal/infrastructure/persistence/mappers"
	"pepperminto/internal/infrastructure/persistence/models"
	db "pepperminto/internal/shared/db"
)

var allowedClientOrderByFields = map[string]bool{
	"id":         true,
	"name":       true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

type ClientRepository struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
	}
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClientModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}

	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ClientModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client not found")
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClientRepository) List(
	ctx context.Context,
	filter client.ListFilter,
) ([]*client.Client, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ClientModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedClientOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("name ASC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var clientModels []models.ClientModel
	if err := query.Find(&clientModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, len(clientModels))
	for i, model := range clientModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		clients[i] = c
	}

	return clients, total, nil
}
