package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pepperminto/internal/domain/ticket"
	vo "pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/infrastructure/persistence/mappers"
	"pepperminto/internal/infrastructure/persistence/models"
	db "pepperminto/internal/shared/db"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"title":       true,
	"status":      true,
	"priority":    true,
	"type":        true,
	"client_id":   true,
	"assignee_id": true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes all columns so cleared assignee or client references
	// persist as NULL instead of being skipped by Updates.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Unassigned {
		query = query.Where("assignee_id IS NULL")
	}
	if filter.Open {
		query = query.Where("status IN ?", openStatusValues())
	}
	if filter.Done {
		query = query.Where("status = ?", vo.StatusDone.String())
	}
	if filter.QueueName != "" {
		query = query.Where("from_email_queue = ?", filter.QueueName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTicketOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func openStatusValues() []string {
	return []string{
		vo.StatusNeedsSupport.String(),
		vo.StatusInProgress.String(),
		vo.StatusInReview.String(),
	}
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (*ticket.StatusCounts, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	counts := &ticket.StatusCounts{}

	if err := tx.Model(&models.TicketModel{}).
		Where("status IN ?", openStatusValues()).
		Count(&counts.Open).Error; err != nil {
		return nil, fmt.Errorf("failed to count open tickets: %w", err)
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("status = ?", vo.StatusDone.String()).
		Count(&counts.Completed).Error; err != nil {
		return nil, fmt.Errorf("failed to count completed tickets: %w", err)
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("assignee_id IS NULL").
		Where("status IN ?", openStatusValues()).
		Count(&counts.Unassigned).Error; err != nil {
		return nil, fmt.Errorf("failed to count unassigned tickets: %w", err)
	}

	return counts, nil
}

func (r *TicketRepository) ExistsBySourceMessageID(ctx context.Context, messageID string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Where("source_message_id = ?", messageID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check source message: %w", err)
	}

	return count > 0, nil
}

func (r *TicketRepository) DetachClient(ctx context.Context, clientID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).
		Where("client_id = ?", clientID).
		Update("client_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach client from tickets: %w", err)
	}

	return nil
}
