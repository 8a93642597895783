package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pepperminto/internal/domain/article"
	"pepperminto/internal/infrastructure/persistence/mappers"
	"pepperminto/internal/infrastructure/persistence/models"
	db "pepperminto/internal/shared/db"
)

type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRepository) Save(ctx context.Context, a *article.Article) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ArticleRepository) Update(ctx context.Context, a *article.Article) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}

	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ArticleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("article not found")
	}
	return nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id uint) (*article.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("slug = ?", slug).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ArticleRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ArticleModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check article slug: %w", err)
	}

	return count > 0, nil
}

func (r *ArticleRepository) List(
	ctx context.Context,
	filter article.ListFilter,
) ([]*article.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{})

	if filter.PublicOnly {
		query = query.Where("public = ?", true)
	}
	if filter.Query != "" {
		// Search runs against titles and the plain text extracted from the
		// block document body, never against the raw JSON.
		pattern := "%" + filter.Query + "%"
		query = query.Where("title LIKE ? OR plain_text LIKE ?", pattern, pattern)
	}
	if filter.Tag != "" {
		query = query.Where("tags LIKE ?", "%\""+filter.Tag+"\"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query = query.Order("updated_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var articleModels []models.ArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]*article.Article, len(articleModels))
	for i, model := range articleModels {
		a, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		articles[i] = a
	}

	return articles, total, nil
}
