package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"pepperminto/internal/domain/article"
	"pepperminto/internal/infrastructure/persistence/models"
)

type ArticleMapper interface {
	ToModel(a *article.Article) (*models.ArticleModel, error)
	ToDomain(m *models.ArticleModel) (*article.Article, error)
}

type ArticleMapperImpl struct{}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (am *ArticleMapperImpl) ToModel(a *article.Article) (*models.ArticleModel, error) {
	tags, err := json.Marshal(a.Tags())
	if err != nil {
		return nil, fmt.Errorf("marshal article tags: %w", err)
	}

	return &models.ArticleModel{
		ID:        a.ID(),
		Title:     a.Title(),
		Slug:      a.Slug(),
		AuthorID:  a.AuthorID(),
		Tags:      string(tags),
		Body:      a.Body(),
		PlainText: a.PlainText(),
		Public:    a.IsPublic(),
		CreatedAt: a.CreatedAt().UnixMilli(),
		UpdatedAt: a.UpdatedAt().UnixMilli(),
	}, nil
}

func (am *ArticleMapperImpl) ToDomain(m *models.ArticleModel) (*article.Article, error) {
	var tags []string
	if m.Tags != "" {
		if err := json.Unmarshal([]byte(m.Tags), &tags); err != nil {
			return nil, fmt.Errorf("unmarshal article tags: %w", err)
		}
	}

	return article.ReconstructArticle(
		m.ID,
		m.Title,
		m.Slug,
		m.AuthorID,
		tags,
		m.Body,
		m.Public,
		time.UnixMilli(m.CreatedAt),
		time.UnixMilli(m.UpdatedAt),
	)
}
