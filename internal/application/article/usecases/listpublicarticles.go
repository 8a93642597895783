package usecases

import (
	"context"

	"pepperminto/internal/application/article/dto"
	"pepperminto/internal/domain/article"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type ListPublicArticlesQuery struct {
	Query    string
	Tag      string
	Page     int
	PageSize int
}

type ListPublicArticlesResult struct {
	Articles []*dto.PublicArticleDTO
	Total    int64
}

// ListPublicArticlesUseCase serves the unauthenticated knowledge base
// listing. Only published articles are visible, as excerpts without bodies.
type ListPublicArticlesUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewListPublicArticlesUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *ListPublicArticlesUseCase {
	return &ListPublicArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListPublicArticlesUseCase) Execute(ctx context.Context, query ListPublicArticlesQuery) (*ListPublicArticlesResult, error) {
	articles, total, err := uc.articleRepo.List(ctx, article.ListFilter{
		PublicOnly: true,
		Query:      query.Query,
		Tag:        query.Tag,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list public articles", "error", err)
		return nil, errors.NewInternalError("failed to list articles")
	}

	return &ListPublicArticlesResult{
		Articles: dto.ToPublicArticleDTOs(articles),
		Total:    total,
	}, nil
}
