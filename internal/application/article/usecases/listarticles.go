package usecases

import (
	"context"

	"pepperminto/internal/application/article/dto"
	"pepperminto/internal/domain/article"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type ListArticlesQuery struct {
	Query    string
	Tag      string
	Page     int
	PageSize int
}

type ListArticlesResult struct {
	Articles []*dto.ArticleDTO
	Total    int64
}

// ListArticlesUseCase lists all articles, drafts included, for the admin
// knowledge base view.
type ListArticlesUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewListArticlesUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error) {
	articles, total, err := uc.articleRepo.List(ctx, article.ListFilter{
		Query:    query.Query,
		Tag:      query.Tag,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, errors.NewInternalError("failed to list articles")
	}

	return &ListArticlesResult{
		Articles: dto.ToArticleDTOs(articles),
		Total:    total,
	}, nil
}
