package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/application/article/dto"
	"pepperminto/internal/domain/article"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type GetArticleQuery struct {
	ArticleID uint
}

type GetArticleUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error) {
	if query.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	a, err := uc.articleRepo.FindByID(ctx, query.ArticleID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("article %d not found", query.ArticleID))
	}

	return dto.ToArticleDTO(a), nil
}
