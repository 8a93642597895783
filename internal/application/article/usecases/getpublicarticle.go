package usecases

import (
	"context"

	"pepperminto/internal/application/article/dto"
	"pepperminto/internal/domain/article"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type GetPublicArticleQuery struct {
	Slug string
}

// GetPublicArticleUseCase fetches one published article by slug. Drafts are
// indistinguishable from missing articles to unauthenticated readers.
type GetPublicArticleUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewGetPublicArticleUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *GetPublicArticleUseCase {
	return &GetPublicArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *GetPublicArticleUseCase) Execute(ctx context.Context, query GetPublicArticleQuery) (*dto.PublicArticleDTO, error) {
	if query.Slug == "" {
		return nil, errors.NewValidationError("slug is required")
	}

	a, err := uc.articleRepo.FindBySlug(ctx, query.Slug)
	if err != nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	if !a.IsPublic() {
		return nil, errors.NewNotFoundError("article not found")
	}

	return dto.ToPublicArticleDTO(a, true), nil
}
