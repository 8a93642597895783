package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/application/article/dto"
	"pepperminto/internal/domain/article"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type UpdateArticleCommand struct {
	ArticleID uint
	Title     string
	Slug      string
	Tags      []string
	Body      string
	Public    bool
}

type UpdateArticleUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewUpdateArticleUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing update article use case", "article_id", cmd.ArticleID)

	if cmd.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	a, err := uc.articleRepo.FindByID(ctx, cmd.ArticleID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("article %d not found", cmd.ArticleID))
	}

	// A slug change must not collide with another article.
	if cmd.Slug != a.Slug() {
		exists, err := uc.articleRepo.ExistsBySlug(ctx, cmd.Slug)
		if err != nil {
			uc.logger.Errorw("failed to check slug", "error", err)
			return nil, errors.NewInternalError("failed to check slug")
		}
		if exists {
			return nil, errors.NewConflictError("an article with this slug already exists")
		}
	}

	if err := a.Update(cmd.Title, cmd.Slug, cmd.Tags, cmd.Body, cmd.Public); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Update(ctx, a); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an article with this slug already exists")
		}
		uc.logger.Errorw("failed to update article", "article_id", cmd.ArticleID, "error", err)
		return nil, errors.NewInternalError("failed to update article")
	}

	uc.logger.Infow("article updated", "article_id", cmd.ArticleID)

	return dto.ToArticleDTO(a), nil
}
