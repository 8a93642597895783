package usecases

import (
	"context"
	"fmt"

	"pepperminto/internal/domain/article"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ArticleID uint
}

type DeleteArticleResult struct {
	ArticleID uint
}

type DeleteArticleUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewDeleteArticleUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) (*DeleteArticleResult, error) {
	uc.logger.Infow("executing delete article use case", "article_id", cmd.ArticleID)

	if cmd.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	if err := uc.articleRepo.Delete(ctx, cmd.ArticleID); err != nil {
		uc.logger.Errorw("failed to delete article", "article_id", cmd.ArticleID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("article %d not found", cmd.ArticleID))
	}

	uc.logger.Infow("article deleted", "article_id", cmd.ArticleID)

	return &DeleteArticleResult{ArticleID: cmd.ArticleID}, nil
}
