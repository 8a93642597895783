package usecases

import (
	"context"

	"pepperminto/internal/application/article/dto"
	"pepperminto/internal/domain/article"
	"pepperminto/internal/shared/errors"
	"pepperminto/internal/shared/logger"
)

type CreateArticleCommand struct {
	Title    string
	Slug     string
	AuthorID uint
	Tags     []string
	Body     string
	Public   bool
}

type CreateArticleUseCase struct {
	articleRepo article.ArticleRepository
	logger      logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo article.ArticleRepository,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing create article use case", "slug", cmd.Slug)

	exists, err := uc.articleRepo.ExistsBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to check slug", "error", err)
		return nil, errors.NewInternalError("failed to check slug")
	}
	if exists {
		return nil, errors.NewConflictError("an article with this slug already exists")
	}

	newArticle, err := article.NewArticle(cmd.Title, cmd.Slug, cmd.AuthorID, cmd.Tags, cmd.Body, cmd.Public)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Save(ctx, newArticle); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("an article with this slug already exists")
		}
		uc.logger.Errorw("failed to save article", "error", err)
		return nil, errors.NewInternalError("failed to save article")
	}

	uc.logger.Infow("article created", "article_id", newArticle.ID(), "slug", newArticle.Slug())

	return dto.ToArticleDTO(newArticle), nil
}
