package article

import (
	"context"

	"pepperminto/internal/application/article/dto"
	"pepperminto/internal/application/article/usecases"
)

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateArticleCommand) (*dto.ArticleDTO, error)
}

type UpdateArticleExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateArticleCommand) (*dto.ArticleDTO, error)
}

type DeleteArticleExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteArticleCommand) (*usecases.DeleteArticleResult, error)
}

type ListArticlesExecutor interface {
	Execute(ctx context.Context, query usecases.ListArticlesQuery) (*usecases.ListArticlesResult, error)
}

type GetArticleExecutor interface {
	Execute(ctx context.Context, query usecases.GetArticleQuery) (*dto.ArticleDTO, error)
}

type ListPublicArticlesExecutor interface {
	Execute(ctx context.Context, query usecases.ListPublicArticlesQuery) (*usecases.ListPublicArticlesResult, error)
}

type GetPublicArticleExecutor interface {
	Execute(ctx context.Context, query usecases.GetPublicArticleQuery) (*dto.PublicArticleDTO, error)
}
