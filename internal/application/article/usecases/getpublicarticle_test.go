package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pepperminto/internal/domain/article"
	"pepperminto/internal/shared/errors"
)

func TestGetPublicArticleUseCase_Execute(t *testing.T) {
	body := `[{"content":[{"text":"Open the settings page and pick a new password."}]}]`

	t.Run("published article returned with body", func(t *testing.T) {
		mockRepo := &mockArticleRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*article.Article, error) {
				a, err := article.NewArticle("Reset password", slug, 1, []string{"account"}, body, true)
				require.NoError(t, err)
				return a, nil
			},
		}

		useCase := NewGetPublicArticleUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), GetPublicArticleQuery{Slug: "reset-password"})

		require.NoError(t, err)
		assert.Equal(t, "reset-password", result.Slug)
		assert.Equal(t, body, result.Body)
		assert.Contains(t, result.Excerpt, "Open the settings page")
	})

	t.Run("draft is served as not found", func(t *testing.T) {
		mockRepo := &mockArticleRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*article.Article, error) {
				a, err := article.NewArticle("Draft", slug, 1, nil, "", false)
				require.NoError(t, err)
				return a, nil
			},
		}

		useCase := NewGetPublicArticleUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetPublicArticleQuery{Slug: "draft"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "article not found")
	})

	t.Run("missing article", func(t *testing.T) {
		mockRepo := &mockArticleRepository{
			FindBySlugFunc: func(ctx context.Context, slug string) (*article.Article, error) {
				return nil, fmt.Errorf("record not found")
			},
		}

		useCase := NewGetPublicArticleUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetPublicArticleQuery{Slug: "missing"})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("empty slug", func(t *testing.T) {
		useCase := NewGetPublicArticleUseCase(&mockArticleRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetPublicArticleQuery{})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListPublicArticlesUseCase_Execute(t *testing.T) {
	var gotFilter article.ListFilter
	mockRepo := &mockArticleRepository{
		ListFunc: func(ctx context.Context, filter article.ListFilter) ([]*article.Article, int64, error) {
			gotFilter = filter
			a, err := article.NewArticle("Published", "published", 1, nil, `[{"content":[{"text":"visible text"}]}]`, true)
			require.NoError(t, err)
			return []*article.Article{a}, 1, nil
		},
	}

	useCase := NewListPublicArticlesUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListPublicArticlesQuery{
		Query:    "visible",
		Tag:      "intro",
		Page:     1,
		PageSize: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Articles, 1)

	// Listings carry excerpts only; the block document stays out of them.
	assert.Empty(t, result.Articles[0].Body)
	assert.Contains(t, result.Articles[0].Excerpt, "visible text")

	assert.True(t, gotFilter.PublicOnly)
	assert.Equal(t, "visible", gotFilter.Query)
	assert.Equal(t, "intro", gotFilter.Tag)
}
