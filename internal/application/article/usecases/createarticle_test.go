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

func TestCreateArticleUseCase_Execute_Success(t *testing.T) {
	var saved *article.Article
	mockRepo := &mockArticleRepository{
		SaveFunc: func(ctx context.Context, a *article.Article) error {
			if err := a.SetID(20); err != nil {
				return err
			}
			saved = a
			return nil
		},
	}

	useCase := NewCreateArticleUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateArticleCommand{
		Title:    "How to reset your password",
		Slug:     "how-to-reset-your-password",
		AuthorID: 1,
		Tags:     []string{"account"},
		Body:     `[{"content":[{"text":"Open the settings page."}]}]`,
		Public:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(20), result.ID)
	assert.Equal(t, "how-to-reset-your-password", result.Slug)
	assert.True(t, result.Public)

	require.NotNil(t, saved)
	assert.Equal(t, uint(1), saved.AuthorID())
}

func TestCreateArticleUseCase_Execute_SlugConflict(t *testing.T) {
	t.Run("detected by existence check", func(t *testing.T) {
		mockRepo := &mockArticleRepository{
			ExistsBySlugFunc: func(ctx context.Context, slug string) (bool, error) {
				return true, nil
			},
		}

		useCase := NewCreateArticleUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), CreateArticleCommand{
			Title:    "Duplicate",
			Slug:     "taken",
			AuthorID: 1,
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("detected by unique index on save", func(t *testing.T) {
		mockRepo := &mockArticleRepository{
			SaveFunc: func(ctx context.Context, a *article.Article) error {
				return fmt.Errorf("UNIQUE constraint failed: articles.slug")
			},
		}

		useCase := NewCreateArticleUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), CreateArticleCommand{
			Title:    "Duplicate",
			Slug:     "taken",
			AuthorID: 1,
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestCreateArticleUseCase_Execute_InvalidSlug(t *testing.T) {
	useCase := NewCreateArticleUseCase(&mockArticleRepository{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateArticleCommand{
		Title:    "Bad slug",
		Slug:     "Bad Slug!",
		AuthorID: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateArticleUseCase_Execute(t *testing.T) {
	existing := func(t *testing.T) *article.Article {
		a, err := article.NewArticle("Original", "original", 1, nil, "", false)
		require.NoError(t, err)
		require.NoError(t, a.SetID(20))
		return a
	}

	t.Run("update succeeds", func(t *testing.T) {
		var updated *article.Article
		mockRepo := &mockArticleRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*article.Article, error) {
				return existing(t), nil
			},
			UpdateFunc: func(ctx context.Context, a *article.Article) error {
				updated = a
				return nil
			},
		}

		useCase := NewUpdateArticleUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), UpdateArticleCommand{
			ArticleID: 20,
			Title:     "Renamed",
			Slug:      "renamed",
			Public:    true,
		})

		require.NoError(t, err)
		assert.Equal(t, "renamed", result.Slug)
		require.NotNil(t, updated)
		assert.True(t, updated.IsPublic())
	})

	t.Run("slug change collides with another article", func(t *testing.T) {
		mockRepo := &mockArticleRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*article.Article, error) {
				return existing(t), nil
			},
			ExistsBySlugFunc: func(ctx context.Context, slug string) (bool, error) {
				return slug == "taken", nil
			},
		}

		useCase := NewUpdateArticleUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdateArticleCommand{
			ArticleID: 20,
			Title:     "Renamed",
			Slug:      "taken",
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("keeping the slug skips the collision check", func(t *testing.T) {
		mockRepo := &mockArticleRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*article.Article, error) {
				return existing(t), nil
			},
			ExistsBySlugFunc: func(ctx context.Context, slug string) (bool, error) {
				t.Fatal("collision check should not run for an unchanged slug")
				return false, nil
			},
		}

		useCase := NewUpdateArticleUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdateArticleCommand{
			ArticleID: 20,
			Title:     "Renamed",
			Slug:      "original",
		})
		require.NoError(t, err)
	})

	t.Run("unknown article", func(t *testing.T) {
		mockRepo := &mockArticleRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*article.Article, error) {
				return nil, fmt.Errorf("record not found")
			},
		}

		useCase := NewUpdateArticleUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdateArticleCommand{ArticleID: 404, Title: "X", Slug: "x"})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
