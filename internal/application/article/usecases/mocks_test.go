package usecases

import (
	"context"

	"pepperminto/internal/domain/article"
	"pepperminto/internal/shared/logger"
)

type mockArticleRepository struct {
	SaveFunc         func(ctx context.Context, a *article.Article) error
	UpdateFunc       func(ctx context.Context, a *article.Article) error
	DeleteFunc       func(ctx context.Context, id uint) error
	FindByIDFunc     func(ctx context.Context, id uint) (*article.Article, error)
	FindBySlugFunc   func(ctx context.Context, slug string) (*article.Article, error)
	ExistsBySlugFunc func(ctx context.Context, slug string) (bool, error)
	ListFunc         func(ctx context.Context, filter article.ListFilter) ([]*article.Article, int64, error)
}

func (m *mockArticleRepository) Save(ctx context.Context, a *article.Article) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, a *article.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockArticleRepository) FindByID(ctx context.Context, id uint) (*article.Article, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockArticleRepository) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockArticleRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug)
	}
	return false, nil
}

func (m *mockArticleRepository) List(ctx context.Context, filter article.ListFilter) ([]*article.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
