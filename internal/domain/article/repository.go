package article

import "context"

// ListFilter defines filtering options for article queries. Query matches
// against title and extracted plain text; Tag matches a single tag exactly.
type ListFilter struct {
	PublicOnly bool
	Query      string
	Tag        string
	Page       int
	PageSize   int
}

type ArticleRepository interface {
	Save(ctx context.Context, a *Article) error
	Update(ctx context.Context, a *Article) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Article, error)
	FindBySlug(ctx context.Context, slug string) (*Article, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Article, int64, error)
}
