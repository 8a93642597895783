package dto

import (
	"time"

	"pepperminto/internal/domain/article"
)

const excerptLength = 240

type ArticleDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	AuthorID  uint      `json:"author_id"`
	Tags      []string  `json:"tags"`
	Body      string    `json:"body"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicArticleDTO is the reader-facing shape. The body is the raw block
// document; the excerpt is plain text for listings and previews.
type PublicArticleDTO struct {
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Tags      []string  `json:"tags"`
	Body      string    `json:"body,omitempty"`
	Excerpt   string    `json:"excerpt"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToArticleDTO(a *article.Article) *ArticleDTO {
	if a == nil {
		return nil
	}

	return &ArticleDTO{
		ID:        a.ID(),
		Title:     a.Title(),
		Slug:      a.Slug(),
		AuthorID:  a.AuthorID(),
		Tags:      a.Tags(),
		Body:      a.Body(),
		Public:    a.IsPublic(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func ToArticleDTOs(articles []*article.Article) []*ArticleDTO {
	dtos := make([]*ArticleDTO, len(articles))
	for i, a := range articles {
		dtos[i] = ToArticleDTO(a)
	}
	return dtos
}

func ToPublicArticleDTO(a *article.Article, includeBody bool) *PublicArticleDTO {
	if a == nil {
		return nil
	}

	d := &PublicArticleDTO{
		Title:     a.Title(),
		Slug:      a.Slug(),
		Tags:      a.Tags(),
		Excerpt:   a.Excerpt(excerptLength),
		UpdatedAt: a.UpdatedAt(),
	}
	if includeBody {
		d.Body = a.Body()
	}
	return d
}

func ToPublicArticleDTOs(articles []*article.Article) []*PublicArticleDTO {
	dtos := make([]*PublicArticleDTO, len(articles))
	for i, a := range articles {
		dtos[i] = ToPublicArticleDTO(a, false)
	}
	return dtos
}
