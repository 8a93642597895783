package article

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Article is a knowledge-base document. The body is a serialized block
// document; it is stored and served verbatim, never rendered server-side.
type Article struct {
	id        uint
	title     string
	slug      string
	authorID  uint
	tags      []string
	body      string
	public    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewArticle(title, slug string, authorID uint, tags []string, body string, public bool) (*Article, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	if tags == nil {
		tags = []string{}
	}

	now := time.Now()

	return &Article{
		title:     title,
		slug:      slug,
		authorID:  authorID,
		tags:      tags,
		body:      body,
		public:    public,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructArticle(
	id uint,
	title string,
	slug string,
	authorID uint,
	tags []string,
	body string,
	public bool,
	createdAt, updatedAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("slug is required")
	}

	if tags == nil {
		tags = []string{}
	}

	return &Article{
		id:        id,
		title:     title,
		slug:      slug,
		authorID:  authorID,
		tags:      tags,
		body:      body,
		public:    public,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Slug() string {
	return a.slug
}

func (a *Article) AuthorID() uint {
	return a.authorID
}

func (a *Article) Tags() []string {
	tagsCopy := make([]string, len(a.tags))
	copy(tagsCopy, a.tags)
	return tagsCopy
}

func (a *Article) Body() string {
	return a.body
}

func (a *Article) IsPublic() bool {
	return a.public
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Article) Update(title, slug string, tags []string, body string, public bool) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if err := validateSlug(slug); err != nil {
		return err
	}

	if tags == nil {
		tags = []string{}
	}

	a.title = title
	a.slug = slug
	a.tags = tags
	a.body = body
	a.public = public
	a.updatedAt = time.Now()

	return nil
}

func (a *Article) Publish() {
	a.public = true
	a.updatedAt = time.Now()
}

func (a *Article) Unpublish() {
	a.public = false
	a.updatedAt = time.Now()
}

// PlainText extracts the readable text from the block document body for
// excerpting and search.
func (a *Article) PlainText() string {
	return ExtractPlainText(a.body)
}

// Excerpt returns the first maxLen characters of the plain text body.
func (a *Article) Excerpt(maxLen int) string {
	text := a.PlainText()
	if len(text) <= maxLen {
		return text
	}
	cut := text[:maxLen]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

func validateSlug(slug string) error {
	if len(slug) == 0 {
		return fmt.Errorf("slug is required")
	}
	if len(slug) > 255 {
		return fmt.Errorf("slug exceeds maximum length of 255 characters")
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("slug must contain only lowercase letters, digits and hyphens")
	}
	return nil
}
