package blog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type Post struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Content         string     `json:"content" db:"content"`
	Excerpt         *string    `json:"excerpt" db:"excerpt"`
	Image           *string    `json:"image" db:"image"`
	Category        *string    `json:"category" db:"category"`
	IsPublished     bool       `json:"isPublished" db:"is_published"`
	PublishedAt     *time.Time `json:"publishedAt" db:"published_at"`
	MetaTitle       *string    `json:"metaTitle" db:"meta_title"`
	MetaDescription *string    `json:"metaDescription" db:"meta_description"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

// SetPublished keeps PublishedAt in step with the flag: it is stamped the
// first time a post goes live and cleared when it returns to draft.
func (p *Post) SetPublished(published bool, now time.Time) {
	p.IsPublished = published
	switch {
	case !published:
		p.PublishedAt = nil
	case p.PublishedAt == nil:
		p.PublishedAt = &now
	}
}

// CreatePostRequest has no publishedAt; it follows isPublished.
type CreatePostRequest struct {
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Content         string  `json:"content"`
	Excerpt         *string `json:"excerpt,omitempty"`
	Image           *string `json:"image,omitempty"`
	Category        *string `json:"category,omitempty"`
	IsPublished     *bool   `json:"isPublished,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
}

func (r *CreatePostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Excerpt, validation.Length(0, 500)),
	)
}

type UpdatePostRequest struct {
	Title           *string `json:"title,omitempty"`
	Slug            *string `json:"slug,omitempty"`
	Content         *string `json:"content,omitempty"`
	Excerpt         *string `json:"excerpt,omitempty"`
	Image           *string `json:"image,omitempty"`
	Category        *string `json:"category,omitempty"`
	IsPublished     *bool   `json:"isPublished,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
}

func (r *UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Slug, validation.NilOrNotEmpty),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.Excerpt, validation.Length(0, 500)),
	)
}
