// Package catalog holds the services and tours offered on the public site.
package catalog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Service struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Slug            string     `json:"slug" db:"slug"`
	Description     string     `json:"description" db:"description"`
	Content         *string    `json:"content" db:"content"`
	Icon            *string    `json:"icon" db:"icon"`
	Image           *string    `json:"image" db:"image"`
	Order           int        `json:"order" db:"sort_order"`
	IsActive        bool       `json:"isActive" db:"is_active"`
	MetaTitle       *string    `json:"metaTitle" db:"meta_title"`
	MetaDescription *string    `json:"metaDescription" db:"meta_description"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt       *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`

	Tours []*Tour `json:"tours,omitempty" db:"-"`
}

type Tour struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	Title           string         `json:"title" db:"title"`
	Slug            string         `json:"slug" db:"slug"`
	Description     string         `json:"description" db:"description"`
	Content         *string        `json:"content" db:"content"`
	Image           *string        `json:"image" db:"image"`
	Destination     string         `json:"destination" db:"destination"`
	Duration        int            `json:"duration" db:"duration"`
	Price           float64        `json:"price" db:"price"`
	MaxParticipants *int           `json:"maxParticipants" db:"max_participants"`
	IsActive        bool           `json:"isActive" db:"is_active"`
	Highlights      pq.StringArray `json:"highlights" db:"highlights"`
	Inclusions      pq.StringArray `json:"inclusions" db:"inclusions"`
	Exclusions      pq.StringArray `json:"exclusions" db:"exclusions"`
	Itinerary       *string        `json:"itinerary" db:"itinerary"`
	StartDate       *time.Time     `json:"startDate" db:"start_date"`
	EndDate         *time.Time     `json:"endDate" db:"end_date"`
	ServiceID       *uuid.UUID     `json:"serviceId" db:"service_id"`
	MetaTitle       *string        `json:"metaTitle" db:"meta_title"`
	MetaDescription *string        `json:"metaDescription" db:"meta_description"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`
	DeletedAt       *time.Time     `json:"deletedAt,omitempty" db:"deleted_at"`

	Service *Service `json:"service,omitempty" db:"-"`
}

type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description"`
	Content         *string `json:"content,omitempty"`
	Icon            *string `json:"icon,omitempty"`
	Image           *string `json:"image,omitempty"`
	Order           *int    `json:"order,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
}

func (r *CreateServiceRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(3, 0)),
		validation.Field(&r.Slug, validation.Length(3, 0), validation.Match(slugPattern).Error("must be a lowercase slug")),
		validation.Field(&r.Description, validation.Required),
	)
}

type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Slug            *string `json:"slug,omitempty"`
	Description     *string `json:"description,omitempty"`
	Content         *string `json:"content,omitempty"`
	Icon            *string `json:"icon,omitempty"`
	Image           *string `json:"image,omitempty"`
	Order           *int    `json:"order,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`
}

func (r *UpdateServiceRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(3, 0)),
		validation.Field(&r.Slug, validation.NilOrNotEmpty, validation.Match(slugPattern).Error("must be a lowercase slug")),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
	)
}

type CreateTourRequest struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	Content         *string    `json:"content,omitempty"`
	Image           *string    `json:"image,omitempty"`
	Destination     string     `json:"destination"`
	Duration        int        `json:"duration"`
	Price           float64    `json:"price"`
	MaxParticipants *int       `json:"maxParticipants,omitempty"`
	IsActive        *bool      `json:"isActive,omitempty"`
	Highlights      []string   `json:"highlights,omitempty"`
	Inclusions      []string   `json:"inclusions,omitempty"`
	Exclusions      []string   `json:"exclusions,omitempty"`
	Itinerary       *string    `json:"itinerary,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	ServiceID       *uuid.UUID `json:"serviceId,omitempty"`
	MetaTitle       *string    `json:"metaTitle,omitempty"`
	MetaDescription *string    `json:"metaDescription,omitempty"`
}

func (r *CreateTourRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Slug, validation.Match(slugPattern).Error("must be a lowercase slug")),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Destination, validation.Required),
		validation.Field(&r.Duration, validation.Required, validation.Min(1)),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.MaxParticipants, validation.Min(1)),
		validation.Field(&r.EndDate, validation.By(r.endAfterStart)),
	)
}

func (r *CreateTourRequest) endAfterStart(any) error {
	return checkDates(r.StartDate, r.EndDate)
}

type UpdateTourRequest struct {
	Title           *string    `json:"title,omitempty"`
	Slug            *string    `json:"slug,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Content         *string    `json:"content,omitempty"`
	Image           *string    `json:"image,omitempty"`
	Destination     *string    `json:"destination,omitempty"`
	Duration        *int       `json:"duration,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	MaxParticipants *int       `json:"maxParticipants,omitempty"`
	IsActive        *bool      `json:"isActive,omitempty"`
	Highlights      []string   `json:"highlights,omitempty"`
	Inclusions      []string   `json:"inclusions,omitempty"`
	Exclusions      []string   `json:"exclusions,omitempty"`
	Itinerary       *string    `json:"itinerary,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	ServiceID       *uuid.UUID `json:"serviceId,omitempty"`
	MetaTitle       *string    `json:"metaTitle,omitempty"`
	MetaDescription *string    `json:"metaDescription,omitempty"`
}

func (r *UpdateTourRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty),
		validation.Field(&r.Slug, validation.NilOrNotEmpty, validation.Match(slugPattern).Error("must be a lowercase slug")),
		validation.Field(&r.Destination, validation.NilOrNotEmpty),
		validation.Field(&r.Duration, validation.Min(1)),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.MaxParticipants, validation.Min(1)),
		validation.Field(&r.EndDate, validation.By(func(any) error { return checkDates(r.StartDate, r.EndDate) })),
	)
}
