package entity

import (
	"time"

	"github.com/google/uuid"

	"literinth-be/internal/pkg/locale"
)

type Category struct {
	Id            uuid.UUID
	Slug          string
	Icon          *string
	SortOrder     int
	VisibleRu     bool
	VisibleEn     bool
	Translations  []Translation
	Subcategories []*Subcategory
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Category) NameIn(loc locale.Locale) string {
	return nameOrSlug(c.Translations, loc, c.Slug)
}

func (c *Category) DescriptionIn(loc locale.Locale) *string {
	return descriptionIn(c.Translations, loc)
}

func (c *Category) VisibleIn(loc locale.Locale) bool {
	if loc == locale.EN {
		return c.VisibleEn
	}
	return c.VisibleRu
}

type Subcategory struct {
	Id           uuid.UUID
	CategoryId   uuid.UUID
	Slug         string
	SortOrder    int
	VisibleRu    bool
	VisibleEn    bool
	Translations []Translation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *Subcategory) NameIn(loc locale.Locale) string {
	return nameOrSlug(s.Translations, loc, s.Slug)
}

func (s *Subcategory) DescriptionIn(loc locale.Locale) *string {
	return descriptionIn(s.Translations, loc)
}

func (s *Subcategory) VisibleIn(loc locale.Locale) bool {
	if loc == locale.EN {
		return s.VisibleEn
	}
	return s.VisibleRu
}
