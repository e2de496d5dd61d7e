package entity

import (
	"time"

	"github.com/google/uuid"

	"literinth-be/internal/pkg/locale"
)

type Schematic struct {
	Id            uuid.UUID
	Slug          string
	AuthorId      uuid.UUID
	CategoryId    uuid.UUID
	SubcategoryId *uuid.UUID
	FileURL       *string
	ImageURL      *string
	Published     bool
	VisibleRu     bool
	VisibleEn     bool
	Views         int64
	Downloads     int64
	Likes         int64
	Translations  []Translation
	Tags          []*Tag
	Author        *User
	Category      *Category
	Subcategory   *Subcategory
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s *Schematic) TitleIn(loc locale.Locale) string {
	return nameOrSlug(s.Translations, loc, s.Slug)
}

func (s *Schematic) DescriptionIn(loc locale.Locale) *string {
	return descriptionIn(s.Translations, loc)
}

func (s *Schematic) ContentIn(loc locale.Locale) *string {
	return contentIn(s.Translations, loc)
}

func (s *Schematic) VisibleIn(loc locale.Locale) bool {
	if loc == locale.EN {
		return s.VisibleEn
	}
	return s.VisibleRu
}

type SchematicLike struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	SchematicId uuid.UUID
	CreatedAt   time.Time
}
