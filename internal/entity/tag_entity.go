package entity

import (
	"time"

	"github.com/google/uuid"

	"literinth-be/internal/pkg/locale"
)

type Tag struct {
	Id           uuid.UUID
	Slug         string
	Translations []Translation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t *Tag) NameIn(loc locale.Locale) string {
	return nameOrSlug(t.Translations, loc, t.Slug)
}
