package contract

import (
	"context"

	"literinth-be/internal/entity"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/repository/specification"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)

	// FindOrCreateBySlug resolves an existing tag or creates it, seeding
	// the given locale's name for a fresh tag.
	FindOrCreateBySlug(ctx context.Context, slug, name string, loc locale.Locale) (*entity.Tag, error)
}
