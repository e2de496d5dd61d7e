package contract

import (
	"context"

	"github.com/google/uuid"

	"literinth-be/internal/entity"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/repository/specification"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpsertTranslation(ctx context.Context, categoryId uuid.UUID, loc locale.Locale, name string, description *string) error
	UpdateVisibility(ctx context.Context, id uuid.UUID, visibleRu, visibleEn *bool) error
}

type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *entity.Subcategory) error
	Update(ctx context.Context, subcategory *entity.Subcategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subcategory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subcategory, error)
	UpsertTranslation(ctx context.Context, subcategoryId uuid.UUID, loc locale.Locale, name string, description *string) error
	UpdateVisibility(ctx context.Context, id uuid.UUID, visibleRu, visibleEn *bool) error
}
