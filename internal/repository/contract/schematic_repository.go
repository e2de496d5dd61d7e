package contract

import (
	"context"

	"github.com/google/uuid"

	"literinth-be/internal/entity"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/repository/specification"
)

type SchematicRepository interface {
	Create(ctx context.Context, schematic *entity.Schematic) error
	Update(ctx context.Context, schematic *entity.Schematic) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Schematic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Schematic, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// IncrementViews and IncrementDownloads bump the counter atomically
	// and return the post-increment value.
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
	IncrementDownloads(ctx context.Context, id uuid.UUID) (int64, error)

	// SumCounters totals views and downloads across every schematic.
	SumCounters(ctx context.Context) (views int64, downloads int64, err error)

	UpsertTranslation(ctx context.Context, schematicId uuid.UUID, loc locale.Locale, title string, description, content *string) error
	UpdateVisibility(ctx context.Context, id uuid.UUID, published, visibleRu, visibleEn *bool) error
	ReplaceTags(ctx context.Context, schematicId uuid.UUID, tagIds []uuid.UUID) error
}
