package contract

import (
	"context"

	"github.com/google/uuid"

	"literinth-be/internal/entity"
)

type LikeRepository interface {
	Create(ctx context.Context, like *entity.SchematicLike) error
	DeleteByUserAndSchematic(ctx context.Context, userId, schematicId uuid.UUID) (bool, error)
	Exists(ctx context.Context, userId, schematicId uuid.UUID) (bool, error)
	CountBySchematic(ctx context.Context, schematicId uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountBySchematicIDs(ctx context.Context, schematicIds []uuid.UUID) (map[uuid.UUID]int64, error)
}
