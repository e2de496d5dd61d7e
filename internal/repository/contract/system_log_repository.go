package contract

import (
	"context"

	"literinth-be/internal/model"
	"literinth-be/internal/repository/specification"
)

type SystemLogRepository interface {
	Create(ctx context.Context, log *model.SystemLog) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*model.SystemLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.SystemLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
