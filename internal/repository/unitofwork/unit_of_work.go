package unitofwork

import (
	"context"

	"literinth-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CategoryRepository() contract.CategoryRepository
	SubcategoryRepository() contract.SubcategoryRepository
	SchematicRepository() contract.SchematicRepository
	TagRepository() contract.TagRepository
	LikeRepository() contract.LikeRepository
	SystemLogRepository() contract.SystemLogRepository
}
